package scanwrap_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkotas/scanwrap/pkg/scanwrap"
)

func validRequest() scanwrap.ScanRequest {
	return scanwrap.ScanRequest{
		OutputDir: "scanned_pages",
		Prefix:    "page",
		Format:    scanwrap.FormatPNG,
		DPI:       300,
		Color:     scanwrap.ColorModeColor,
		Source:    scanwrap.SourceFeeder,
		Driver:    scanwrap.DriverWIA,
	}
}

func TestScanRequest_Validate_OK(t *testing.T) {
	req := validRequest()
	require.NoError(t, req.Validate())
}

func TestScanRequest_Validate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*scanwrap.ScanRequest)
	}{
		{"empty output dir", func(r *scanwrap.ScanRequest) { r.OutputDir = "" }},
		{"empty prefix", func(r *scanwrap.ScanRequest) { r.Prefix = "" }},
		{"zero dpi", func(r *scanwrap.ScanRequest) { r.DPI = 0 }},
		{"negative dpi", func(r *scanwrap.ScanRequest) { r.DPI = -150 }},
		{"invalid format", func(r *scanwrap.ScanRequest) { r.Format = scanwrap.Format(99) }},
		{"invalid color", func(r *scanwrap.ScanRequest) { r.Color = scanwrap.ColorMode(99) }},
		{"invalid source", func(r *scanwrap.ScanRequest) { r.Source = scanwrap.Source(99) }},
		{"invalid driver", func(r *scanwrap.ScanRequest) { r.Driver = scanwrap.Driver(99) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, scanwrap.ErrInvalidConfig), "expected ErrInvalidConfig, got: %v", err)
		})
	}
}

func TestScanRequest_Validate_JoinsMultipleFailures(t *testing.T) {
	req := scanwrap.ScanRequest{}
	req.DPI = -1
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output folder")
	assert.Contains(t, err.Error(), "file prefix")
	assert.Contains(t, err.Error(), "dpi")
}

func TestScanRequest_OutputPath_PDFIsSingleFile(t *testing.T) {
	req := validRequest()
	req.Format = scanwrap.FormatPDF

	got := req.OutputPath()
	assert.Equal(t, filepath.Join("scanned_pages", "page.pdf"), got)
	assert.NotContains(t, got, scanwrap.PagePlaceholder)
	assert.True(t, strings.HasSuffix(got, ".pdf"))
}

func TestScanRequest_OutputPath_NonPDFHasPagePlaceholder(t *testing.T) {
	for _, format := range []scanwrap.Format{
		scanwrap.FormatPNG,
		scanwrap.FormatJPG,
		scanwrap.FormatJPEG,
		scanwrap.FormatTIFF,
		scanwrap.FormatBMP,
	} {
		t.Run(format.String(), func(t *testing.T) {
			req := validRequest()
			req.Format = format

			got := req.OutputPath()
			assert.Contains(t, got, scanwrap.PagePlaceholder)
			assert.True(t, strings.HasSuffix(got, "."+format.Extension()))
		})
	}
}

func TestScanRequest_FilePattern(t *testing.T) {
	req := validRequest()
	req.Prefix = "doc"
	req.Format = scanwrap.FormatTIFF
	assert.Equal(t, "doc*.tiff", req.FilePattern())
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"png", "jpg", "jpeg", "tiff", "bmp", "pdf"} {
		format, err := scanwrap.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, format.String())
		assert.Equal(t, name, format.Extension())
	}

	_, err := scanwrap.ParseFormat("gif")
	require.Error(t, err)
	assert.True(t, errors.Is(err, scanwrap.ErrInvalidConfig))
}

func TestParseColorMode(t *testing.T) {
	for _, name := range []string{"color", "gray", "bw"} {
		mode, err := scanwrap.ParseColorMode(name)
		require.NoError(t, err)
		assert.Equal(t, name, mode.String())
	}

	_, err := scanwrap.ParseColorMode("grayscale")
	require.Error(t, err)
	assert.True(t, errors.Is(err, scanwrap.ErrInvalidConfig))
}

func TestParseSource(t *testing.T) {
	for _, name := range []string{"feeder", "glass"} {
		source, err := scanwrap.ParseSource(name)
		require.NoError(t, err)
		assert.Equal(t, name, source.String())
	}

	_, err := scanwrap.ParseSource("duplex")
	require.Error(t, err)
	assert.True(t, errors.Is(err, scanwrap.ErrInvalidConfig))
}

func TestParseDriver(t *testing.T) {
	for _, name := range []string{"wia", "twain"} {
		driver, err := scanwrap.ParseDriver(name)
		require.NoError(t, err)
		assert.Equal(t, name, driver.String())
	}

	_, err := scanwrap.ParseDriver("sane")
	require.Error(t, err)
	assert.True(t, errors.Is(err, scanwrap.ErrInvalidConfig))
}

func TestEnumString_InvalidValues(t *testing.T) {
	assert.Equal(t, "Unknown(42)", scanwrap.Format(42).String())
	assert.Equal(t, "Unknown(42)", scanwrap.ColorMode(42).String())
	assert.Equal(t, "Unknown(42)", scanwrap.Source(42).String())
	assert.Equal(t, "Unknown(42)", scanwrap.Driver(42).String())
}
