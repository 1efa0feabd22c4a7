package scan

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkotas/scanwrap/internal/files/filesystem"
	"github.com/rkotas/scanwrap/internal/logging"
	"github.com/rkotas/scanwrap/pkg/scanwrap"
)

// fakeTool scripts the external tool's behavior and records what was asked
// of it.
type fakeTool struct {
	availableErr error

	devices []string
	listErr error

	scanExit int
	scanErr  error
	onScan   func(req scanwrap.ScanRequest)

	listCalls int
	scanCalls int
	scannedAs scanwrap.ScanRequest
}

func (f *fakeTool) CheckAvailable(ctx context.Context) error {
	return f.availableErr
}

func (f *fakeTool) ListDevices(ctx context.Context, driver scanwrap.Driver) ([]string, error) {
	f.listCalls++
	return f.devices, f.listErr
}

func (f *fakeTool) Scan(ctx context.Context, req scanwrap.ScanRequest) (int, error) {
	f.scanCalls++
	f.scannedAs = req
	if f.onScan != nil {
		f.onScan(req)
	}
	return f.scanExit, f.scanErr
}

// firstSelector picks the first device, mirroring the default selector.
type firstSelector struct{}

func (firstSelector) Select(ctx context.Context, devices []string) (string, error) {
	return devices[0], nil
}

func newRequest() scanwrap.ScanRequest {
	return scanwrap.ScanRequest{
		OutputDir: "scans",
		Prefix:    "page",
		Format:    scanwrap.FormatPNG,
		DPI:       300,
		Color:     scanwrap.ColorModeColor,
		Source:    scanwrap.SourceFeeder,
		Driver:    scanwrap.DriverWIA,
	}
}

func newOrchestrator(tool *fakeTool, mfs *filesystem.MemoryFileSystem) *Orchestrator {
	return NewOrchestrator(tool, mfs, logging.NewNullLogger(), firstSelector{})
}

func TestRun_ToolUnavailableStopsBeforeScan(t *testing.T) {
	tool := &fakeTool{availableErr: fmt.Errorf("probe: %w", scanwrap.ErrToolUnavailable)}
	orch := newOrchestrator(tool, filesystem.NewMemoryFileSystem())

	_, err := orch.Run(context.Background(), newRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, scanwrap.ErrToolUnavailable))
	assert.Equal(t, 0, tool.listCalls)
	assert.Equal(t, 0, tool.scanCalls)
}

func TestRun_NoDevicesStopsBeforeScan(t *testing.T) {
	tool := &fakeTool{devices: nil}
	orch := newOrchestrator(tool, filesystem.NewMemoryFileSystem())

	_, err := orch.Run(context.Background(), newRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, scanwrap.ErrNoDeviceFound))
	assert.Equal(t, 1, tool.listCalls)
	assert.Equal(t, 0, tool.scanCalls)
}

func TestRun_ResolvesFirstDevice(t *testing.T) {
	tool := &fakeTool{devices: []string{"Xerox WIA - A", "Brother B"}}
	orch := newOrchestrator(tool, filesystem.NewMemoryFileSystem())

	_, err := orch.Run(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, "Xerox WIA - A", tool.scannedAs.Device)
}

func TestRun_ExplicitDeviceSkipsListing(t *testing.T) {
	tool := &fakeTool{}
	orch := newOrchestrator(tool, filesystem.NewMemoryFileSystem())

	req := newRequest()
	req.Device = "Kyocera TWAIN"

	_, err := orch.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, tool.listCalls)
	assert.Equal(t, "Kyocera TWAIN", tool.scannedAs.Device)
}

func TestRun_CreatesOutputFolder(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	tool := &fakeTool{devices: []string{"dev"}}
	orch := newOrchestrator(tool, mfs)

	req := newRequest()
	req.OutputDir = "deep/scans"

	_, err := orch.Run(context.Background(), req)
	require.NoError(t, err)

	info, err := mfs.Stat("deep/scans")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRun_FilesystemEvidenceWinsOverExitCode(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	tool := &fakeTool{
		devices:  []string{"dev"},
		scanExit: 1,
		onScan: func(req scanwrap.ScanRequest) {
			mfs.AddFile("scans/page_0001.png", 2048)
		},
	}
	orch := newOrchestrator(tool, mfs)

	summary, err := orch.Run(context.Background(), newRequest())
	require.NoError(t, err)
	require.Equal(t, 1, summary.Count())
	assert.Equal(t, "page_0001.png", summary.Files[0].Name)
}

func TestRun_ZeroExitWinsWithoutFiles(t *testing.T) {
	tool := &fakeTool{devices: []string{"dev"}, scanExit: 0}
	orch := newOrchestrator(tool, filesystem.NewMemoryFileSystem())

	summary, err := orch.Run(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Count())
}

func TestRun_BothSignalsNegativeFails(t *testing.T) {
	tool := &fakeTool{devices: []string{"dev"}, scanExit: 2}
	orch := newOrchestrator(tool, filesystem.NewMemoryFileSystem())

	_, err := orch.Run(context.Background(), newRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, scanwrap.ErrScanFailed))
}

func TestRun_WrongFormatFilesDoNotCount(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	tool := &fakeTool{
		devices:  []string{"dev"},
		scanExit: 1,
		onScan: func(req scanwrap.ScanRequest) {
			mfs.AddFile("scans/page_0001.jpg", 2048) // wrong extension
			mfs.AddFile("scans/other_0001.png", 512) // wrong prefix
		},
	}
	orch := newOrchestrator(tool, mfs)

	_, err := orch.Run(context.Background(), newRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, scanwrap.ErrScanFailed))
}

func TestRun_InvalidRequestRejectedBeforeToolUse(t *testing.T) {
	tool := &fakeTool{}
	orch := newOrchestrator(tool, filesystem.NewMemoryFileSystem())

	req := newRequest()
	req.DPI = 0

	_, err := orch.Run(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scanwrap.ErrInvalidConfig))
	assert.Equal(t, 0, tool.scanCalls)
}

func TestRun_CancelledContextReportsInterruption(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tool := &fakeTool{
		devices:  []string{"dev"},
		scanExit: -1,
		onScan: func(req scanwrap.ScanRequest) {
			cancel() // interrupt arrives mid-scan
		},
	}
	orch := newOrchestrator(tool, filesystem.NewMemoryFileSystem())

	_, err := orch.Run(ctx, newRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, scanwrap.ErrInterrupted))
}

func TestNewOrchestrator_PanicsOnNilDependencies(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	logger := logging.NewNullLogger()

	assert.Panics(t, func() { NewOrchestrator(nil, mfs, logger, firstSelector{}) })
	assert.Panics(t, func() { NewOrchestrator(&fakeTool{}, nil, logger, firstSelector{}) })
	assert.Panics(t, func() { NewOrchestrator(&fakeTool{}, mfs, nil, firstSelector{}) })
	assert.Panics(t, func() { NewOrchestrator(&fakeTool{}, mfs, logger, nil) })
}
