package scanwrap

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Format represents the output file format produced by a scan.
type Format int

const (
	FormatPNG Format = iota
	FormatJPG
	FormatJPEG
	FormatTIFF
	FormatBMP
	FormatPDF
)

var formatNames = [...]string{"png", "jpg", "jpeg", "tiff", "bmp", "pdf"}

// ParseFormat parses a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if s == name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown format %q (valid: png, jpg, jpeg, tiff, bmp, pdf): %w", s, ErrInvalidConfig)
}

// String returns the format name as accepted on the command line.
func (f Format) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
	return formatNames[f]
}

// Extension returns the file extension without the leading dot.
func (f Format) Extension() string { return f.String() }

// IsValid returns true if the Format is a valid, defined value.
func (f Format) IsValid() bool {
	return f >= FormatPNG && f <= FormatPDF
}

// ColorMode represents the color depth requested from the scanner.
type ColorMode int

const (
	ColorModeColor ColorMode = iota
	ColorModeGray
	ColorModeBW
)

var colorModeNames = [...]string{"color", "gray", "bw"}

// ParseColorMode parses a user-supplied color mode name.
func ParseColorMode(s string) (ColorMode, error) {
	for i, name := range colorModeNames {
		if s == name {
			return ColorMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color mode %q (valid: color, gray, bw): %w", s, ErrInvalidConfig)
}

// String returns the color mode name as passed to the external tool's
// --bitdepth flag.
func (c ColorMode) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
	return colorModeNames[c]
}

// IsValid returns true if the ColorMode is a valid, defined value.
func (c ColorMode) IsValid() bool {
	return c >= ColorModeColor && c <= ColorModeBW
}

// Source represents the paper path used by the scanner.
type Source int

const (
	SourceFeeder Source = iota
	SourceGlass
)

var sourceNames = [...]string{"feeder", "glass"}

// ParseSource parses a user-supplied paper source name.
func ParseSource(s string) (Source, error) {
	for i, name := range sourceNames {
		if s == name {
			return Source(i), nil
		}
	}
	return 0, fmt.Errorf("unknown source %q (valid: feeder, glass): %w", s, ErrInvalidConfig)
}

// String returns the source name as passed to the external tool.
func (s Source) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
	return sourceNames[s]
}

// IsValid returns true if the Source is a valid, defined value.
func (s Source) IsValid() bool {
	return s >= SourceFeeder && s <= SourceGlass
}

// Driver represents the scanner access protocol used by the external tool.
type Driver int

const (
	DriverWIA Driver = iota
	DriverTWAIN
)

var driverNames = [...]string{"wia", "twain"}

// ParseDriver parses a user-supplied driver name.
func ParseDriver(s string) (Driver, error) {
	for i, name := range driverNames {
		if s == name {
			return Driver(i), nil
		}
	}
	return 0, fmt.Errorf("unknown driver %q (valid: wia, twain): %w", s, ErrInvalidConfig)
}

// String returns the driver name as passed to the external tool.
func (d Driver) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Unknown(%d)", int(d))
	}
	return driverNames[d]
}

// IsValid returns true if the Driver is a valid, defined value.
func (d Driver) IsValid() bool {
	return d >= DriverWIA && d <= DriverTWAIN
}

// ScanRequest contains all parameters needed for one scan run.
// Values are resolved at the CLI boundary and not mutated afterwards.
type ScanRequest struct {
	// OutputDir is the folder that receives the produced files.
	// Created (recursively) if absent.
	OutputDir string

	// Prefix is the produced-file name prefix.
	Prefix string

	// Format is the output file format.
	Format Format

	// DPI is the scan resolution in dots per inch.
	DPI int

	// Color is the requested color depth.
	Color ColorMode

	// Source is the paper path (document feeder or flatbed glass).
	Source Source

	// Device is the scanner device name. Empty means auto-detect via the
	// external tool's device listing.
	Device string

	// Driver selects the scanner access protocol.
	Driver Driver

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the ScanRequest has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (r *ScanRequest) Validate() error {
	var errs []error

	if r.OutputDir == "" {
		errs = append(errs, fmt.Errorf("output folder is required: %w", ErrInvalidConfig))
	}

	if r.Prefix == "" {
		errs = append(errs, fmt.Errorf("file prefix is required: %w", ErrInvalidConfig))
	}

	if r.DPI <= 0 {
		errs = append(errs, fmt.Errorf("dpi must be a positive integer, got %d: %w", r.DPI, ErrInvalidConfig))
	}

	if !r.Format.IsValid() {
		errs = append(errs, fmt.Errorf("format is not valid: %w", ErrInvalidConfig))
	}

	if !r.Color.IsValid() {
		errs = append(errs, fmt.Errorf("color mode is not valid: %w", ErrInvalidConfig))
	}

	if !r.Source.IsValid() {
		errs = append(errs, fmt.Errorf("source is not valid: %w", ErrInvalidConfig))
	}

	if !r.Driver.IsValid() {
		errs = append(errs, fmt.Errorf("driver is not valid: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// OutputPath returns the --output argument passed to the external tool.
// PDF collects all pages into a single file; every other format gets a
// page-number placeholder the tool expands per scanned page.
func (r *ScanRequest) OutputPath() string {
	if r.Format == FormatPDF {
		return filepath.Join(r.OutputDir, r.Prefix+".pdf")
	}
	return filepath.Join(r.OutputDir, r.Prefix+"_"+PagePlaceholder+"."+r.Format.Extension())
}

// FilePattern returns the glob pattern that produced files match inside
// OutputDir, used for post-scan verification.
func (r *ScanRequest) FilePattern() string {
	return r.Prefix + "*." + r.Format.Extension()
}
