package scanwrap

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := orchestrator.Run(ctx, req)
//	if errors.Is(err, scanwrap.ErrNoDeviceFound) {
//	    // Handle no scanner being connected
//	}
var (
	// ErrInvalidConfig indicates the provided scan configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrToolUnavailable indicates the scanner-control executable could not
	// be located on PATH or failed its version probe.
	ErrToolUnavailable = errors.New("scanner tool unavailable")

	// ErrNoDeviceFound indicates device listing returned no usable device.
	ErrNoDeviceFound = errors.New("no scanner device found")

	// ErrScanFailed indicates the scan produced neither a zero exit code nor
	// any output files.
	ErrScanFailed = errors.New("scan failed")

	// ErrInterrupted indicates the run was aborted by an interrupt signal.
	ErrInterrupted = errors.New("interrupted by user")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrToolUnavailable):
		return ExitToolUnavailable
	case errors.Is(err, ErrNoDeviceFound):
		return ExitNoDevice
	case errors.Is(err, ErrScanFailed):
		return ExitScanFailed
	case errors.Is(err, ErrInterrupted):
		return ExitInterrupted
	}

	// Cobra reports flag/argument misuse as plain errors; recognize the
	// common message shapes so they map to the usage exit code.
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "accepts") {
		return ExitUsageError
	}

	return ExitGeneralError
}
