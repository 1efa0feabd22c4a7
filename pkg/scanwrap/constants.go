package scanwrap

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Scan completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or scan parameters
	ExitToolUnavailable = 11 // Scanner-control executable not found or not working
	ExitNoDevice        = 12 // No scanner device detected
	ExitScanFailed      = 13 // Scan produced neither a zero exit code nor output files
	ExitInterrupted     = 14 // Run aborted by an interrupt signal
)

const (
	// ToolExecutable is the scanner-control executable resolved via PATH.
	ToolExecutable = "NAPS2.Console"

	// PagePlaceholder is the token the external tool expands with the page
	// number when scanning multi-page formats.
	PagePlaceholder = "$(nnnn)"

	// DefaultOutputDir is the output folder used when none is configured.
	DefaultOutputDir = "scanned_pages"

	// DefaultPrefix is the produced-file name prefix used when none is configured.
	DefaultPrefix = "page"

	// DefaultDPI is the scan resolution used when none is configured.
	DefaultDPI = 300
)
