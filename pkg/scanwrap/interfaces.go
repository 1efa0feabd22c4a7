package scanwrap

import "context"

// Tool is the contract with the external scanner-control executable.
//
// Implementations:
//   - naps2.Client: invokes NAPS2.Console via a process runner
//   - test fakes: scripted responses for orchestrator tests
type Tool interface {
	// CheckAvailable probes the executable with a version query.
	// Returns ErrToolUnavailable if it cannot be launched or exits non-zero.
	CheckAvailable(ctx context.Context) error

	// ListDevices returns the device names reported for the given driver,
	// one per non-empty output line, in listing order.
	ListDevices(ctx context.Context, driver Driver) ([]string, error)

	// Scan performs the scan described by the request, streaming the tool's
	// output live, and returns the tool's exit code. A non-nil error means
	// the process could not be run at all; a non-zero exit code alone is
	// not an error here because filesystem evidence may still prove success.
	Scan(ctx context.Context, req ScanRequest) (exitCode int, err error)
}

// DeviceSelector chooses one device from a non-empty discovered list.
//
// Implementations:
//   - ui.FirstDeviceSelector: takes the first listed device
//   - ui.InteractiveDeviceSelector: terminal picker when several are found
type DeviceSelector interface {
	Select(ctx context.Context, devices []string) (string, error)
}

// ExitPrompter blocks until the user acknowledges the printed summary.
//
// Implementations:
//   - ui.InteractivePrompter: waits for Enter on a terminal
//   - ui.SilentPrompter: returns immediately (scripts, CI, --no-input)
type ExitPrompter interface {
	Wait(ctx context.Context) error
}
