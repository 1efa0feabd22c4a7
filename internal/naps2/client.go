package naps2

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rkotas/scanwrap/pkg/scanwrap"
)

// Stream tags prepended to relayed child-process output lines.
const (
	stdoutTag = "NAPS2"
	stderrTag = "ERROR"
)

// Client drives the NAPS2.Console executable through a Runner.
// Safe for concurrent use as long as the runner and logger are.
type Client struct {
	runner     Runner
	logger     scanwrap.Logger
	executable string
}

// NewClient creates a new Client for the default executable.
// Panics if runner or logger is nil: these are programmer errors that
// should fail loudly at startup.
func NewClient(runner Runner, logger scanwrap.Logger) *Client {
	return NewClientForExecutable(runner, logger, scanwrap.ToolExecutable)
}

// NewClientForExecutable creates a Client for a specific executable name or
// path. Used by tests to point at a stand-in binary.
func NewClientForExecutable(runner Runner, logger scanwrap.Logger, executable string) *Client {
	if runner == nil {
		panic("runner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if executable == "" {
		panic("executable cannot be empty")
	}
	return &Client{
		runner:     runner,
		logger:     logger,
		executable: executable,
	}
}

// CheckAvailable probes the executable with a version query. Any launch
// failure or non-zero exit maps to ErrToolUnavailable.
func (c *Client) CheckAvailable(ctx context.Context) error {
	result, err := c.runner.Run(ctx, c.executable, []string{"--version"})
	if err != nil {
		return fmt.Errorf("%s could not be launched (is it on PATH?): %w: %w",
			c.executable, err, scanwrap.ErrToolUnavailable)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%s --version exited with code %d: %w",
			c.executable, result.ExitCode, scanwrap.ErrToolUnavailable)
	}

	c.logger.Verbose("%s responded to version probe: %s", c.executable, strings.TrimSpace(result.Stdout))
	return nil
}

// ListDevices returns the device names the tool reports for the driver, one
// per non-empty stdout line, in listing order. A non-zero exit or empty
// output yields an empty list; the caller decides whether that is fatal.
func (c *Client) ListDevices(ctx context.Context, driver scanwrap.Driver) ([]string, error) {
	args := []string{"--driver", driver.String(), "--listdevices"}

	result, err := c.runner.Run(ctx, c.executable, args)
	if err != nil {
		return nil, fmt.Errorf("device listing failed: %w", err)
	}
	if result.ExitCode != 0 {
		c.logger.Verbose("device listing exited with code %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr))
		return nil, nil
	}

	var devices []string
	for _, line := range strings.Split(result.Stdout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			devices = append(devices, line)
		}
	}
	return devices, nil
}

// Scan performs the scan described by the request, relaying the tool's
// output live through the logger, and returns the tool's exit code. The
// exit code is deliberately not turned into an error here: the tool is
// known to report non-zero on partial success, so the caller correlates it
// with filesystem evidence.
func (c *Client) Scan(ctx context.Context, req scanwrap.ScanRequest) (int, error) {
	args := buildScanArgs(req)

	c.logger.Info("Command: %s %s", c.executable, strings.Join(args, " "))

	result, err := c.runner.Run(ctx, c.executable, args,
		WithStdoutLine(func(line string) { c.logger.Info("%s: %s", stdoutTag, line) }),
		WithStderrLine(func(line string) { c.logger.Info("%s: %s", stderrTag, line) }),
	)
	if err != nil {
		return 0, fmt.Errorf("scan command failed to run: %w", err)
	}

	return result.ExitCode, nil
}

// buildScanArgs assembles the tool's argument vector for one scan.
func buildScanArgs(req scanwrap.ScanRequest) []string {
	return []string{
		"--driver", req.Driver.String(),
		"--device", req.Device,
		"--source", req.Source.String(),
		"--dpi", strconv.Itoa(req.DPI),
		"--bitdepth", req.Color.String(),
		"--output", req.OutputPath(),
		"--verbose",
	}
}

// Compile-time interface check.
var _ scanwrap.Tool = (*Client)(nil)
