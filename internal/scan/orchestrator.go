package scan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rkotas/scanwrap/internal/files/filesystem"
	"github.com/rkotas/scanwrap/internal/report"
	"github.com/rkotas/scanwrap/pkg/scanwrap"
)

// Orchestrator runs a single scan end to end: availability probe, device
// resolution, the scan itself, and verification of the produced files.
//
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance.
// Create separate instances for concurrent runs.
type Orchestrator struct {
	tool       scanwrap.Tool
	fsProvider filesystem.FileSystemProvider
	logger     scanwrap.Logger
	selector   scanwrap.DeviceSelector
}

// NewOrchestrator creates a new Orchestrator with all dependencies injected.
//
// Panics on nil dependencies: these are programmer errors that should fail
// loudly at application startup, not during a scan. Runtime conditions
// (missing tool, no device, failed scan) are returned as errors instead.
func NewOrchestrator(
	tool scanwrap.Tool,
	fsProvider filesystem.FileSystemProvider,
	logger scanwrap.Logger,
	selector scanwrap.DeviceSelector,
) *Orchestrator {
	if tool == nil {
		panic("tool cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if selector == nil {
		panic("selector cannot be nil")
	}

	return &Orchestrator{
		tool:       tool,
		fsProvider: fsProvider,
		logger:     logger,
		selector:   selector,
	}
}

// Run executes one scan described by the request and returns the summary of
// produced files. Every failure is terminal for the run; there are no
// retries.
//
// Known limitation: no timeout is enforced on the child process, so a hung
// external tool hangs the run until the context is cancelled.
func (o *Orchestrator) Run(ctx context.Context, req scanwrap.ScanRequest) (*report.Summary, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scan request: %w", err)
	}

	runID := uuid.New()
	o.logger.Verbose("scan run %s starting", runID)
	o.logger.Verbose("checking scanner tool availability")

	if err := o.tool.CheckAvailable(ctx); err != nil {
		return nil, o.abort(ctx, err)
	}

	if req.Device == "" {
		device, err := o.resolveDevice(ctx, req.Driver)
		if err != nil {
			return nil, o.abort(ctx, err)
		}
		req.Device = device
	}
	o.logger.Info("Scanner: %s", req.Device)

	if err := o.fsProvider.MkdirAll(req.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output folder %q: %w", req.OutputDir, err)
	}

	o.logger.Info("Starting scan...")
	if req.Source == scanwrap.SourceFeeder {
		o.logger.Info("Make sure paper is in the ADF tray!")
	}

	exitCode, err := o.tool.Scan(ctx, req)
	if err != nil {
		return nil, o.abort(ctx, err)
	}
	o.logger.Info("%s finished with exit code %d", scanwrap.ToolExecutable, exitCode)

	summary, err := report.Collect(o.fsProvider, req.OutputDir, req.FilePattern())
	if err != nil {
		return nil, err
	}

	if !Succeeded(exitCode, summary.Count()) {
		if ctx.Err() != nil {
			return nil, o.abort(ctx, scanwrap.ErrScanFailed)
		}
		return nil, fmt.Errorf("tool exited with code %d and no files matching %q were created in %q: %w",
			exitCode, req.FilePattern(), req.OutputDir, scanwrap.ErrScanFailed)
	}

	o.logger.Verbose("scan run %s succeeded with %d file(s)", runID, summary.Count())
	return summary, nil
}

// resolveDevice discovers devices for the driver and picks one.
func (o *Orchestrator) resolveDevice(ctx context.Context, driver scanwrap.Driver) (string, error) {
	o.logger.Verbose("no device specified, listing %s devices", driver)

	devices, err := o.tool.ListDevices(ctx, driver)
	if err != nil {
		return "", err
	}
	if len(devices) == 0 {
		return "", fmt.Errorf("device listing for driver %q returned nothing: %w", driver, scanwrap.ErrNoDeviceFound)
	}

	o.logger.Verbose("found %d device(s)", len(devices))
	return o.selector.Select(ctx, devices)
}

// abort maps failures that happened after the context was cancelled to the
// interrupt sentinel so the user sees "interrupted" rather than a spurious
// tool error.
func (o *Orchestrator) abort(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("scan run aborted: %w", scanwrap.ErrInterrupted)
	}
	return err
}
