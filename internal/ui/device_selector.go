package ui

import (
	"context"
	"fmt"

	"github.com/rkotas/scanwrap/internal/tui"
	"github.com/rkotas/scanwrap/pkg/scanwrap"
)

// FirstDeviceSelector implements the DeviceSelector interface by taking the
// first listed device, matching the external tool's listing order. This is
// the behavior for scripts and piped runs.
type FirstDeviceSelector struct {
	logger scanwrap.Logger
}

// NewFirstDeviceSelector creates a new FirstDeviceSelector.
func NewFirstDeviceSelector(logger scanwrap.Logger) scanwrap.DeviceSelector {
	return &FirstDeviceSelector{logger: logger}
}

// Select returns the first discovered device.
func (s *FirstDeviceSelector) Select(ctx context.Context, devices []string) (string, error) {
	if len(devices) == 0 {
		return "", fmt.Errorf("no devices to select from: %w", scanwrap.ErrNoDeviceFound)
	}
	if len(devices) > 1 && s.logger != nil {
		s.logger.Verbose("%d devices found, using the first", len(devices))
	}
	return devices[0], nil
}

// InteractiveDeviceSelector implements the DeviceSelector interface with a
// terminal picker when several devices are connected. With a single device,
// or when the session turns out not to be interactive after all, it behaves
// like FirstDeviceSelector.
type InteractiveDeviceSelector struct {
	driver scanwrap.Driver
	logger scanwrap.Logger
}

// NewInteractiveDeviceSelector creates a new InteractiveDeviceSelector for
// the given driver (shown in the picker title).
func NewInteractiveDeviceSelector(driver scanwrap.Driver, logger scanwrap.Logger) scanwrap.DeviceSelector {
	return &InteractiveDeviceSelector{driver: driver, logger: logger}
}

// Select lets the user pick a device when more than one was discovered.
func (s *InteractiveDeviceSelector) Select(ctx context.Context, devices []string) (string, error) {
	if len(devices) == 0 {
		return "", fmt.Errorf("no devices to select from: %w", scanwrap.ErrNoDeviceFound)
	}
	if len(devices) == 1 || !tui.IsInteractive() {
		return devices[0], nil
	}

	device, err := tui.PickDevice(ctx, s.driver.String(), devices)
	if err != nil {
		return "", fmt.Errorf("%w: %w", err, scanwrap.ErrNoDeviceFound)
	}
	return device, nil
}

// Verify selectors implement the DeviceSelector interface at compile time
var (
	_ scanwrap.DeviceSelector = (*FirstDeviceSelector)(nil)
	_ scanwrap.DeviceSelector = (*InteractiveDeviceSelector)(nil)
)
