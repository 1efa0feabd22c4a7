package cli

import (
	"testing"

	"github.com/rkotas/scanwrap/pkg/scanwrap"
)

func TestRootCmd_HasExpectedSubcommands(t *testing.T) {
	expected := map[string]bool{
		"scan":    false,
		"devices": false,
		"version": false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}
	for name, found := range expected {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestDevicesCmd_RejectsPositionalArgs(t *testing.T) {
	err := devicesCmd.Args(devicesCmd, []string{"extra"})
	if err == nil {
		t.Fatal("Expected error for positional args")
	}
	if scanwrap.ExitCodeForError(err) != scanwrap.ExitUsageError {
		t.Errorf("Expected usage error exit code, got %d for: %v", scanwrap.ExitCodeForError(err), err)
	}
}

func TestDevicesCmd_InvalidDriver(t *testing.T) {
	devicesDriver = "sane"
	t.Cleanup(func() { devicesDriver = "wia" })

	err := runDevices(devicesCmd, nil)
	if err == nil {
		t.Fatal("Expected error for invalid driver")
	}
	if scanwrap.ExitCodeForError(err) != scanwrap.ExitConfigError {
		t.Errorf("Expected config error exit code, got %d for: %v", scanwrap.ExitCodeForError(err), err)
	}
}
