package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rkotas/scanwrap/pkg/scanwrap"
)

// InteractivePrompter implements the ExitPrompter interface for console use:
// it holds the window open until the user presses Enter, so a double-clicked
// run does not vanish with its summary.
type InteractivePrompter struct {
	in  io.Reader
	out io.Writer
}

// NewInteractivePrompter creates a prompter reading stdin and writing stderr.
func NewInteractivePrompter() *InteractivePrompter {
	return &InteractivePrompter{in: os.Stdin, out: os.Stderr}
}

// NewInteractivePrompterIO creates a prompter over explicit streams.
// Used by tests.
func NewInteractivePrompterIO(in io.Reader, out io.Writer) *InteractivePrompter {
	return &InteractivePrompter{in: in, out: out}
}

// Wait blocks until the user presses Enter or the context is cancelled.
func (p *InteractivePrompter) Wait(ctx context.Context) error {
	fmt.Fprint(p.out, "\nPress Enter to exit... ")

	// Read user input with context cancellation support
	done := make(chan error, 1)
	go func() {
		reader := bufio.NewReader(p.in)
		_, err := reader.ReadString('\n')
		done <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read input: %w", err)
		}
		return nil
	}
}

// SilentPrompter implements the ExitPrompter interface for scripts, CI, and
// --no-input runs: it returns immediately.
type SilentPrompter struct{}

// NewSilentPrompter creates a new SilentPrompter.
func NewSilentPrompter() *SilentPrompter {
	return &SilentPrompter{}
}

// Wait is a no-op.
func (p *SilentPrompter) Wait(ctx context.Context) error {
	return nil
}

// Verify prompters implement the ExitPrompter interface at compile time
var (
	_ scanwrap.ExitPrompter = (*InteractivePrompter)(nil)
	_ scanwrap.ExitPrompter = (*SilentPrompter)(nil)
)
