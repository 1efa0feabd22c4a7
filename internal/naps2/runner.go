package naps2

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
)

// Result holds the output and exit code from a command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner abstracts subprocess execution so tests can substitute a fake
// external tool without spawning processes.
type Runner interface {
	// Run executes the command and waits for it to finish. A non-zero exit
	// code is reported through Result.ExitCode, not as an error; errors are
	// reserved for commands that could not be run at all (executable not
	// found, pipe setup failure).
	Run(ctx context.Context, name string, args []string, opts ...RunOption) (*Result, error)
}

type runOptions struct {
	stdoutLine func(string)
	stderrLine func(string)
}

// RunOption configures a single Run call.
type RunOption func(*runOptions)

// WithStdoutLine registers a callback invoked for every stdout line as the
// child produces it.
func WithStdoutLine(fn func(string)) RunOption {
	return func(o *runOptions) { o.stdoutLine = fn }
}

// WithStderrLine registers a callback invoked for every stderr line as the
// child produces it.
func WithStderrLine(fn func(string)) RunOption {
	return func(o *runOptions) { o.stderrLine = fn }
}

// ExecRunner runs commands via os/exec. Both output streams are drained
// concurrently and joined before the exit code is collected, so a chatty
// child cannot deadlock on a full OS pipe buffer.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts ...RunOption) (*Result, error) {
	var options runOptions
	for _, opt := range opts {
		opt(&options)
	}

	cmd := exec.CommandContext(ctx, name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", name, err)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	var stdoutErr, stderrErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		stdoutErr = drain(stdout, &stdoutBuf, options.stdoutLine)
	}()
	go func() {
		defer wg.Done()
		stderrErr = drain(stderr, &stderrBuf, options.stderrLine)
	}()
	wg.Wait()

	waitErr := cmd.Wait()

	result := &Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
		result.ExitCode = 0
	case errors.As(waitErr, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return result, fmt.Errorf("command %s failed: %w", name, waitErr)
	}

	if drainErr := errors.Join(stdoutErr, stderrErr); drainErr != nil {
		return result, fmt.Errorf("failed to read %s output: %w", name, drainErr)
	}

	return result, nil
}

// drain consumes one output stream line-by-line, capturing into buf and
// relaying each line to onLine when set. If the scanner gives up (for
// example on a line above its buffer cap), the remainder of the stream is
// still consumed so the child never blocks on a full pipe, and the error is
// returned.
func drain(r io.Reader, buf *bytes.Buffer, onLine func(string)) error {
	if onLine == nil {
		_, err := io.Copy(buf, r)
		return err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		buf.WriteString(line)
		buf.WriteByte('\n')
		onLine(line)
	}
	if err := scanner.Err(); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}

// Compile-time interface check.
var _ Runner = (*ExecRunner)(nil)
