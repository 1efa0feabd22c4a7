package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rkotas/scanwrap/internal/cli"
	"github.com/rkotas/scanwrap/pkg/scanwrap"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(scanwrap.ExitPanic)
		}
	}()

	if os.Getenv("SCANWRAP_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(scanwrap.ExitCodeForError(err))
	}
}
