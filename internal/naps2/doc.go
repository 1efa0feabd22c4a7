// Package naps2 talks to the NAPS2.Console scanner-control executable.
//
// The package has two layers:
//   - Runner: a narrow subprocess abstraction over os/exec that drains both
//     output streams concurrently, so tests can substitute a fake tool.
//   - Client: builds the tool's CLI invocations (version probe, device
//     listing, scan) and maps launch failures to scanwrap sentinel errors.
//
// A scan's non-zero exit code is surfaced as data rather than an error
// because NAPS2 is known to exit non-zero on partial success; the scan
// orchestrator correlates it with filesystem evidence.
package naps2
