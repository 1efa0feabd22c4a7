// Package scan orchestrates one scan run against the external
// scanner-control tool.
//
// The run moves through a fixed sequence: availability check, device
// resolution, scanning, verification. Success is decided by Succeeded(),
// which correlates the tool's exit code with filesystem evidence; every
// failure is terminal for the run.
package scan
