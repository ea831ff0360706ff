// Package exec provides an interface for running exercise toolchain commands.
package exec

import (
	"context"
)

// CommandRunner defines the interface for running external commands.
// This abstraction allows mocking build and test invocations in tests.
type CommandRunner interface {
	// Run executes a command and returns combined stdout/stderr output.
	// The working directory is set to workDir if non-empty. A non-zero
	// exit reports an *exec.ExitError; spawn failures report other errors.
	Run(ctx context.Context, workDir string, name string, args ...string) (output []byte, err error)

	// LookPath reports where the named binary resolves in PATH, or an
	// error when the toolchain is not installed.
	LookPath(name string) (string, error)
}
