// Package execx provides external command execution behind a capability
// interface.
//
// Every external collaborator (container engine, version control client,
// release tool) is driven through Runner. Success is exit code zero; any
// non-zero exit surfaces as a *CommandError carrying the captured stderr.
// Tests substitute FakeRunner to assert on invocation arguments without
// spawning real processes.
package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result holds the captured output of a completed command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes an external command and blocks until it exits.
// Implementations must capture stdout and stderr in full.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// CommandError reports a command that exited non-zero.
type CommandError struct {
	Argv     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q exited with code %d", strings.Join(e.Argv, " "), e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// ExecRunner runs commands as real processes via os/exec.
type ExecRunner struct {
	// Dir is the working directory for spawned commands.
	// Empty means the current process working directory.
	Dir string
}

// Run executes the command and waits for it to exit. No timeout is imposed;
// cancellation comes only from ctx.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, &CommandError{
			Argv:     append([]string{name}, args...),
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
		}
	}

	// Launch failure (binary not found, permission denied) rather than a
	// non-zero exit.
	return res, fmt.Errorf("failed to run %s: %w", name, err)
}
