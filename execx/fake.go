package execx

import (
	"context"
	"strings"
	"sync"
)

// FakeRunner is a Runner that records invocations instead of spawning
// processes. Intended for tests.
//
// By default every command succeeds with empty output. FailOn maps an argv
// prefix (space-joined) to stderr text; a command matching a prefix returns
// exit code 1 and a *CommandError with that stderr.
type FakeRunner struct {
	mu sync.Mutex

	// Calls records every invocation as the full argv.
	Calls [][]string

	// FailOn maps argv prefixes to the stderr the failed command produces.
	FailOn map[string]string

	// Output maps argv prefixes to stdout for successful commands.
	Output map[string]string
}

// Run records the invocation and returns a scripted result.
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) (Result, error) {
	argv := append([]string{name}, args...)
	joined := strings.Join(argv, " ")

	f.mu.Lock()
	f.Calls = append(f.Calls, argv)
	f.mu.Unlock()

	for prefix, stderr := range f.FailOn {
		if strings.HasPrefix(joined, prefix) {
			return Result{ExitCode: 1, Stderr: stderr}, &CommandError{
				Argv:     argv,
				ExitCode: 1,
				Stderr:   stderr,
			}
		}
	}

	res := Result{}
	for prefix, stdout := range f.Output {
		if strings.HasPrefix(joined, prefix) {
			res.Stdout = stdout
			break
		}
	}
	return res, nil
}

// CallStrings returns all recorded invocations space-joined, in order.
func (f *FakeRunner) CallStrings() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.Calls))
	for _, argv := range f.Calls {
		out = append(out, strings.Join(argv, " "))
	}
	return out
}
