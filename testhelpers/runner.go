package testhelpers

import (
	"context"
	"sync"

	"gbdev.dev/gbdev/internal/runtime"
)

// Call is one command observed by a FakeRunner.
type Call struct {
	Argv      []string
	Dir       string
	Overrides []string
}

// FakeRunner records commands instead of launching them. Exit statuses and
// launch errors are looked up by argv[0]; unknown commands exit 0.
type FakeRunner struct {
	mu     sync.Mutex
	calls  []Call
	Codes  map[string]int
	Errors map[string]error
}

// NewFakeRunner creates a FakeRunner with no scripted results.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Codes:  map[string]int{},
		Errors: map[string]error{},
	}
}

// Run implements process.Runner.
func (f *FakeRunner) Run(_ context.Context, ec *runtime.Context, argv []string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{
		Argv:      append([]string(nil), argv...),
		Dir:       ec.Dir,
		Overrides: ec.Overrides(),
	})
	if err, ok := f.Errors[argv[0]]; ok {
		return 0, err
	}
	return f.Codes[argv[0]], nil
}

// Calls returns the recorded calls in order.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Argvs returns only the argv of each recorded call.
func (f *FakeRunner) Argvs() [][]string {
	var argvs [][]string
	for _, c := range f.Calls() {
		argvs = append(argvs, c.Argv)
	}
	return argvs
}
