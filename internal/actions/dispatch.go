package actions

import (
	"context"
	"fmt"

	gbdeverrors "gbdev.dev/gbdev/internal/errors"
	"gbdev.dev/gbdev/internal/intent"
	"gbdev.dev/gbdev/internal/process"
	"gbdev.dev/gbdev/internal/runtime"
)

// SanitizerEnv is the variable -a sets so every child preloads the sanitizer.
const SanitizerEnv = "LD_PRELOAD"

// Dispatcher runs the operation selected by an Intent.
type Dispatcher struct {
	runner process.Runner
}

// NewDispatcher creates a Dispatcher that launches delegates with runner.
func NewDispatcher(runner process.Runner) *Dispatcher {
	return &Dispatcher{runner: runner}
}

// WithSanitizer returns a context whose children preload the configured
// sanitizer library.
func WithSanitizer(ec *runtime.Context) *runtime.Context {
	return ec.WithEnv(SanitizerEnv, ec.Config.SanitizerLibrary())
}

// Dispatch performs exactly one operation. ec must be rooted at the project
// root. A delegate's nonzero exit status comes back as a DelegateError (or a
// TestFailureError) carrying that status unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, ec *runtime.Context, it intent.Intent) error {
	ec.Splog.Debug("dispatching %s", it.Name())

	switch it := it.(type) {
	case intent.None:
		return nil
	case intent.ReportPath:
		return ReportPathAction(ec)
	case intent.Configure:
		return d.ConfigureAction(ctx, ec)
	case intent.Clean:
		return d.CleanAction(ctx, ec)
	case intent.Reset:
		return d.ResetAction(ctx, ec)
	case intent.Debugger:
		return d.DebugAction(ctx, ec)
	case intent.Link:
		return LinkAction(ec, it)
	case intent.Profile:
		return d.ProfileAction(ctx, ec, it)
	case intent.Test:
		return d.TestAction(ctx, ec, it)
	case intent.Build:
		return d.BuildAction(ctx, ec, it)
	case intent.Run:
		return d.RunAction(ctx, ec, it)
	default:
		return fmt.Errorf("unknown operation %T", it)
	}
}

// delegate runs argv and turns a nonzero status into a DelegateError.
func (d *Dispatcher) delegate(ctx context.Context, ec *runtime.Context, argv []string) error {
	code, err := d.runner.Run(ctx, ec, argv)
	if err != nil {
		return err
	}
	if code != 0 {
		return gbdeverrors.NewDelegateError(argv, code)
	}
	return nil
}
