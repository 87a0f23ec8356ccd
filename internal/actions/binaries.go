package actions

import (
	"context"

	"gbdev.dev/gbdev/internal/intent"
	"gbdev.dev/gbdev/internal/process"
	"gbdev.dev/gbdev/internal/runtime"
)

// DebugAction opens the debug binary in the debugger's text UI.
func (d *Dispatcher) DebugAction(ctx context.Context, ec *runtime.Context) error {
	bin := ec.In(intent.Debug.BinDir()...)
	argv := append(ec.Config.DebuggerCommand(), bin.Binary())
	return d.delegate(ctx, bin, argv)
}

// ProfileAction runs the release binary under the call-graph profiler.
func (d *Dispatcher) ProfileAction(ctx context.Context, ec *runtime.Context, opts intent.Profile) error {
	bin := ec.In(intent.Release.BinDir()...)
	argv := append(ec.Config.ProfilerCommand(), bin.Binary(), opts.Target)
	return d.delegate(ctx, bin, argv)
}

// RunAction launches the variant's binary, passing the target when given.
func (d *Dispatcher) RunAction(ctx context.Context, ec *runtime.Context, opts intent.Run) error {
	bin := ec.In(opts.Variant.BinDir()...)
	argv := []string{bin.Binary()}
	if opts.Target != "" {
		argv = append(argv, opts.Target)
	}
	return d.delegate(ctx, bin, argv)
}

// TestAction runs every test binary of the variant, stopping at the first
// failure.
func (d *Dispatcher) TestAction(ctx context.Context, ec *runtime.Context, opts intent.Test) error {
	_, err := process.RunTests(ctx, d.runner, ec.In(opts.Variant.BinDir()...))
	return err
}
