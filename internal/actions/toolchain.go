package actions

import (
	"context"
	"fmt"

	"gbdev.dev/gbdev/internal/intent"
	"gbdev.dev/gbdev/internal/runtime"
)

// ConfigureAction runs the meta-build generator in src.
func (d *Dispatcher) ConfigureAction(ctx context.Context, ec *runtime.Context) error {
	return d.delegate(ctx, ec.In("src"), ec.Config.GeneratorCommand())
}

// CleanAction runs the build tool's clean target in src.
func (d *Dispatcher) CleanAction(ctx context.Context, ec *runtime.Context) error {
	return d.delegate(ctx, ec.In("src"), []string{ec.Config.MakeCommand(), "clean"})
}

// ResetAction force-cleans untracked and ignored files from the root.
func (d *Dispatcher) ResetAction(ctx context.Context, ec *runtime.Context) error {
	return d.delegate(ctx, ec.In(), ec.Config.ResetCommand())
}

// BuildAction runs a parallel build in src. The debug variant also names the
// build tool's debug target.
func (d *Dispatcher) BuildAction(ctx context.Context, ec *runtime.Context, opts intent.Build) error {
	return d.delegate(ctx, ec.In("src"), BuildCommand(ec, opts.Variant))
}

// BuildCommand returns the argv BuildAction runs for variant.
func BuildCommand(ec *runtime.Context, variant intent.Variant) []string {
	argv := []string{ec.Config.MakeCommand(), fmt.Sprintf("-j%d", ec.Config.BuildJobs())}
	if variant == intent.Debug {
		argv = append(argv, "debug")
	}
	return argv
}
