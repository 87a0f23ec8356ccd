package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gbdev.dev/gbdev/internal/actions"
	"gbdev.dev/gbdev/internal/config"
	gbdeverrors "gbdev.dev/gbdev/internal/errors"
	"gbdev.dev/gbdev/internal/intent"
	"gbdev.dev/gbdev/internal/output"
	"gbdev.dev/gbdev/internal/platform"
	"gbdev.dev/gbdev/internal/process"
	"gbdev.dev/gbdev/internal/project"
	"gbdev.dev/gbdev/internal/runtime"
)

// Options holds the dependencies of the root command.
type Options struct {
	Version string
	Commit  string
	Date    string

	// Runner launches delegates; nil uses a process.Executor on Stdout/Stderr.
	Runner process.Runner
	// WorkDir is where the root search starts; empty uses the process working directory.
	WorkDir string
	Naming  platform.Naming
	Stdout  io.Writer
	Stderr  io.Writer
}

// DefaultOptions returns the options used by the gbdev binary.
func DefaultOptions(version, commit, date string) Options {
	return Options{
		Version: version,
		Commit:  commit,
		Date:    date,
		Naming:  platform.Host(),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// NewRootCmd creates the root cobra command
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	var (
		flags    intent.Flags
		sanitize bool
	)

	cmd := &cobra.Command{
		Use:   "gbdev [flags] [args]",
		Short: "gbdev builds, tests and runs the project from anywhere inside its tree",
		Long: `gbdev finds the project root (the nearest directory with a .git entry, at
most 10 levels up) and runs one operation relative to it:

  -p                      print the project root
  -q                      configure (qmake) in src
  -c                      clean in src
  -i                      remove untracked and ignored files (git clean -ffxd)
  -d                      debug public/debug/bin binary in gdb
  -l BASE NAME DEST       link DEST to BASE/NAME unless DEST exists
  -v TARGET               profile public/release/bin binary with callgrind
  -t VARIANT              run every *test binary in public/VARIANT/bin
  -b VARIANT              build VARIANT in src
  -r [VARIANT] [TARGET]   run public/VARIANT/bin binary (default release)

If several operations are given the first one in the list above wins.
gbdev exits with the status of the program it ran.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", opts.Version, opts.Commit, opts.Date),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.Args = args
			flags.ProfileSet = cmd.Flags().Changed("profile")
			flags.TestSet = cmd.Flags().Changed("test")
			flags.BuildSet = cmd.Flags().Changed("build")
			return run(cmd.Context(), opts, flags, sanitize)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&flags.Path, "path", "p", false, "print the project root")
	f.BoolVarP(&flags.Configure, "configure", "q", false, "run the meta-build generator")
	f.BoolVarP(&flags.Clean, "clean", "c", false, "run the build tool's clean target")
	f.BoolVarP(&flags.Reset, "reset", "i", false, "remove untracked and ignored files")
	f.StringVarP(&flags.Build, "build", "b", "", "build `VARIANT` ("+intent.VariantNames()+")")
	f.StringVarP(&flags.Test, "test", "t", "", "run the test binaries of `VARIANT` ("+intent.VariantNames()+")")
	f.BoolVarP(&flags.Debug, "debug", "d", false, "debug the debug binary")
	f.StringVarP(&flags.Profile, "profile", "v", "", "profile the release binary with `TARGET`")
	f.BoolVarP(&flags.Run, "run", "r", false, "run a binary: [VARIANT] [TARGET]")
	f.BoolVarP(&sanitize, "asan", "a", false, "preload the address sanitizer into every child")
	f.BoolVarP(&flags.Link, "link", "l", false, "create a symlink: BASE NAME DEST")

	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return gbdeverrors.NewUsageError("%v", err)
	})

	return cmd
}

// run resolves the project and dispatches the decoded intent.
func run(ctx context.Context, opts Options, flags intent.Flags, sanitize bool) error {
	it, err := intent.Decode(flags)
	if err != nil {
		return gbdeverrors.NewUsageError("%v", err)
	}

	splog, err := output.NewSplogWithConfig(output.Options{
		Stdout:  opts.Stdout,
		Stderr:  opts.Stderr,
		LogFile: output.GetLogFilePath(),
		Debug:   os.Getenv("DEBUG") != "",
	})
	if err != nil {
		return err
	}
	defer func() { _ = splog.Close() }()

	var root string
	if opts.WorkDir != "" {
		root, err = project.Locate(opts.WorkDir)
	} else {
		root, err = project.LocateFromWorkingDir()
	}
	if err != nil {
		return err
	}
	if info, err := project.Describe(root); err == nil {
		splog.Debug("project root %s", info)
	} else {
		splog.Debug("project root %s (%v)", root, err)
	}

	cfg, err := config.GetProjectConfig(root)
	if err != nil {
		return err
	}

	ec := runtime.NewContext(root, cfg, splog, opts.Naming)
	if sanitize {
		ec = actions.WithSanitizer(ec)
		splog.Debug("%s=%s", actions.SanitizerEnv, cfg.SanitizerLibrary())
	}

	runner := opts.Runner
	if runner == nil {
		runner = process.NewExecutor(opts.Stdout, opts.Stderr)
	}
	return actions.NewDispatcher(runner).Dispatch(ctx, ec, it)
}
