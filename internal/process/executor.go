package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	goruntime "runtime"
	"strings"

	gbdeverrors "gbdev.dev/gbdev/internal/errors"
	"gbdev.dev/gbdev/internal/platform"
	"gbdev.dev/gbdev/internal/runtime"
)

// Runner launches one external command and waits for it.
//
// The returned status is the child's exit status; a nonzero status is a
// result, not an error. err is reserved for commands that could not be
// started at all.
type Runner interface {
	Run(ctx context.Context, ec *runtime.Context, argv []string) (int, error)
}

// Executor is the Runner backed by os/exec.
type Executor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecutor creates an Executor that reads the parent's stdin and writes to
// stdout and stderr. Nil writers fall back to the parent's streams.
func NewExecutor(stdout, stderr io.Writer) *Executor {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Executor{
		Stdin:  os.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Run executes argv in ec.Dir with ec's environment. No timeout is applied
// and output is not captured.
func (e *Executor) Run(ctx context.Context, ec *runtime.Context, argv []string) (int, error) {
	if len(argv) == 0 || argv[0] == "" {
		return 0, fmt.Errorf("empty command")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ec.Splog.Debug("running %s in %s", strings.Join(argv, " "), ec.Dir)

	//nolint:gosec // running the configured toolchain is the point of this tool
	cmd := exec.CommandContext(ctx, localCommand(ec.Dir, argv[0]), argv[1:]...)
	cmd.Dir = ec.Dir
	cmd.Env = ec.Environ()
	if goruntime.GOOS != "windows" {
		// exec only sets PWD itself when Env is nil.
		cmd.Env = append(cmd.Env, "PWD="+ec.Dir)
	}
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()
	if err == nil {
		ec.Splog.Debug("%s exited with status 0", argv[0])
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Terminated by a signal; there is no status to pass through.
			code = gbdeverrors.ExitFatal
		}
		ec.Splog.Debug("%s exited with status %d", argv[0], code)
		return code, nil
	}
	return 0, gbdeverrors.NewLaunchError(argv, ec.Dir, err)
}

// localCommand resolves a suffixed binary name (gbc.exe) against dir, the way
// the Windows shell finds programs in the current directory before PATH.
// Everything else is left to exec's own lookup; explicit relative paths such
// as ./gbc are evaluated relative to cmd.Dir.
func localCommand(dir, name string) string {
	if strings.ContainsAny(name, `/\`) || !strings.EqualFold(filepath.Ext(name), platform.ExeSuffix) {
		return name
	}
	candidate := filepath.Join(dir, name)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	return name
}
