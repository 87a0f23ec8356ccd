package process

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gbdeverrors "gbdev.dev/gbdev/internal/errors"
	"gbdev.dev/gbdev/internal/output"
	"gbdev.dev/gbdev/internal/platform"
	"gbdev.dev/gbdev/internal/runtime"
	"gbdev.dev/gbdev/testhelpers"
)

func quietExecutor() *Executor {
	return &Executor{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
}

func sceneContext(t *testing.T, scene *testhelpers.Scene) *runtime.Context {
	t.Helper()
	splog, err := output.NewSplogWithConfig(output.Options{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
	require.NoError(t, err)
	return runtime.NewContext(scene.Dir, nil, splog, platform.Host())
}

func TestExecutorRun(t *testing.T) {
	t.Parallel()

	t.Run("returns zero on success", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		scene.WriteRecordingBinary(t, scene.Path("src"), "ok", 0)
		ec := sceneContext(t, scene).In("src")

		code, err := quietExecutor().Run(context.Background(), ec, []string{"./ok", "a", "b"})
		require.NoError(t, err)
		require.Equal(t, 0, code)
		require.Equal(t, []string{"ok a b"}, scene.Calls(t))
	})

	t.Run("passes the exit status through", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		scene.WriteRecordingBinary(t, scene.Path("src"), "fails", 42)
		ec := sceneContext(t, scene).In("src")

		code, err := quietExecutor().Run(context.Background(), ec, []string{"./fails"})
		require.NoError(t, err)
		require.Equal(t, 42, code)
	})

	t.Run("runs in the context directory with overrides", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		bin := scene.Path("public", "debug", "bin")
		scene.WriteEnvBinary(t, bin, "env", "GBDEV_PROBE")
		ec := sceneContext(t, scene).WithEnv("GBDEV_PROBE", "on").In("public", "debug", "bin")

		code, err := quietExecutor().Run(context.Background(), ec, []string{"./env"})
		require.NoError(t, err)
		require.Equal(t, 0, code)
		require.Equal(t, []string{"env pwd=" + bin + " GBDEV_PROBE=on"}, scene.Calls(t))
	})

	t.Run("inherits stdout", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		testhelpers.SkipOnWindows(t)
		script := "#!/bin/sh\necho hello from child\n"
		//nolint:gosec // test binary
		require.NoError(t, os.WriteFile(scene.Path("src", "hello"), []byte(script), 0755))

		var stdout bytes.Buffer
		exec := NewExecutor(&stdout, &bytes.Buffer{})
		_, err := exec.Run(context.Background(), sceneContext(t, scene).In("src"), []string{"./hello"})
		require.NoError(t, err)
		require.Equal(t, "hello from child\n", stdout.String())
	})

	t.Run("reports commands that cannot start", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		ec := sceneContext(t, scene).In("src")

		_, err := quietExecutor().Run(context.Background(), ec, []string{"./missing-binary"})
		require.Error(t, err)

		var launchErr *gbdeverrors.LaunchError
		require.ErrorAs(t, err, &launchErr)
		require.Equal(t, gbdeverrors.ExitLaunchFailed, gbdeverrors.ExitCode(err))
	})

	t.Run("rejects an empty command", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		_, err := quietExecutor().Run(context.Background(), sceneContext(t, scene), nil)
		require.Error(t, err)
	})
}

func TestNewExecutor(t *testing.T) {
	t.Parallel()

	e := NewExecutor(nil, nil)
	require.Equal(t, os.Stdin, e.Stdin)
	require.Equal(t, os.Stdout, e.Stdout)
	require.Equal(t, os.Stderr, e.Stderr)

	var buf bytes.Buffer
	e = NewExecutor(&buf, &buf)
	require.Same(t, &buf, e.Stdout)
	require.Same(t, &buf, e.Stderr)
}

func TestLocalCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gbc.exe"), nil, 0600))

	require.Equal(t, filepath.Join(dir, "gbc.exe"), localCommand(dir, "gbc.exe"))
	require.Equal(t, "other.exe", localCommand(dir, "other.exe"))
	require.Equal(t, "./gbc", localCommand(dir, "./gbc"))
	require.Equal(t, "make", localCommand(dir, "make"))
}
