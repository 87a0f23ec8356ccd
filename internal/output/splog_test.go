package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplog(t *testing.T) {
	t.Parallel()

	t.Run("print goes to stdout and logs to stderr", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		splog, err := NewSplogWithConfig(Options{Stdout: &stdout, Stderr: &stderr, Debug: true})
		require.NoError(t, err)

		splog.Print("/home/me/project")
		splog.Debug("careful %d", 1)

		require.Equal(t, "/home/me/project\n", stdout.String())
		require.Equal(t, "careful 1\n", stderr.String())
	})

	t.Run("debug is hidden unless enabled", func(t *testing.T) {
		t.Parallel()
		var quiet, loud bytes.Buffer
		s1, err := NewSplogWithConfig(Options{Stdout: &quiet, Stderr: &quiet})
		require.NoError(t, err)
		s2, err := NewSplogWithConfig(Options{Stdout: &loud, Stderr: &loud, Debug: true})
		require.NoError(t, err)

		s1.Debug("running %s", "make")
		s2.Debug("running %s", "make")

		require.Empty(t, quiet.String())
		require.Equal(t, "running make\n", loud.String())
	})

	t.Run("file log receives debug records", func(t *testing.T) {
		t.Parallel()
		var console bytes.Buffer
		logFile := filepath.Join(t.TempDir(), "logs", "gbdev.log")
		splog, err := NewSplogWithConfig(Options{Stdout: &console, Stderr: &console, LogFile: logFile})
		require.NoError(t, err)

		splog.Debug("dispatching %s", "build")
		require.NoError(t, splog.Close())

		require.Empty(t, console.String())
		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		require.Contains(t, string(data), "level=DEBUG")
		require.Contains(t, string(data), "dispatching build")
	})
}

func TestStyles(t *testing.T) {
	t.Parallel()
	var stderr bytes.Buffer
	require.Equal(t, "error: no root", NewStyles(&stderr).Error("no root"))
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()
	require.False(t, IsTerminal(&bytes.Buffer{}))
}
