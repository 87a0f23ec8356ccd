package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0600)
	require.NoError(t, err)
}

func TestGetProjectConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults when file does not exist", func(t *testing.T) {
		t.Parallel()
		cfg, err := GetProjectConfig(t.TempDir())
		require.NoError(t, err)

		require.Equal(t, "gbc", cfg.BinaryName())
		require.Equal(t, 8, cfg.BuildJobs())
		require.Equal(t, "/usr/lib/gcc/x86_64-linux-gnu/7/libasan.so", cfg.SanitizerLibrary())
		require.Equal(t, []string{"qmake", "-r", "CONFIG+=debug_and_release"}, cfg.GeneratorCommand())
		require.Equal(t, "make", cfg.MakeCommand())
		require.Equal(t, []string{"git", "clean", "-ffxd"}, cfg.ResetCommand())
		require.Equal(t, []string{"gdb", "-tui"}, cfg.DebuggerCommand())
		require.Equal(t, []string{"valgrind", "--tool=callgrind"}, cfg.ProfilerCommand())
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeConfig(t, dir, `binary: emu
jobs: 16
sanitizer: /opt/asan.so
tools:
  generator: [cmake, -S, ., -B, build]
  make: ninja
  debugger: [lldb]
`)

		cfg, err := GetProjectConfig(dir)
		require.NoError(t, err)
		require.Equal(t, "emu", cfg.BinaryName())
		require.Equal(t, 16, cfg.BuildJobs())
		require.Equal(t, "/opt/asan.so", cfg.SanitizerLibrary())
		require.Equal(t, []string{"cmake", "-S", ".", "-B", "build"}, cfg.GeneratorCommand())
		require.Equal(t, "ninja", cfg.MakeCommand())
		require.Equal(t, []string{"lldb"}, cfg.DebuggerCommand())
		// Unset fields keep their defaults
		require.Equal(t, []string{"valgrind", "--tool=callgrind"}, cfg.ProfilerCommand())
		require.Equal(t, []string{"git", "clean", "-ffxd"}, cfg.ResetCommand())
	})

	t.Run("errors on malformed yaml", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeConfig(t, dir, "tools: [unterminated\n")

		_, err := GetProjectConfig(dir)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("errors on negative jobs", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeConfig(t, dir, "jobs: -1\n")

		_, err := GetProjectConfig(dir)
		require.Error(t, err)
		require.Contains(t, err.Error(), "jobs must not be negative")
	})

	t.Run("returned commands do not alias defaults", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		argv := cfg.DebuggerCommand()
		argv[0] = "changed"
		require.Equal(t, []string{"gdb", "-tui"}, cfg.DebuggerCommand())
	})
}
