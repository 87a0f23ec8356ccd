package runtime

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gbdev.dev/gbdev/internal/config"
	"gbdev.dev/gbdev/internal/platform"
)

func TestContext(t *testing.T) {
	t.Parallel()

	root := filepath.Join(string(filepath.Separator), "work", "gbc")

	t.Run("starts at the root", func(t *testing.T) {
		t.Parallel()
		ctx := NewContext(root, nil, nil, platform.Conventional)
		require.Equal(t, root, ctx.Dir)
		require.Equal(t, "./gbc", ctx.Binary())
		require.NotNil(t, ctx.Splog)
	})

	t.Run("In derives without mutating the parent", func(t *testing.T) {
		t.Parallel()
		ctx := NewContext(root, nil, nil, platform.Conventional)
		bin := ctx.In("public", "release", "bin")

		require.Equal(t, filepath.Join(root, "public", "release", "bin"), bin.Dir)
		require.Equal(t, root, ctx.Dir)

		// In is always relative to the root, never to the current Dir.
		src := bin.In("src")
		require.Equal(t, filepath.Join(root, "src"), src.Dir)
	})

	t.Run("WithEnv is inherited by derived contexts", func(t *testing.T) {
		t.Parallel()
		ctx := NewContext(root, nil, nil, platform.Conventional)
		preload := ctx.WithEnv("LD_PRELOAD", "/lib/asan.so")
		bin := preload.In("public", "debug", "bin")

		require.Empty(t, ctx.Overrides())
		require.Equal(t, []string{"LD_PRELOAD=/lib/asan.so"}, bin.Overrides())
		require.Equal(t, "/lib/asan.so", bin.Getenv("LD_PRELOAD"))
		require.Equal(t, "LD_PRELOAD=/lib/asan.so", bin.Environ()[len(bin.Environ())-1])
	})

	t.Run("later overrides win", func(t *testing.T) {
		t.Parallel()
		ctx := NewContext(root, nil, nil, platform.Conventional).
			WithEnv("GBDEV_TEST_KEY", "a").
			WithEnv("GBDEV_TEST_KEY", "b")
		require.Equal(t, "b", ctx.Getenv("GBDEV_TEST_KEY"))
	})

	t.Run("binary follows naming and config", func(t *testing.T) {
		t.Parallel()
		cfg := &config.ProjectConfig{Binary: "emu"}
		require.Equal(t, "emu.exe", NewContext(root, cfg, nil, platform.Suffixed).Binary())
		require.Equal(t, "./emu", NewContext(root, cfg, nil, platform.Conventional).Binary())
	})
}
