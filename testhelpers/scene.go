// Package testhelpers provides testing utilities for gbdev, including a
// project scene backed by a real repository and recording fake toolchain
// binaries.
package testhelpers

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// Scene is a temporary project tree laid out the way gbdev expects:
//
//	<root>/.git
//	<root>/src
//	<root>/public/{debug,release}/bin
type Scene struct {
	Dir  string
	Repo *gogit.Repository
	Log  string // file the recording binaries append to
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a project scene in a fresh temporary directory.
// Cleanup is handled by t.TempDir.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir := t.TempDir()
	// Resolve symlinked temp dirs (macOS /var -> /private/var) so paths
	// compare equal to what the locator returns.
	dir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err, "failed to init repository")

	scene := &Scene{
		Dir:  dir,
		Repo: repo,
		Log:  filepath.Join(t.TempDir(), "calls.log"),
	}

	for _, rel := range [][]string{
		{"src"},
		{"public", "debug", "bin"},
		{"public", "release", "bin"},
	} {
		require.NoError(t, os.MkdirAll(scene.Path(rel...), 0750))
	}

	if setup != nil {
		require.NoError(t, setup(scene), "scene setup failed")
	}
	return scene
}

// Path joins elem onto the scene root.
func (s *Scene) Path(elem ...string) string {
	return filepath.Join(append([]string{s.Dir}, elem...)...)
}

// Mkdir creates a directory below the scene root and returns its path.
func (s *Scene) Mkdir(t *testing.T, elem ...string) string {
	t.Helper()
	p := s.Path(elem...)
	require.NoError(t, os.MkdirAll(p, 0750))
	return p
}

// WriteFile writes content below the scene root.
func (s *Scene) WriteFile(t *testing.T, rel, content string) string {
	t.Helper()
	p := s.Path(rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0750))
	require.NoError(t, os.WriteFile(p, []byte(content), 0600))
	return p
}

// Commit stages everything and commits it, returning the new HEAD.
func (s *Scene) Commit(t *testing.T, message string) plumbing.Hash {
	t.Helper()

	wt, err := s.Repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.AddGlob("."))

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Unix(1700000000, 0),
		},
	})
	require.NoError(t, err)
	return hash
}

// SkipOnWindows skips tests that rely on shell-script executables.
func SkipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("recording binaries are POSIX shell scripts")
	}
}
