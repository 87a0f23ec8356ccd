package project

import (
	"fmt"
	"os"
	"path/filepath"

	gbdeverrors "gbdev.dev/gbdev/internal/errors"
)

const (
	// Marker is the entry that identifies the project root.
	Marker = ".git"

	// MaxSteps bounds how far Locate climbs above its starting directory.
	MaxSteps = 10
)

// Locate walks upward from start until it finds a directory containing
// Marker. It examines start and at most MaxSteps ancestors and never goes
// beyond the filesystem root.
func Locate(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}
	origin := dir

	for step := 0; step <= MaxSteps; step++ {
		if hasMarker(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", gbdeverrors.NewRootNotFoundError(origin, Marker, MaxSteps)
}

// LocateFromWorkingDir runs Locate from the process working directory.
func LocateFromWorkingDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return Locate(wd)
}

// hasMarker accepts a directory or a file: linked worktrees and submodules
// use a .git file pointing at the real metadata.
func hasMarker(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, Marker))
	return err == nil
}
