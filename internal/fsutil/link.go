// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LinkRequest describes a symlink at Destination pointing to Base/Name.
type LinkRequest struct {
	Base        string
	Name        string
	Destination string
}

// Target is the path the link points to.
func (r LinkRequest) Target() string {
	return filepath.Join(r.Base, r.Name)
}

// EnsureLink creates the requested symlink unless something already exists at
// the destination. An existing entry, including a dangling link, is left
// untouched. The target is not required to exist.
//
// It reports whether a link was created.
func EnsureLink(req LinkRequest) (bool, error) {
	if _, err := os.Lstat(req.Destination); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to inspect %s: %w", req.Destination, err)
	}

	if err := os.Symlink(req.Target(), req.Destination); err != nil {
		// Lost a race with another creator; the destination exists now.
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to link %s -> %s: %w", req.Destination, req.Target(), err)
	}
	return true, nil
}
