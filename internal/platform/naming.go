// Package platform resolves how the project's own executables are named and
// invoked on the host operating system.
package platform

import (
	"path/filepath"
	"runtime"
	"strings"
)

// ExeSuffix is the executable suffix used by the Suffixed naming.
const ExeSuffix = ".exe"

// Naming is the host's convention for invoking a binary that lives in the
// current working directory.
type Naming int

const (
	// Conventional binaries are bare names invoked through an explicit
	// relative path, e.g. "./gbc".
	Conventional Naming = iota
	// Suffixed binaries carry the executable suffix and are invoked by name,
	// e.g. "gbc.exe".
	Suffixed
)

// Host returns the naming for the running operating system.
func Host() Naming {
	return ForOS(runtime.GOOS)
}

// ForOS returns the naming used on goos.
func ForOS(goos string) Naming {
	if goos == "windows" {
		return Suffixed
	}
	return Conventional
}

// Command returns the argv[0] used to launch the binary called name from its
// own directory.
func (n Naming) Command(name string) string {
	if n == Suffixed {
		return name + ExeSuffix
	}
	return "./" + name
}

// Stem strips the executable suffix from a directory entry name, reporting
// false when the entry cannot be a binary under this naming.
func (n Naming) Stem(entry string) (string, bool) {
	if n == Suffixed {
		if !strings.EqualFold(filepath.Ext(entry), ExeSuffix) {
			return "", false
		}
		return entry[:len(entry)-len(ExeSuffix)], true
	}
	return entry, true
}

func (n Naming) String() string {
	if n == Suffixed {
		return "suffixed"
	}
	return "conventional"
}
