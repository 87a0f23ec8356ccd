// Package intent defines the single operation a gbdev invocation asks for.
//
// An Intent is decoded once from the command line and never changes. Exactly
// one concrete type is active per invocation; None means "do nothing".
package intent

import (
	"fmt"
	"strings"
)

// Variant selects a build configuration and its output directory.
type Variant string

const (
	Debug   Variant = "debug"
	Release Variant = "release"
)

// Variants lists every accepted variant in help order.
var Variants = []Variant{Debug, Release}

// VariantNames returns the accepted variant names, comma separated.
func VariantNames() string {
	names := make([]string, len(Variants))
	for i, v := range Variants {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

// ParseVariant accepts a variant name in any case and normalizes it to lowercase.
func ParseVariant(s string) (Variant, error) {
	want := Variant(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Variants {
		if v == want {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid variant %q (choose from %s)", s, VariantNames())
}

// BinDir returns the variant's binary directory relative to the project root.
func (v Variant) BinDir() []string {
	return []string{"public", string(v), "bin"}
}

func (v Variant) String() string {
	return string(v)
}

// Intent is a closed set of operations; only types in this package implement it.
type Intent interface {
	// Name is the operation's short name, used in logs.
	Name() string
	isIntent()
}

// None is the empty intent: no recognized flag was supplied.
type None struct{}

// ReportPath prints the project root.
type ReportPath struct{}

// Configure runs the meta-build generator.
type Configure struct{}

// Clean runs the build tool's clean target.
type Clean struct{}

// Reset removes untracked and ignored files through version control.
type Reset struct{}

// Debugger attaches the debugger to the debug binary.
type Debugger struct{}

// Link creates a symlink unless the destination already exists.
type Link struct {
	Base        string
	Source      string
	Destination string
}

// Profile runs the release binary under the profiler.
type Profile struct {
	Target string
}

// Test runs every test binary of a variant, stopping at the first failure.
type Test struct {
	Variant Variant
}

// Build runs the native build tool for a variant.
type Build struct {
	Variant Variant
}

// Run launches the project binary of a variant with an optional target.
type Run struct {
	Variant Variant
	Target  string
}

func (None) Name() string       { return "none" }
func (ReportPath) Name() string { return "path" }
func (Configure) Name() string  { return "configure" }
func (Clean) Name() string      { return "clean" }
func (Reset) Name() string      { return "reset" }
func (Debugger) Name() string   { return "debug" }
func (Link) Name() string       { return "link" }
func (Profile) Name() string    { return "profile" }
func (Test) Name() string       { return "test" }
func (Build) Name() string      { return "build" }
func (Run) Name() string        { return "run" }

func (None) isIntent()       {}
func (ReportPath) isIntent() {}
func (Configure) isIntent()  {}
func (Clean) isIntent()      {}
func (Reset) isIntent()      {}
func (Debugger) isIntent()   {}
func (Link) isIntent()       {}
func (Profile) isIntent()    {}
func (Test) isIntent()       {}
func (Build) isIntent()      {}
func (Run) isIntent()        {}
