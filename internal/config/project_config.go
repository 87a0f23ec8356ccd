package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up at the project root.
const FileName = "gbdev.yaml"

// Defaults reproduce the toolchain of the original project layout.
const (
	DefaultBinary    = "gbc"
	DefaultJobs      = 8
	DefaultMake      = "make"
	DefaultSanitizer = "/usr/lib/gcc/x86_64-linux-gnu/7/libasan.so"
)

var (
	defaultGenerator = []string{"qmake", "-r", "CONFIG+=debug_and_release"}
	defaultVCS       = []string{"git", "clean", "-ffxd"}
	defaultDebugger  = []string{"gdb", "-tui"}
	defaultProfiler  = []string{"valgrind", "--tool=callgrind"}
)

// Tools overrides the external commands gbdev delegates to. Each list is an
// argv prefix; gbdev appends operation-specific arguments.
type Tools struct {
	Generator []string `yaml:"generator,omitempty"`
	Make      string   `yaml:"make,omitempty"`
	VCS       []string `yaml:"vcs,omitempty"`
	Debugger  []string `yaml:"debugger,omitempty"`
	Profiler  []string `yaml:"profiler,omitempty"`
}

// ProjectConfig represents gbdev.yaml
type ProjectConfig struct {
	Binary    string `yaml:"binary,omitempty"`
	Jobs      int    `yaml:"jobs,omitempty"`
	Sanitizer string `yaml:"sanitizer,omitempty"`
	Tools     Tools  `yaml:"tools,omitempty"`
}

// Default returns a configuration with no overrides.
func Default() *ProjectConfig {
	return &ProjectConfig{}
}

// GetProjectConfig reads gbdev.yaml from the project root. A missing file is
// not an error and yields the defaults.
func GetProjectConfig(root string) (*ProjectConfig, error) {
	path := filepath.Join(root, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var config ProjectConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if config.Jobs < 0 {
		return nil, fmt.Errorf("invalid %s: jobs must not be negative, got %d", path, config.Jobs)
	}

	return &config, nil
}

// BinaryName returns the project binary's base name
func (c *ProjectConfig) BinaryName() string {
	if c.Binary != "" {
		return c.Binary
	}
	return DefaultBinary
}

// BuildJobs returns the parallelism passed to the build tool
func (c *ProjectConfig) BuildJobs() int {
	if c.Jobs > 0 {
		return c.Jobs
	}
	return DefaultJobs
}

// SanitizerLibrary returns the shared library preloaded by -a
func (c *ProjectConfig) SanitizerLibrary() string {
	if c.Sanitizer != "" {
		return c.Sanitizer
	}
	return DefaultSanitizer
}

// GeneratorCommand returns the meta-build generator argv
func (c *ProjectConfig) GeneratorCommand() []string {
	return orDefault(c.Tools.Generator, defaultGenerator)
}

// MakeCommand returns the native build tool executable
func (c *ProjectConfig) MakeCommand() string {
	if c.Tools.Make != "" {
		return c.Tools.Make
	}
	return DefaultMake
}

// ResetCommand returns the version control argv that wipes untracked files
func (c *ProjectConfig) ResetCommand() []string {
	return orDefault(c.Tools.VCS, defaultVCS)
}

// DebuggerCommand returns the debugger argv prefix
func (c *ProjectConfig) DebuggerCommand() []string {
	return orDefault(c.Tools.Debugger, defaultDebugger)
}

// ProfilerCommand returns the profiler argv prefix
func (c *ProjectConfig) ProfilerCommand() []string {
	return orDefault(c.Tools.Profiler, defaultProfiler)
}

// orDefault returns a copy so callers can append without aliasing.
func orDefault(value, fallback []string) []string {
	if len(value) > 0 {
		return append([]string(nil), value...)
	}
	return append([]string(nil), fallback...)
}
