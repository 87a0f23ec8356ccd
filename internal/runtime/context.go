package runtime

import (
	"os"
	"path/filepath"
	"strings"

	"gbdev.dev/gbdev/internal/config"
	"gbdev.dev/gbdev/internal/output"
	"gbdev.dev/gbdev/internal/platform"
)

// Context provides the root, working directory and environment for an operation
type Context struct {
	Root   string
	Dir    string
	Naming platform.Naming
	Config *config.ProjectConfig
	Splog  *output.Splog

	env []string // KEY=VALUE overrides, later entries win
}

// NewContext creates a context rooted at root with the working directory set
// to the root itself.
func NewContext(root string, cfg *config.ProjectConfig, splog *output.Splog, naming platform.Naming) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	if splog == nil {
		splog = output.NewSplog()
	}
	return &Context{
		Root:   root,
		Dir:    root,
		Naming: naming,
		Config: cfg,
		Splog:  splog,
	}
}

// In returns a copy of the context whose working directory is elem joined
// onto the project root.
func (c *Context) In(elem ...string) *Context {
	next := c.clone()
	next.Dir = filepath.Join(append([]string{c.Root}, elem...)...)
	return next
}

// WithEnv returns a copy of the context that sets key=value for every child
// process launched from it.
func (c *Context) WithEnv(key, value string) *Context {
	next := c.clone()
	next.env = append(next.env, key+"="+value)
	return next
}

// Getenv returns the override for key, falling back to the process environment.
func (c *Context) Getenv(key string) string {
	prefix := key + "="
	for i := len(c.env) - 1; i >= 0; i-- {
		if strings.HasPrefix(c.env[i], prefix) {
			return strings.TrimPrefix(c.env[i], prefix)
		}
	}
	return os.Getenv(key)
}

// Overrides returns the environment overrides in the order they were set.
func (c *Context) Overrides() []string {
	return append([]string(nil), c.env...)
}

// Environ returns the environment for a child process: the process
// environment followed by the overrides. exec.Cmd keeps the last value of a
// duplicated key, so overrides win.
func (c *Context) Environ() []string {
	return append(os.Environ(), c.env...)
}

// Binary returns the argv[0] that launches the project binary from its
// variant's bin directory.
func (c *Context) Binary() string {
	return c.Naming.Command(c.Config.BinaryName())
}

func (c *Context) clone() *Context {
	next := *c
	next.env = append([]string(nil), c.env...)
	return &next
}
