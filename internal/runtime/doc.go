// Package runtime provides the execution context for gbdev operations.
//
// A Context is an explicit value carrying the project root, the directory
// an operation runs in, environment overrides for child processes, the
// platform binary naming, configuration and logger. Operations derive new
// contexts instead of changing the process working directory or environment.
package runtime
