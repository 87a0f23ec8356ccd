// Package cli implements the gbdev command line.
//
// gbdev has no subcommands. Each operation is a flag, at most one operation
// runs per invocation, and the process exits with the status of the
// delegate that operation ran.
package cli
