// Package actions performs the operations gbdev dispatches to.
//
// Each action runs exactly one delegate (or one local filesystem change)
// from a working directory derived from the project root. A delegate's
// nonzero exit status is returned as an error carrying that status so the
// CLI can exit with it unchanged.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Root, Config and Splog
//   - Actions never change the process working directory or environment
//   - Delegates are launched through process.Runner so they can be faked in tests
package actions
