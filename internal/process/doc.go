// Package process launches gbdev's delegates.
//
// Every child is run synchronously with the parent's standard streams and
// its exit status is returned untouched. RunTests runs a directory of test
// binaries one at a time and stops at the first failure.
package process
