// Package errors provides sentinel errors and custom error types for gbdev.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit statuses gbdev produces on its own account. Delegate statuses are
// passed through unchanged and never mapped onto these.
const (
	ExitOK           = 0
	ExitFatal        = 1
	ExitUsage        = 2
	ExitLaunchFailed = 127
)

// Sentinel errors for common conditions
var (
	// ErrRootNotFound indicates that no project root marker was found
	ErrRootNotFound = errors.New("project root not found")

	// ErrDelegateFailed indicates that a delegated process exited nonzero
	ErrDelegateFailed = errors.New("delegate failed")

	// ErrTestFailed indicates that a test binary exited nonzero
	ErrTestFailed = errors.New("test failed")

	// ErrUsage indicates an invalid command line
	ErrUsage = errors.New("usage error")
)

// RootNotFoundError represents a failed upward search for the project root
type RootNotFoundError struct {
	Start  string
	Marker string
	Steps  int
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("could not find project root: no %s directory within %d levels of %s", e.Marker, e.Steps, e.Start)
}

// Is returns true if the target error is ErrRootNotFound
func (e *RootNotFoundError) Is(target error) bool {
	return target == ErrRootNotFound
}

// NewRootNotFoundError creates a new RootNotFoundError
func NewRootNotFoundError(start, marker string, steps int) *RootNotFoundError {
	return &RootNotFoundError{Start: start, Marker: marker, Steps: steps}
}

// DelegateError carries the nonzero exit status of a delegated process
type DelegateError struct {
	Command []string
	Code    int
}

func (e *DelegateError) Error() string {
	return fmt.Sprintf("%s exited with status %d", strings.Join(e.Command, " "), e.Code)
}

// Is returns true if the target error is ErrDelegateFailed
func (e *DelegateError) Is(target error) bool {
	return target == ErrDelegateFailed
}

// NewDelegateError creates a new DelegateError
func NewDelegateError(command []string, code int) *DelegateError {
	return &DelegateError{Command: command, Code: code}
}

// TestFailureError carries the status of the first failing test binary
type TestFailureError struct {
	Binary string
	Code   int
}

func (e *TestFailureError) Error() string {
	return fmt.Sprintf("test binary %s exited with status %d", e.Binary, e.Code)
}

// Is returns true if the target error is ErrTestFailed or ErrDelegateFailed
func (e *TestFailureError) Is(target error) bool {
	return target == ErrTestFailed || target == ErrDelegateFailed
}

// NewTestFailureError creates a new TestFailureError
func NewTestFailureError(binary string, code int) *TestFailureError {
	return &TestFailureError{Binary: binary, Code: code}
}

// LaunchError represents a process that could not be started at all
type LaunchError struct {
	Command []string
	Dir     string
	Err     error
}

func (e *LaunchError) Error() string {
	msg := fmt.Sprintf("failed to launch %s", strings.Join(e.Command, " "))
	if e.Dir != "" {
		msg += fmt.Sprintf(" in %s", e.Dir)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// NewLaunchError creates a new LaunchError
func NewLaunchError(command []string, dir string, err error) *LaunchError {
	return &LaunchError{Command: command, Dir: dir, Err: err}
}

// UsageError represents an invalid command line
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Is returns true if the target error is ErrUsage
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// NewUsageError creates a new UsageError
func NewUsageError(format string, args ...interface{}) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ExitCode maps an error returned from a command onto the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var testErr *TestFailureError
	if errors.As(err, &testErr) {
		return testErr.Code
	}
	var delegateErr *DelegateError
	if errors.As(err, &delegateErr) {
		return delegateErr.Code
	}
	var launchErr *LaunchError
	if errors.As(err, &launchErr) {
		return ExitLaunchFailed
	}
	if errors.Is(err, ErrUsage) {
		return ExitUsage
	}
	return ExitFatal
}

// IsSilent reports whether err should exit without a message. Delegates print
// their own diagnostics on the inherited streams.
func IsSilent(err error) bool {
	return errors.Is(err, ErrDelegateFailed)
}
