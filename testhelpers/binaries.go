package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteRecordingBinary writes an executable script called name into dir. When
// run it appends "<name> <args...>" to the scene log and exits with code.
func (s *Scene) WriteRecordingBinary(t *testing.T, dir, name string, code int) string {
	t.Helper()
	SkipOnWindows(t)

	script := fmt.Sprintf("#!/bin/sh\necho \"%s $*\" >> '%s'\nexit %d\n", name, s.Log, code)
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(dir, 0750))
	//nolint:gosec // test binaries must be executable
	require.NoError(t, os.WriteFile(p, []byte(script), 0755))
	return p
}

// WriteEnvBinary writes an executable script that records its working
// directory and the value of the environment variable key.
func (s *Scene) WriteEnvBinary(t *testing.T, dir, name, key string) string {
	t.Helper()
	SkipOnWindows(t)

	script := fmt.Sprintf("#!/bin/sh\necho \"%s pwd=$(pwd) %s=${%s}\" >> '%s'\n", name, key, key, s.Log)
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(dir, 0750))
	//nolint:gosec // test binaries must be executable
	require.NoError(t, os.WriteFile(p, []byte(script), 0755))
	return p
}

// Calls returns the lines recorded by scene binaries, in execution order.
func (s *Scene) Calls(t *testing.T) []string {
	t.Helper()

	data, err := os.ReadFile(s.Log)
	if os.IsNotExist(err) {
		return []string{}
	}
	require.NoError(t, err)

	var calls []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			calls = append(calls, line)
		}
	}
	if calls == nil {
		return []string{}
	}
	return calls
}
