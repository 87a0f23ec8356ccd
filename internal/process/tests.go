package process

import (
	"context"
	"fmt"
	"os"
	"strings"

	gbdeverrors "gbdev.dev/gbdev/internal/errors"
	"gbdev.dev/gbdev/internal/platform"
	"gbdev.dev/gbdev/internal/runtime"
)

// TestSuffix marks an executable as a test binary.
const TestSuffix = "test"

// DiscoverTests lists the test binaries in dir as argv[0] values, sorted by
// file name. Directories are ignored.
func DiscoverTests(dir string, naming platform.Naming) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list test binaries: %w", err)
	}

	var tests []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		stem, ok := naming.Stem(entry.Name())
		if !ok || !strings.HasSuffix(stem, TestSuffix) {
			continue
		}
		tests = append(tests, naming.Command(stem))
	}
	return tests, nil
}

// RunTests runs every test binary in ec.Dir, one at a time. It returns the
// status of the first binary that exits nonzero, together with a
// TestFailureError, and does not start any binary after it. When every
// binary passes, or there are none, it returns 0.
func RunTests(ctx context.Context, runner Runner, ec *runtime.Context) (int, error) {
	tests, err := DiscoverTests(ec.Dir, ec.Naming)
	if err != nil {
		return gbdeverrors.ExitFatal, err
	}
	ec.Splog.Debug("found %d test binaries in %s", len(tests), ec.Dir)

	for _, test := range tests {
		code, err := runner.Run(ctx, ec, []string{test})
		if err != nil {
			return gbdeverrors.ExitLaunchFailed, err
		}
		if code != 0 {
			return code, gbdeverrors.NewTestFailureError(test, code)
		}
	}
	return 0, nil
}
