package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	gbdeverrors "gbdev.dev/gbdev/internal/errors"
	"gbdev.dev/gbdev/internal/output"
)

// Execute runs cmd with args and returns the process exit status.
//
// Delegate and test failures exit with the delegate's status and no message
// of gbdev's own; the delegate has already reported on the shared streams.
func Execute(ctx context.Context, cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return gbdeverrors.ExitOK
	}

	if !gbdeverrors.IsSilent(err) {
		stderr := cmd.ErrOrStderr()
		fmt.Fprintln(stderr, output.NewStyles(stderr).Error(err.Error()))
		if errors.Is(err, gbdeverrors.ErrUsage) {
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		}
	}
	return gbdeverrors.ExitCode(err)
}
