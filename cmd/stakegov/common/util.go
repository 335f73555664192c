package common

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"boscoin.io/stakegov/lib/errors"
)

/**
 * Issue a message on Stderr then exit with an error code
 */
func PrintFlagsError(cmd *cobra.Command, flagName string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid '%s'; %s\n\n", flagName, errorString(err))
	}

	cmd.Help()

	os.Exit(1)
}

func PrintError(cmd *cobra.Command, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n\n", errorString(err))
	}

	cmd.Help()

	os.Exit(1)
}

// ExitWithError reports a failure that is not a usage problem.
func ExitWithError(err error) {
	fmt.Fprintf(os.Stderr, "error: %s\n", errorString(err))

	os.Exit(1)
}

func errorString(err error) string {
	if e, ok := err.(*errors.Error); ok {
		if len(e.Data) < 1 {
			return e.Message
		}
		return fmt.Sprintf("%s; %v", e.Message, e.Data)
	}

	return err.Error()
}
