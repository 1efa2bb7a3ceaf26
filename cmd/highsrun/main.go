// Command highsrun drives the HiGHS executable against a prepared model
// file from the shell: solve a model and print the decoded solution, or
// inspect an existing solution file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "highsrun:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "highsrun",
		Short:         "Drive the HiGHS solver through files on disk",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "log solve lifecycle events")
	root.AddCommand(newSolveCmd())
	root.AddCommand(newInspectCmd())
	return root
}
