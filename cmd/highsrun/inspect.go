package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmora/highsrun/solfile"
)

func newInspectCmd() *cobra.Command {
	var (
		wait         bool
		maxWait      time.Duration
		pollInterval time.Duration
		columns      []string
	)

	cmd := &cobra.Command{
		Use:   "inspect <solution-file>",
		Short: "Decode a solution file and print its header fields",
		Long: `Decode an existing HiGHS solution file.

With --wait, block until the file satisfies the completion heuristic
first — useful when a solver launched elsewhere is still writing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if wait {
				ctx := cmd.Context()
				if maxWait > 0 {
					var cancel context.CancelFunc
					ctx, cancel = context.WithTimeout(ctx, maxWait)
					defer cancel()
				}
				var awaitOpts []solfile.AwaitOption
				if pollInterval > 0 {
					awaitOpts = append(awaitOpts, solfile.WithPollInterval(pollInterval))
				}
				if err := solfile.Await(ctx, path, awaitOpts...); err != nil {
					return err
				}
			} else {
				ready, err := solfile.Ready(path)
				if err != nil {
					return err
				}
				if !ready {
					return fmt.Errorf("%s does not look complete (rerun with --wait?)", path)
				}
			}

			symbols := make(map[string]any, len(columns))
			for _, name := range columns {
				symbols[name] = &column{}
			}
			sol, err := solfile.DecodeFile(path, symbols)
			if err != nil {
				return err
			}
			printSolution(cmd, sol)
			if sol.Primal != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "primal: %s\n", sol.Primal)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "wait for the file to satisfy the completion heuristic")
	cmd.Flags().DurationVar(&maxWait, "max-wait", 0, "bound on --wait")
	cmd.Flags().DurationVar(&pollInterval, "poll-interval", 0, "sleep between completion checks")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "decision-variable symbols to decode")

	return cmd
}
