package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dmora/highsrun"
	"github.com/dmora/highsrun/optfile"
	"github.com/dmora/highsrun/solver"
)

func newSolveCmd() *cobra.Command {
	var (
		modelPath    string
		columns      []string
		executable   string
		workdir      string
		timeLimit    time.Duration
		maxWait      time.Duration
		pollInterval time.Duration
		rounding     int
		precision    int
		keepFiles    bool
		presetPath   string
		rawOptions   []string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run HiGHS on a model file and print the decoded solution",
		Long: `Run HiGHS on a prepared .mps or .lp model file.

Values are only decoded for symbols named via --columns; everything else
in the solution file is metadata from the CLI's point of view and is
skipped. Without --columns only the status and objective are reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := buildLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck // stderr sync failure is unactionable

			options, err := collectOptions(presetPath, rawOptions)
			if err != nil {
				return err
			}

			s := solver.New(
				solver.WithExecutable(executable),
				solver.WithWorkdir(workdir),
				solver.WithLogger(log),
			)
			if err := s.Validate(); err != nil {
				return err
			}

			model := newFileModel(modelPath, columns)
			solveOpts := []highsrun.SolveOption{
				highsrun.WithRounding(rounding),
				highsrun.WithPrecision(precision),
				highsrun.WithSolverOptions(options),
			}
			if timeLimit > 0 {
				solveOpts = append(solveOpts, highsrun.WithTimeLimit(timeLimit))
			}
			if maxWait > 0 {
				solveOpts = append(solveOpts, highsrun.WithMaxWait(maxWait))
			}
			if pollInterval > 0 {
				solveOpts = append(solveOpts, highsrun.WithPollInterval(pollInterval))
			}
			if keepFiles {
				solveOpts = append(solveOpts, highsrun.WithKeepFiles())
			}

			sol, err := s.Solve(cmd.Context(), model, solveOpts...)
			if err != nil {
				return err
			}
			printSolution(cmd, sol)
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "model file (.mps or .lp) to solve (required)")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "decision-variable symbols to decode")
	cmd.Flags().StringVar(&executable, "executable", solver.DefaultExecutable, "HiGHS binary name or path")
	cmd.Flags().StringVar(&workdir, "workdir", "", "directory for temporary solve files")
	cmd.Flags().DurationVar(&timeLimit, "time-limit", 0, "solver time limit (passed as --time_limit)")
	cmd.Flags().DurationVar(&maxWait, "max-wait", 0, "bound on waiting for the solution file")
	cmd.Flags().DurationVar(&pollInterval, "poll-interval", 0, "sleep between solution-file checks")
	cmd.Flags().IntVar(&rounding, "rounding", highsrun.DefaultRoundingDigits, "decimal places for decoded values")
	cmd.Flags().IntVar(&precision, "precision", highsrun.DefaultPrecision, "significant digits for decoded values")
	cmd.Flags().BoolVar(&keepFiles, "keep-files", false, "retain temporary solve files")
	cmd.Flags().StringVar(&presetPath, "preset", "", "YAML file of HiGHS options")
	cmd.Flags().StringArrayVarP(&rawOptions, "option", "o", nil, "HiGHS option as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

// collectOptions layers --option flags over the preset file, preserving
// preset order and letting explicit flags win.
func collectOptions(presetPath string, raw []string) (*optfile.Options, error) {
	options := optfile.New()
	if presetPath != "" {
		preset, err := optfile.LoadPreset(presetPath)
		if err != nil {
			return nil, err
		}
		options.Merge(preset)
	}
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("malformed --option %q, want key=value", kv)
		}
		options.Set(key, value)
	}
	return options, nil
}

func buildLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	return cfg.Build()
}

func printSolution(cmd *cobra.Command, sol *highsrun.Solution) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "status: %s\n", sol.Status)
	if sol.HasObjective {
		fmt.Fprintf(out, "objective: %g\n", sol.Objective)
	} else {
		fmt.Fprintln(out, "objective: unset")
	}
	symbols := make([]string, 0, len(sol.Values))
	for symbol := range sol.Values {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	for _, symbol := range symbols {
		fmt.Fprintf(out, "%s = %g\n", symbol, sol.Values[symbol])
	}
}
