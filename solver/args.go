package solver

import (
	"strconv"
	"time"
)

// buildArgs assembles the HiGHS command line. Order is significant:
// flags first, the model path as the trailing positional argument.
//
//	highs [--time_limit <s>] --solution_file <path>
//	      [--read_solution_file <path>] --options_file <path> <model>
func buildArgs(timeLimit time.Duration, f solveFiles) []string {
	var args []string
	if timeLimit > 0 {
		args = append(args, "--time_limit", formatSeconds(timeLimit))
	}
	args = append(args, "--solution_file", f.solution)
	if f.warmstart != "" {
		args = append(args, "--read_solution_file", f.warmstart)
	}
	args = append(args, "--options_file", f.options)
	args = append(args, f.model)
	return args
}

// formatSeconds renders a duration as the fractional-second count HiGHS
// expects for --time_limit.
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'g', -1, 64)
}
