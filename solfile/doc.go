// Package solfile reads and writes HiGHS solution files.
//
// A solution file is line-oriented:
//
//	Model status
//	Optimal
//
//	# Primal solution values
//	Feasible
//	Objective 42.0
//	x1 3.14159265
//	x2 0
//	...
//	# Basis
//	HiGHS v1
//	...
//
// The package covers the three operations the file format needs:
//
//   - [Ready] and [Await] — completion detection. The solver gives no
//     done-signal for its output, so the only observable proxy is content
//     shape: the file exists, contains the basis marker, and ends with a
//     newline. This heuristic is inherently racy — a buffered writer can
//     momentarily satisfy it before the numeric body fully flushes — and
//     a robust fix (atomic rename on completion) would require control
//     over the HiGHS process itself. The residual race is accepted.
//   - [Decode] — parses a completed file against a symbol table into a
//     [highsrun.Solution], normalizing decision-variable values.
//   - [EncodeWarmstart] — writes the grammar subset HiGHS accepts as a
//     warm-start input (--read_solution_file).
package solfile
