// Package highsrun drives the HiGHS optimization solver executable through
// files on disk.
//
// HiGHS, invoked as a command-line program, communicates only through the
// filesystem: it reads a model file and an options file, and writes its
// solution to a file with no other done-signal. highsrun launches the
// process, detects when the solution file is genuinely complete, decodes the
// solver's line-oriented solution grammar into typed results, normalizes the
// decoded floats, and can re-encode prior values as a warm-start file for a
// future run.
//
// # Core Types
//
//   - [Solution] — typed result of one solve
//   - [Status] — solver outcome (Optimal, Infeasible, ...)
//   - [Model] — externally-owned model: writes itself to disk and exposes
//     a symbol table
//   - [Variable] — mutable decision entity a symbol may denote
//   - [SolveOption] — functional options for solver.Solve
//
// # Vocabulary
//
// The root package defines the shared vocabulary. Subpackages do the work:
//
//   - solver — spawns and terminates the HiGHS process and orchestrates
//     a solve end to end
//   - solfile — solution-file grammar: completion detection, decoding,
//     warm-start encoding
//   - optfile — ordered option dictionaries serialized as "key = value"
//     lines, plus YAML presets
//
// # Quick Start
//
//	s := solver.New(solver.WithExecutable("highs"))
//	sol, err := s.Solve(ctx, model,
//	    highsrun.WithTimeLimit(60*time.Second),
//	)
//	if err != nil { log.Fatal(err) }
//	if sol.IsOptimal() {
//	    fmt.Println(sol.Objective, sol.Values)
//	}
//
// # Leniency policies
//
// Two behaviors are intentional leniency policies, not oversights. Solution
// rows whose symbol is absent from the model's symbol table are silently
// ignored: HiGHS legitimately emits basis and row metadata the caller does
// not track. An objective line whose value fails numeric parsing leaves
// Solution.HasObjective false and decoding proceeds. By contrast, a row for
// a known decision variable that lacks a value token is a fatal
// [DecodeError] — it means the file is structurally incomplete.
package highsrun
