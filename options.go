package highsrun

import (
	"time"

	"github.com/dmora/highsrun/optfile"
)

// Default per-solve numeric configuration.
const (
	// DefaultRoundingDigits is the decimal-place count applied to decoded
	// values before significant-digit truncation.
	DefaultRoundingDigits = 8

	// DefaultPrecision is the significant-digit count used by the
	// magnitude-adaptive truncation of decoded values.
	DefaultPrecision = 8

	// DefaultPollInterval is the cooperative sleep between completion
	// checks on the solution file.
	DefaultPollInterval = 100 * time.Millisecond
)

// SolveOptions holds resolved configuration for a single solve.
// The solver calls ResolveSolveOptions to collapse functional options
// into this struct.
type SolveOptions struct {
	// TimeLimit is passed to HiGHS as --time_limit (in seconds).
	// Zero omits the flag. The limit is enforced by the solver itself,
	// not by highsrun.
	TimeLimit time.Duration

	// Warmstart encodes the model's current variable values as a
	// warm-start file and passes it via --read_solution_file.
	Warmstart bool

	// SymbolicLabels asks the model to write symbolic entity names
	// into the model file.
	SymbolicLabels bool

	// KeepFiles retains the temporary model, options, solution, and
	// warm-start files after the solve instead of deleting them.
	KeepFiles bool

	// RemoveLog deletes the solver log file after the solve.
	// The log survives by default.
	RemoveLog bool

	// RoundingDigits is the decimal-place rounding applied to decoded
	// values. Defaults to DefaultRoundingDigits.
	RoundingDigits int

	// Precision is the significant-digit count for magnitude-adaptive
	// truncation of decoded values. Defaults to DefaultPrecision.
	Precision int

	// PollInterval is the sleep between completion checks.
	// Defaults to DefaultPollInterval.
	PollInterval time.Duration

	// MaxWait bounds the wait for the solution file to complete.
	// Zero means no bound beyond the caller's context.
	MaxWait time.Duration

	// ModelFile, SolutionFile, and LogFile override the generated
	// temporary paths. Overridden paths are never deleted.
	ModelFile    string
	SolutionFile string
	LogFile      string

	// SolverOptions are extra HiGHS options written to the options file,
	// one "key = value" line per entry in insertion order.
	SolverOptions *optfile.Options
}

// SolveOption configures a single solve.
type SolveOption func(*SolveOptions)

// ResolveSolveOptions applies functional options over defaults and returns
// the resolved config. The solver calls this in Solve.
func ResolveSolveOptions(opts ...SolveOption) SolveOptions {
	so := SolveOptions{
		RoundingDigits: DefaultRoundingDigits,
		Precision:      DefaultPrecision,
		PollInterval:   DefaultPollInterval,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&so)
		}
	}
	return so
}

// WithTimeLimit passes --time_limit to HiGHS. Non-positive values omit
// the flag.
func WithTimeLimit(d time.Duration) SolveOption {
	return func(o *SolveOptions) {
		if d > 0 {
			o.TimeLimit = d
		}
	}
}

// WithWarmstart seeds the solve with the model's current variable values.
// Variables without an assignment are encoded as 0.0. Infeasible starting
// points are rejected by HiGHS itself.
func WithWarmstart() SolveOption {
	return func(o *SolveOptions) {
		o.Warmstart = true
	}
}

// WithSymbolicLabels writes symbolic entity names into the model file.
func WithSymbolicLabels() SolveOption {
	return func(o *SolveOptions) {
		o.SymbolicLabels = true
	}
}

// WithKeepFiles retains the temporary files after the solve.
func WithKeepFiles() SolveOption {
	return func(o *SolveOptions) {
		o.KeepFiles = true
	}
}

// WithRemoveLog deletes the solver log after the solve.
func WithRemoveLog() SolveOption {
	return func(o *SolveOptions) {
		o.RemoveLog = true
	}
}

// WithRounding sets the decimal-place rounding for decoded values.
// Values < 0 are ignored.
func WithRounding(digits int) SolveOption {
	return func(o *SolveOptions) {
		if digits >= 0 {
			o.RoundingDigits = digits
		}
	}
}

// WithPrecision sets the significant-digit truncation precision for
// decoded values. Values <= 0 are ignored.
func WithPrecision(precision int) SolveOption {
	return func(o *SolveOptions) {
		if precision > 0 {
			o.Precision = precision
		}
	}
}

// WithPollInterval sets the sleep between completion checks on the
// solution file. Values <= 0 are ignored.
func WithPollInterval(d time.Duration) SolveOption {
	return func(o *SolveOptions) {
		if d > 0 {
			o.PollInterval = d
		}
	}
}

// WithMaxWait bounds the wait for solution-file completion. When the bound
// expires the solve fails with [ErrWaitTimeout] instead of waiting forever.
// Values <= 0 are ignored (unbounded; the context still applies).
func WithMaxWait(d time.Duration) SolveOption {
	return func(o *SolveOptions) {
		if d > 0 {
			o.MaxWait = d
		}
	}
}

// WithModelFile overrides the generated model-file path.
// Overridden paths are not suffixed and never deleted.
func WithModelFile(path string) SolveOption {
	return func(o *SolveOptions) {
		o.ModelFile = path
	}
}

// WithSolutionFile overrides the generated solution-file path.
// Overridden paths are not suffixed and never deleted.
func WithSolutionFile(path string) SolveOption {
	return func(o *SolveOptions) {
		o.SolutionFile = path
	}
}

// WithLogFile overrides the solver log path (default "HiGHS.log" in the
// process working directory).
func WithLogFile(path string) SolveOption {
	return func(o *SolveOptions) {
		o.LogFile = path
	}
}

// WithSolverOption adds one HiGHS option to the options file.
// Repeated keys update the value in place, keeping insertion order.
func WithSolverOption(key string, value any) SolveOption {
	return func(o *SolveOptions) {
		if o.SolverOptions == nil {
			o.SolverOptions = optfile.New()
		}
		o.SolverOptions.Set(key, value)
	}
}

// WithSolverOptions merges an option dictionary into the options file.
// Entries are applied in opts's insertion order.
func WithSolverOptions(opts *optfile.Options) SolveOption {
	return func(o *SolveOptions) {
		if opts == nil {
			return
		}
		if o.SolverOptions == nil {
			o.SolverOptions = optfile.New()
		}
		o.SolverOptions.Merge(opts)
	}
}
