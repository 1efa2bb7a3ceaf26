package solver

import (
	"time"

	"go.uber.org/zap"
)

// Default engine configuration values.
const (
	// DefaultExecutable is the HiGHS binary name resolved via PATH.
	DefaultExecutable = "highs"

	defaultWorkdir     = "tmp"
	defaultGracePeriod = 5 * time.Second
)

// Options holds resolved construction-time configuration for a Solver.
// Use New with Option functions to customize these values.
type Options struct {
	// Executable is the HiGHS binary name or path.
	Executable string

	// Workdir is the directory for temporary solve files. It is created
	// on demand and removed after a solve if left empty.
	Workdir string

	// GracePeriod is the duration to wait after SIGTERM before SIGKILL
	// when terminating the solver process.
	GracePeriod time.Duration

	// Logger receives structured solve-lifecycle logs.
	// Defaults to a no-op logger.
	Logger *zap.Logger
}

// Option configures a Solver at construction time.
type Option func(*Options)

// WithExecutable sets the HiGHS binary name or path.
// Empty values are ignored; the default is "highs".
func WithExecutable(path string) Option {
	return func(o *Options) {
		if path != "" {
			o.Executable = path
		}
	}
}

// WithWorkdir sets the directory for temporary solve files.
// Empty values are ignored; the default is "tmp" under the process
// working directory.
func WithWorkdir(dir string) Option {
	return func(o *Options) {
		if dir != "" {
			o.Workdir = dir
		}
	}
}

// WithGracePeriod sets the duration to wait after SIGTERM before sending
// SIGKILL. Values <= 0 are ignored.
func WithGracePeriod(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.GracePeriod = d
		}
	}
}

// WithLogger sets the structured logger for solve-lifecycle events.
// Nil values are ignored.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

func resolveOptions(opts ...Option) Options {
	o := Options{
		Executable:  DefaultExecutable,
		Workdir:     defaultWorkdir,
		GracePeriod: defaultGracePeriod,
		Logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
