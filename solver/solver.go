//go:build !windows

// Package solver runs the HiGHS executable and orchestrates a solve
// end to end: working-directory setup, model/options/warm-start file
// writing, process lifecycle, solution-file completion detection, and
// decoding.
//
// One solve is single-threaded and synchronous: one solver process,
// one cooperative poll loop. Simultaneous solves are independent calls;
// per-call UUID file tokens keep their namespaces apart.
package solver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/dmora/highsrun"
	"github.com/dmora/highsrun/optfile"
	"github.com/dmora/highsrun/solfile"
)

// Solver runs the HiGHS executable against [highsrun.Model] instances.
// A Solver is cheap and stateless between solves; construct one with New
// and reuse it freely.
type Solver struct {
	opts Options
	log  *zap.Logger
}

// New creates a Solver. Use Option functions to customize the executable,
// working directory, grace period, and logger.
func New(opts ...Option) *Solver {
	o := resolveOptions(opts...)
	return &Solver{opts: o, log: o.Logger}
}

// Validate checks that the HiGHS executable is available.
func (s *Solver) Validate() error {
	if _, err := exec.LookPath(s.opts.Executable); err != nil {
		return fmt.Errorf("%w: %s: %w", highsrun.ErrUnavailable, s.opts.Executable, err)
	}
	return nil
}

// Solve runs HiGHS on model and returns the decoded solution. Decoded
// decision-variable values are also written back onto the model's
// [highsrun.Variable] entities.
//
// The solver process signals completion only through the shape of its
// solution file, so Solve polls the file until it looks complete, then
// terminates the process — even if it already exited — and decodes.
// HiGHS's exit code and stderr are never used for control flow; a solver
// that crashes before producing output surfaces as a wait timeout (via
// ctx or [highsrun.WithMaxWait]), not as an exit-status error.
//
// On error, temporary files are left in place for post-mortem inspection.
func (s *Solver) Solve(ctx context.Context, model highsrun.Model, opts ...highsrun.SolveOption) (*highsrun.Solution, error) {
	so := highsrun.ResolveSolveOptions(opts...)

	binary, err := exec.LookPath(s.opts.Executable)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", highsrun.ErrUnavailable, s.opts.Executable, err)
	}

	wd, err := newWorkdir(s.opts.Workdir)
	if err != nil {
		return nil, err
	}
	files := wd.files(so)
	log := s.log.With(zap.String("token", wd.token))

	if err := model.WriteModel(files.model, so.SymbolicLabels); err != nil {
		return nil, fmt.Errorf("solver: write model: %w", err)
	}
	symbols := model.Symbols()
	log.Debug("model written",
		zap.String("path", files.model),
		zap.Int("symbols", len(symbols)),
	)

	if so.Warmstart {
		if err := solfile.EncodeWarmstartFile(files.warmstart, symbols); err != nil {
			return nil, fmt.Errorf("solver: %w", err)
		}
		log.Debug("warm start written", zap.String("path", files.warmstart))
	}

	if err := writeOptions(files, so); err != nil {
		return nil, err
	}

	args := buildArgs(so.TimeLimit, files)
	cmd := exec.Command(binary, args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("solver: start: %w", err)
	}
	log.Info("solver started",
		zap.Int("pid", cmd.Process.Pid),
		zap.Strings("args", args),
	)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	waitCtx := ctx
	if so.MaxWait > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, so.MaxWait)
		defer cancel()
	}
	if err := solfile.Await(waitCtx, files.solution, solfile.WithPollInterval(so.PollInterval)); err != nil {
		s.terminate(cmd, done, log)
		return nil, err
	}

	// HiGHS keeps running after the solution is flushed (it is still
	// writing logs and tearing down). Terminate unconditionally — even a
	// process that already exited — so no idle handle leaks.
	s.terminate(cmd, done, log)

	sol, err := solfile.DecodeFile(files.solution, symbols,
		solfile.WithRounding(so.RoundingDigits),
		solfile.WithPrecision(so.Precision),
	)
	if err != nil {
		return nil, err
	}
	log.Info("solution decoded",
		zap.String("status", string(sol.Status)),
		zap.Int("values", len(sol.Values)),
	)

	if !so.KeepFiles {
		if err := wd.cleanup(files, so.RemoveLog); err != nil {
			log.Warn("cleanup incomplete", zap.Error(err))
		}
	}
	return sol, nil
}

// writeOptions materializes the options file, injecting the log_file
// option on top of the caller's entries.
func writeOptions(files solveFiles, so highsrun.SolveOptions) error {
	options := optfile.New()
	if so.SolverOptions != nil {
		options.Merge(so.SolverOptions)
	}
	options.Set("log_file", files.log)
	if err := options.WriteFile(files.options); err != nil {
		return fmt.Errorf("solver: %w", err)
	}
	return nil
}

// terminate stops the solver process: SIGTERM, then SIGKILL after the
// grace period. The exit result is logged but never inspected — exit
// codes carry no signal here, since completion is decided by the
// solution file alone.
func (s *Solver) terminate(cmd *exec.Cmd, done <-chan error, log *zap.Logger) {
	_ = signalProcess(cmd.Process, syscall.SIGTERM)

	var waitErr error
	select {
	case waitErr = <-done:
	case <-time.After(s.opts.GracePeriod):
		_ = signalProcess(cmd.Process, os.Kill)
		waitErr = <-done
	}
	log.Debug("solver terminated", zap.Error(waitErr))
}

// signalProcess sends sig to a process, returning nil if the process
// has already exited (os.ErrProcessDone).
func signalProcess(proc *os.Process, sig os.Signal) error {
	err := proc.Signal(sig)
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}
