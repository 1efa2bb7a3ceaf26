package solver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmora/highsrun"
)

// solveFiles holds the resolved per-kind file paths for one solve.
// temps lists the paths this solve owns and deletes afterwards; caller
// overrides are never included.
type solveFiles struct {
	model     string
	solution  string
	warmstart string
	options   string
	log       string

	temps []string
}

// workdir is the per-call file namespace for a solve. The token makes
// file names unique across simultaneous solves sharing a directory —
// a random UUID rather than a timestamp, so rapid successive calls
// cannot collide.
type workdir struct {
	dir   string
	token string
}

func newWorkdir(dir string) (*workdir, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("solver: workdir: %w", err)
	}
	return &workdir{dir: dir, token: uuid.NewString()}, nil
}

// files resolves the file path for every kind this solve touches.
// An explicit override is used verbatim and excluded from cleanup;
// generated paths carry the call token and are temporary.
func (w *workdir) files(so highsrun.SolveOptions) solveFiles {
	var f solveFiles

	f.model = w.resolve(so.ModelFile, "model", ".mps", &f.temps)
	f.solution = w.resolve(so.SolutionFile, "solution", ".sol", &f.temps)
	f.options = w.resolve("", "options", ".txt", &f.temps)
	if so.Warmstart {
		f.warmstart = w.resolve("", "warmstart", ".sol", &f.temps)
	}

	// The log is not a temp file: it defaults to HiGHS.log relative to
	// the process working directory and survives the solve unless
	// RemoveLog asks otherwise.
	f.log = so.LogFile
	if f.log == "" {
		f.log = "HiGHS.log"
	}
	return f
}

func (w *workdir) resolve(override, kind, ext string, temps *[]string) string {
	if override != "" {
		return override
	}
	path := filepath.Join(w.dir, kind+"-"+w.token+ext)
	*temps = append(*temps, path)
	return path
}

// cleanup deletes the temporary files of a solve and removes the working
// directory if it ended up empty. Missing files are fine (a warm-start
// file may never have been written); other removal errors are collected.
func (w *workdir) cleanup(f solveFiles, removeLog bool) error {
	var firstErr error
	paths := f.temps
	if removeLog {
		paths = append(paths, f.log)
	}
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = fmt.Errorf("solver: cleanup: %w", err)
		}
	}

	// Best-effort: fails when other solves still have files here.
	_ = os.Remove(w.dir)
	return firstErr
}
