package solfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmora/highsrun"
)

// readyMarker is the content-shape proxy for "HiGHS finished writing":
// the basis section header immediately followed by the version banner.
// HiGHS writes it after the numeric body, so its presence (plus a
// trailing newline) is the closest observable thing to a done-signal.
const readyMarker = "# Basis\nHiGHS"

// Ready reports whether the solution file at path looks complete: it
// exists, contains the basis marker, and ends with a line terminator.
// A missing file is not-ready, not an error.
//
// Ready re-reads the whole file on every call — O(file size), acceptable
// for bounded solution-file sizes.
func Ready(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("solfile: ready check: %w", err)
	}
	content := string(data)
	return strings.Contains(content, readyMarker) && strings.HasSuffix(content, "\n"), nil
}

// AwaitOptions holds resolved configuration for Await.
type AwaitOptions struct {
	// PollInterval is the cooperative sleep between readiness checks.
	// Defaults to highsrun.DefaultPollInterval.
	PollInterval time.Duration
}

// AwaitOption configures an Await call.
type AwaitOption func(*AwaitOptions)

// WithPollInterval sets the sleep between readiness checks.
// Values <= 0 are ignored.
func WithPollInterval(d time.Duration) AwaitOption {
	return func(o *AwaitOptions) {
		if d > 0 {
			o.PollInterval = d
		}
	}
}

// Await blocks until Ready(path) holds or ctx ends. It never busy-spins:
// between checks it sleeps on a poll ticker, and additionally wakes early
// on filesystem events for path's directory when a watcher is available
// (watcher failure degrades to pure polling).
//
// When ctx expires by deadline the error wraps [highsrun.ErrWaitTimeout];
// plain cancellation returns the context error as-is. Note that the
// readiness predicate is a heuristic — see the package comment for the
// residual race it carries.
func Await(ctx context.Context, path string, opts ...AwaitOption) error {
	o := AwaitOptions{PollInterval: highsrun.DefaultPollInterval}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	ready, err := Ready(path)
	if err != nil {
		return err
	}
	if ready {
		return nil
	}

	// Receiving on a nil channel blocks forever, so a failed watcher
	// simply leaves the ticker as the only wake-up source.
	var events chan fsnotify.Event
	var watchErrs chan error
	if watcher, werr := fsnotify.NewWatcher(); werr == nil {
		defer watcher.Close()
		if werr = watcher.Add(filepath.Dir(path)); werr == nil {
			events = watcher.Events
			watchErrs = watcher.Errors
		}
	}

	ticker := time.NewTicker(o.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return waitErr(ctx, path)
		case ev := <-events:
			if ev.Name != path {
				continue
			}
		case <-watchErrs:
			// Watcher trouble is non-fatal; the ticker still drives.
			continue
		case <-ticker.C:
		}

		ready, err := Ready(path)
		if err != nil {
			return err
		}
		if ready {
			return nil
		}
	}
}

func waitErr(ctx context.Context, path string) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", highsrun.ErrWaitTimeout, path)
	}
	return ctx.Err()
}
