package godu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// ErrIncomplete reports that one or more paths could not be fully read.
// Diagnostics have already been written to the error stream by the time
// it is returned, so callers should only translate it into an exit code.
var ErrIncomplete = errors.New("one or more paths could not be fully read")

// logger provides conditional debug output.
type logger struct {
	enabled bool
	w       io.Writer
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(l.w, format, args...)
	}
}

// isFileOrLink reports whether mode describes a regular file or a
// symbolic link. Links are reported as files, never followed.
func isFileOrLink(mode fs.FileMode) bool {
	return mode.IsRegular() || mode&fs.ModeSymlink != 0
}

// walker carries the state of a single run. The traversal itself is
// strictly sequential; the atomic counters exist only so the progress
// reporter goroutine can read them while the walk is in flight.
type walker struct {
	opts   Options
	stdout io.Writer
	stderr io.Writer
	log    logger

	entries   atomic.Int64
	kilobytes atomic.Int64

	failed bool
}

// observe feeds the progress counters.
func (w *walker) observe(kilobytes int64) {
	w.entries.Add(1)
	w.kilobytes.Add(kilobytes)
}

// depthOK reports whether an entry at the given depth is eligible for printing.
func (w *walker) depthOK(depth int) bool {
	return w.opts.MaxDepth == -1 || depth <= w.opts.MaxDepth
}

// startProgressReporter invokes hook(entries, kilobytes) on each tick until ctx is done.
func startProgressReporter(ctx context.Context, w *walker, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(w.entries.Load(), w.kilobytes.Load())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run measures every path in paths, printing one line per qualifying
// entry to stdout and diagnostics to stderr. Sizes are kilobyte
// equivalents of 512-byte blocks, so a directory's line reflects the
// allocated storage of its whole subtree.
//
// Inaccessible arguments and unreadable directories are reported and
// skipped; when any occurred, Run returns ErrIncomplete after the
// remaining work has finished. Progress updates are sent to
// progressHook if provided; ctx only bounds the progress reporter.
func Run(ctx context.Context, opts Options, paths []string, stdout, stderr io.Writer, progressHook func(int64, int64)) error {
	if opts.ProgramName == "" {
		opts.ProgramName = "godu"
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}

	w := &walker{
		opts:   opts,
		stdout: stdout,
		stderr: stderr,
		log:    logger{enabled: opts.Debug, w: stderr},
	}

	// Child context to ensure progress reporter cleanup.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, w, progressHook, opts.ProgressInterval)

	var total int64

	for _, path := range paths {
		info, err := os.Lstat(path)
		if err != nil {
			fmt.Fprintf(w.stderr, "%s: cannot access '%s': No such file or directory\n", w.opts.ProgramName, path)

			w.failed = true

			continue
		}

		switch {
		case isFileOrLink(info.Mode()):
			kb := kilobytes(info)
			w.observe(kb)
			total += w.print(kb, path)
		case info.IsDir():
			total += w.dir(path, 0)
		default:
			// Devices, fifos and sockets named directly on the
			// command line are neither printed nor counted.
			w.log.printf("[debug]: skipping special file: %s\n", path)
		}
	}

	if opts.GrandTotal {
		w.print(total, "total")
	}

	if w.failed {
		return ErrIncomplete
	}

	return nil
}

// dir returns the total block usage attributable to path and everything
// beneath it, printing qualifying entries along the way. The directory's
// own line is printed last, after all of its children have been summed.
func (w *walker) dir(path string, depth int) int64 {
	var total int64

	if info, err := os.Lstat(path); err == nil {
		total = kilobytes(info)
	}

	w.observe(total)

	children, err := os.ReadDir(path)
	if err != nil {
		fmt.Fprintf(w.stderr, "%s: cannot read directory '%s': %v\n", w.opts.ProgramName, path, sysError(err))

		w.failed = true

		// The directory still accounts for its own metadata blocks,
		// but its line is not printed.
		return total
	}

	for _, child := range children {
		name := filepath.Join(path, child.Name())

		info, err := child.Info()
		if err != nil {
			// Entry vanished between the listing and the stat.
			w.log.printf("[debug]: cannot stat %s: %v\n", name, err)

			continue
		}

		switch {
		case isFileOrLink(info.Mode()):
			kb := kilobytes(info)
			w.observe(kb)

			if w.opts.All && w.depthOK(depth+1) {
				total += w.print(kb, name)
			} else {
				total += kb
			}
		case info.IsDir():
			total += w.dir(name, depth+1)
		default:
			kb := kilobytes(info)
			w.observe(kb)
			total += kb
		}
	}

	if w.depthOK(depth) {
		w.print(total, path)
	}

	return total
}

// sysError unwraps a *fs.PathError so diagnostics carry just the system
// error description, not a second copy of the path.
func sysError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}
