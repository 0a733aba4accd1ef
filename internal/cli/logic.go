package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/godu/internal/godu"
)

func logic(opts godu.Options, paths []string) error {
	// A status line is only useful when stderr reaches a terminal and
	// the report itself is being piped or redirected elsewhere.
	enableProgress := !opts.Debug &&
		isatty.IsTerminal(os.Stderr.Fd()) &&
		!isatty.IsTerminal(os.Stdout.Fd())

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(entries, kilobytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(entries, kilobytes int64) {
			msg := fmt.Sprintf("Scanning… %d entries, %s",
				entries, humanize.IBytes(uint64(kilobytes)*humanize.KiByte)) //nolint:gosec // Usage is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	err := godu.Run(ctx, opts, paths, os.Stdout, os.Stderr, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	return err
}
