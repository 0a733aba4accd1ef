package godu

import "time"

// Options configures a disk usage run and CLI behavior.
type Options struct {
	// All includes regular files and symlinks in the output, not just directories.
	All bool
	// GrandTotal appends a final summed "total" line.
	GrandTotal bool
	// HumanReadable scales sizes into K/M/G/T units instead of raw kilobyte counts.
	HumanReadable bool
	// MaxDepth limits which entries are printed (-1 = unlimited).
	// Deeper entries still count toward their ancestors' totals.
	MaxDepth int
	// ProgramName prefixes diagnostic messages.
	ProgramName string
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Integration indicates whether to output the shell integration script.
	Integration bool
}
