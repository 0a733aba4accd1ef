// The godu command reports on-disk space usage per file and directory.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/godu/internal/cli"
	"github.com/idelchi/godu/internal/godu"
)

// version is set at build time via ldflags.
var version = "dev" //nolint:gochecknoglobals // Set by the build system

func main() {
	if err := cli.New(version).Execute(); err != nil {
		// Traversal failures have already produced per-path
		// diagnostics; anything else still needs reporting.
		if !errors.Is(err, godu.ErrIncomplete) {
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}
}
