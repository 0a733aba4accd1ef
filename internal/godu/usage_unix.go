//go:build unix

package godu

import (
	"io/fs"
	"syscall"
)

// kilobytes returns the storage allocated to the entry, in kilobyte
// units. Stat_t reports 512-byte blocks, so two blocks make a kilobyte.
func kilobytes(info fs.FileInfo) int64 {
	if sys, ok := info.Sys().(*syscall.Stat_t); ok {
		return sys.Blocks / 2
	}

	return clusterKilobytes(info.Size())
}
