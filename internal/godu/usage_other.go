//go:build !unix

package godu

import "io/fs"

// kilobytes returns the storage allocated to the entry, in kilobyte
// units. Without block counts from the system, allocation is estimated
// from the logical size.
func kilobytes(info fs.FileInfo) int64 {
	return clusterKilobytes(info.Size())
}
