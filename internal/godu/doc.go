// Package godu computes on-disk space usage per file and directory.
//
// It walks each requested tree depth-first, accumulating 512-byte block
// usage bottom-up, and prints one line per qualifying entry the way the
// classic du utility does.
package godu
