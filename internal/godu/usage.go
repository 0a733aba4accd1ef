package godu

// clusterSize approximates the allocation granularity of filesystems
// that do not expose block counts.
const clusterSize = 4096

// clusterKilobytes rounds size up to a whole number of clusters and
// converts the result to kilobyte units.
func clusterKilobytes(size int64) int64 {
	if size == 0 {
		return 0
	}

	clusters := (size + clusterSize - 1) / clusterSize

	return clusters * clusterSize / 1024
}
