package md2post

import "runtime"

// Worker count bounds for batch conversion.
const (
	// MinWorkers ensures at least one worker is available.
	MinWorkers = 1

	// MaxWorkers caps concurrent conversions; each holds a whole file in memory.
	MaxWorkers = 32
)

// ResolveWorkers determines the number of concurrent conversions.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs for
// containers), clamped to [MinWorkers, MaxWorkers].
// Exported for use by CLIs and servers.
func ResolveWorkers(workers int) int {
	n := workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return min(max(n, MinWorkers), MaxWorkers)
}
