// Package ruin implements the ruin operator variants that remove a
// bounded subset of assigned jobs, moving them back to required so a
// recreate operator can reinsert them differently (spec.md §4.4).
package ruin

import "github.com/elektrokombinacija/vrpevo/internal/core"

// JobRemovalLimit bounds how many jobs a single ruin call removes:
// chunk size = clamp(uniform(min, max), 0, floor(assigned*threshold)).
type JobRemovalLimit struct {
	Min, Max  int
	Threshold float64
}

// DefaultJobRemovalLimit is the standard {8, 16, 0.1} bound.
func DefaultJobRemovalLimit() JobRemovalLimit {
	return JobRemovalLimit{Min: 8, Max: 16, Threshold: 0.1}
}

// ChunkSize samples how many jobs to remove given how many are currently
// assigned.
func (l JobRemovalLimit) ChunkSize(random core.Random, assigned int) int {
	if assigned == 0 {
		return 0
	}
	n := random.UniformInt(l.Min, l.Max)
	maxAllowed := int(float64(assigned) * l.Threshold)
	if n > maxAllowed {
		n = maxAllowed
	}
	if n < 0 {
		n = 0
	}
	return n
}
