package ruin

import (
	"sort"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/core"
)

// NeighbourRemoval picks a seed job and removes it plus the spatially
// nearest currently-assigned jobs, up to the chunk limit (spec.md §4.4).
type NeighbourRemoval struct {
	Limit JobRemovalLimit
}

// NewNeighbourRemoval builds a NeighbourRemoval operator.
func NewNeighbourRemoval(limit JobRemovalLimit) *NeighbourRemoval {
	return &NeighbourRemoval{Limit: limit}
}

func (n *NeighbourRemoval) Run(ctx *core.InsertionContext) {
	_, seed, ok := selectSeedJob(ctx)
	if !ok {
		return
	}
	assigned := ctx.Solution.AssignedJobIDs()
	chunk := n.Limit.ChunkSize(ctx.Random, len(assigned))
	if chunk == 0 {
		return
	}
	profile := referenceProfile(ctx)
	seedLoc := jobLocation(seed)

	type distJob struct {
		job  core.Job
		dist float64
	}
	candidates := make([]distJob, 0, len(assigned))
	for id := range assigned {
		job, ok := ctx.Problem.JobByID(id)
		if !ok {
			continue
		}
		d := ctx.Problem.Transport.Distance(profile, seedLoc, jobLocation(job), time.Time{})
		candidates = append(candidates, distJob{job: job, dist: d})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

	for i := 0; i < chunk && i < len(candidates); i++ {
		removeJob(ctx, candidates[i].job)
	}
}
