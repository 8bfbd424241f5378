package ruin

import (
	"math"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/core"
)

// ClusterRemoval grows a spatial cluster outward from a seed job,
// repeatedly folding in whichever unclustered assigned job is nearest to
// any job already in the cluster, until the chunk limit is reached
// (spec.md §4.4).
type ClusterRemoval struct {
	Limit JobRemovalLimit
}

// NewClusterRemoval builds a ClusterRemoval operator.
func NewClusterRemoval(limit JobRemovalLimit) *ClusterRemoval {
	return &ClusterRemoval{Limit: limit}
}

func (c *ClusterRemoval) Run(ctx *core.InsertionContext) {
	_, seed, ok := selectSeedJob(ctx)
	if !ok {
		return
	}
	assigned := ctx.Solution.AssignedJobIDs()
	chunk := c.Limit.ChunkSize(ctx.Random, len(assigned))
	if chunk == 0 {
		return
	}
	profile := referenceProfile(ctx)

	cluster := []core.Job{seed}
	clustered := map[core.JobID]bool{seed.ID(): true}

	for len(cluster) < chunk {
		var nearest core.Job
		nearestDist := math.Inf(1)
		found := false
		for id := range assigned {
			if clustered[id] {
				continue
			}
			job, ok := ctx.Problem.JobByID(id)
			if !ok {
				continue
			}
			loc := jobLocation(job)
			for _, member := range cluster {
				d := ctx.Problem.Transport.Distance(profile, jobLocation(member), loc, time.Time{})
				if d < nearestDist {
					nearestDist = d
					nearest = job
					found = true
				}
			}
		}
		if !found {
			break
		}
		cluster = append(cluster, nearest)
		clustered[nearest.ID()] = true
	}

	for _, job := range cluster {
		removeJob(ctx, job)
	}
}
