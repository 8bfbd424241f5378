package ruin

import "github.com/elektrokombinacija/vrpevo/internal/core"

// RandomJob removes a bounded random subset of assigned jobs, no matter
// which route they are on (spec.md §4.4).
type RandomJob struct {
	Limit JobRemovalLimit
}

// NewRandomJob builds a RandomJob operator.
func NewRandomJob(limit JobRemovalLimit) *RandomJob {
	return &RandomJob{Limit: limit}
}

func (r *RandomJob) Run(ctx *core.InsertionContext) {
	assigned := ctx.Solution.AssignedJobIDs()
	if len(assigned) == 0 {
		return
	}
	ids := make([]core.JobID, 0, len(assigned))
	for id := range assigned {
		ids = append(ids, id)
	}
	sortJobIDs(ids)
	shuffle(ctx.Random, ids)

	n := r.Limit.ChunkSize(ctx.Random, len(ids))
	for i := 0; i < n && i < len(ids); i++ {
		if job, ok := ctx.Problem.JobByID(ids[i]); ok {
			removeJob(ctx, job)
		}
	}
}

// RandomRoute empties one randomly chosen non-empty route entirely
// (spec.md §4.4).
type RandomRoute struct{}

func (RandomRoute) Run(ctx *core.InsertionContext) {
	var nonEmpty []*core.RouteContext
	for _, r := range ctx.Solution.Routes {
		if r.Tour.HasJobs() {
			nonEmpty = append(nonEmpty, r)
		}
	}
	if len(nonEmpty) == 0 {
		return
	}
	route := nonEmpty[ctx.Random.UniformInt(0, len(nonEmpty)-1)]
	for _, job := range route.Tour.Jobs() {
		removeJob(ctx, job)
	}
}

func sortJobIDs(ids []core.JobID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}
