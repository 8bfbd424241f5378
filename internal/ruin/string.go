package ruin

import "github.com/elektrokombinacija/vrpevo/internal/core"

// AdjustedStringRemoval removes a spatially contiguous run of jobs from
// a single tour, positioned around a randomly seeded job (spec.md §4.4).
type AdjustedStringRemoval struct {
	Limit JobRemovalLimit
}

// NewAdjustedStringRemoval builds an AdjustedStringRemoval operator.
func NewAdjustedStringRemoval(limit JobRemovalLimit) *AdjustedStringRemoval {
	return &AdjustedStringRemoval{Limit: limit}
}

func (s *AdjustedStringRemoval) Run(ctx *core.InsertionContext) {
	route, seed, ok := selectSeedJob(ctx)
	if !ok {
		return
	}
	assignedCount := len(ctx.Solution.AssignedJobIDs())
	chunk := s.Limit.ChunkSize(ctx.Random, assignedCount)
	if chunk == 0 {
		return
	}

	jobs := route.Tour.Jobs()
	seedPos := -1
	for i, j := range jobs {
		if j.ID() == seed.ID() {
			seedPos = i
			break
		}
	}
	if seedPos < 0 {
		return
	}
	if chunk > len(jobs) {
		chunk = len(jobs)
	}

	offset := 0
	if chunk > 1 {
		offset = ctx.Random.UniformInt(0, chunk-1)
	}
	start := seedPos - offset
	if start < 0 {
		start = 0
	}
	end := start + chunk
	if end > len(jobs) {
		end = len(jobs)
		start = end - chunk
		if start < 0 {
			start = 0
		}
	}

	for i := start; i < end; i++ {
		removeJob(ctx, jobs[i])
	}
}
