package ruin

import (
	"sort"

	"github.com/elektrokombinacija/vrpevo/internal/core"
)

// WorstJobRemoval removes the highest per-job cost contributors (spec.md
// §4.4): jobs whose detour is most expensive relative to a direct
// prev→next leg.
type WorstJobRemoval struct {
	Limit JobRemovalLimit
}

// NewWorstJobRemoval builds a WorstJobRemoval operator.
func NewWorstJobRemoval(limit JobRemovalLimit) *WorstJobRemoval {
	return &WorstJobRemoval{Limit: limit}
}

func (w *WorstJobRemoval) Run(ctx *core.InsertionContext) {
	contributions := make(map[core.JobID]float64)
	for _, route := range ctx.Solution.Routes {
		for id, cost := range jobCostContribution(ctx.Problem.Transport, route) {
			contributions[id] += cost
		}
	}
	if len(contributions) == 0 {
		return
	}

	type scored struct {
		job  core.Job
		cost float64
	}
	scoredJobs := make([]scored, 0, len(contributions))
	for id, cost := range contributions {
		if job, ok := ctx.Problem.JobByID(id); ok {
			scoredJobs = append(scoredJobs, scored{job: job, cost: cost})
		}
	}
	sort.Slice(scoredJobs, func(i, j int) bool { return scoredJobs[i].cost > scoredJobs[j].cost })

	n := w.Limit.ChunkSize(ctx.Random, len(scoredJobs))
	for i := 0; i < n && i < len(scoredJobs); i++ {
		removeJob(ctx, scoredJobs[i].job)
	}
}

// jobCostContribution estimates each job's marginal detour cost along a
// route: the extra distance its activities add versus a direct
// prev→next leg, priced at the vehicle's per-unit cost.
func jobCostContribution(transport core.TransportCosts, route *core.RouteContext) map[core.JobID]float64 {
	contributions := make(map[core.JobID]float64)
	acts := route.Tour.Activities
	vehicle := route.Tour.Vehicle
	for i := 1; i < len(acts)-1; i++ {
		prev, target, next := acts[i-1], acts[i], acts[i+1]
		if target.Job == nil {
			continue
		}
		direct := transport.Distance(vehicle.Profile, prev.Place.Location, next.Place.Location, prev.Departure)
		viaPrev := transport.Distance(vehicle.Profile, prev.Place.Location, target.Place.Location, prev.Departure)
		viaNext := transport.Distance(vehicle.Profile, target.Place.Location, next.Place.Location, target.Departure)
		contributions[target.Job.ID()] += (viaPrev + viaNext - direct) * vehicle.CostPerUnit
	}
	return contributions
}
