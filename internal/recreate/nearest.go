package recreate

import (
	"math"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/elektrokombinacija/vrpevo/internal/insertion"
)

// NearestNeighbor chains insertions outward from the last job placed,
// always picking the required job whose cheapest legal placement lands
// closest to that anchor (spec.md §4.3). The very first pick of a run
// has no anchor yet, so it falls back to cheapest cost.
type NearestNeighbor struct{}

func (NearestNeighbor) Run(ctx *core.InsertionContext) {
	var anchor *core.Location

	for {
		required := append([]core.Job(nil), ctx.Solution.Required...)
		if len(required) == 0 {
			return
		}
		routes := candidateRoutes(ctx)

		bestScore := math.Inf(1)
		var best insertion.Result
		found := false
		var failures []jobFailure

		for _, job := range required {
			result := insertion.Evaluate(ctx, job, insertion.Any(), routes, math.Inf(1))
			if !result.Success {
				failures = append(failures, jobFailure{job, result.Code})
				continue
			}
			score := result.Cost
			if anchor != nil {
				landed := result.Activities[0].Activity.Place.Location
				score = ctx.Problem.Transport.Distance(result.Route.Tour.Vehicle.Profile, *anchor, landed, time.Time{})
			}
			if score < bestScore {
				bestScore = score
				best = result
				found = true
			}
		}

		if !found {
			drainFailures(ctx, failures)
			return
		}
		apply(ctx, best)
		landed := best.Activities[len(best.Activities)-1].Activity.Place.Location
		anchor = &landed
	}
}
