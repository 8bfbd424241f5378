package recreate

import (
	"math"

	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/elektrokombinacija/vrpevo/internal/insertion"
)

// Cheapest greedily inserts, at each step, the globally cheapest
// (job, position) pair across the whole required bucket (spec.md §4.3).
type Cheapest struct{}

func (Cheapest) Run(ctx *core.InsertionContext) {
	for {
		required := append([]core.Job(nil), ctx.Solution.Required...)
		if len(required) == 0 {
			return
		}
		routes := candidateRoutes(ctx)

		bestCost := math.Inf(1)
		var best insertion.Result
		found := false
		var failures []jobFailure

		for _, job := range required {
			result := insertion.Evaluate(ctx, job, insertion.Any(), routes, math.Inf(1))
			if !result.Success {
				failures = append(failures, jobFailure{job, result.Code})
				continue
			}
			if result.Cost < bestCost {
				bestCost = result.Cost
				best = result
				found = true
			}
		}

		if !found {
			drainFailures(ctx, failures)
			return
		}
		apply(ctx, best)
	}
}
