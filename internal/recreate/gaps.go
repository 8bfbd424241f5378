package recreate

import (
	"math"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/elektrokombinacija/vrpevo/internal/insertion"
)

// Gaps prefers, at each step, the job whose top insertion alternatives
// are spatially the most spread out, widening exploration rather than
// always chasing the globally cheapest slot (spec.md §4.3).
type Gaps struct {
	N int
}

// NewGaps builds a Gaps variant considering the top n alternatives per job.
func NewGaps(n int) *Gaps {
	if n < 2 {
		n = 2
	}
	return &Gaps{N: n}
}

func (g *Gaps) Run(ctx *core.InsertionContext) {
	for {
		required := append([]core.Job(nil), ctx.Solution.Required...)
		if len(required) == 0 {
			return
		}
		routes := candidateRoutes(ctx)

		type candidate struct {
			results []insertion.Result
			gap     float64
		}
		var candidates []candidate
		var failures []jobFailure

		for _, job := range required {
			results := insertion.EvaluateTopN(ctx, job, insertion.Any(), routes, g.N)
			if len(results) == 0 {
				res := insertion.Evaluate(ctx, job, insertion.Any(), routes, math.Inf(1))
				failures = append(failures, jobFailure{job, res.Code})
				continue
			}
			candidates = append(candidates, candidate{results: results, gap: spatialGap(ctx.Problem.Transport, results)})
		}

		if len(candidates) == 0 {
			drainFailures(ctx, failures)
			return
		}

		bestIdx := 0
		for i, c := range candidates {
			if c.gap > candidates[bestIdx].gap {
				bestIdx = i
			}
		}
		apply(ctx, candidates[bestIdx].results[0])
	}
}

// spatialGap is the distance between the locations of the cheapest and
// the farthest-ranked alternative, a proxy for how dispersed a job's
// legal placements are.
func spatialGap(transport core.TransportCosts, results []insertion.Result) float64 {
	if len(results) < 2 {
		return 0
	}
	first := results[0].Activities[len(results[0].Activities)-1]
	last := results[len(results)-1].Activities[len(results[len(results)-1].Activities)-1]
	profile := results[0].Route.Tour.Vehicle.Profile
	return transport.Distance(profile, first.Activity.Place.Location, last.Activity.Place.Location, time.Time{})
}
