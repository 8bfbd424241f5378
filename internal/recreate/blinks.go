package recreate

import (
	"math"
	"sort"

	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/elektrokombinacija/vrpevo/internal/insertion"
)

// Blinks runs Cheapest but occasionally "blinks" past the very cheapest
// candidate to escape the greedy local optima pure Cheapest gets stuck
// in (spec.md §4.3).
type Blinks struct {
	SkipProbability float64
}

// NewBlinks builds a Blinks variant with the given per-step skip chance.
func NewBlinks(skipProbability float64) *Blinks {
	return &Blinks{SkipProbability: skipProbability}
}

func (b *Blinks) Run(ctx *core.InsertionContext) {
	for {
		required := append([]core.Job(nil), ctx.Solution.Required...)
		if len(required) == 0 {
			return
		}
		routes := candidateRoutes(ctx)

		type candidate struct {
			result insertion.Result
		}
		var candidates []candidate
		var failures []jobFailure

		for _, job := range required {
			result := insertion.Evaluate(ctx, job, insertion.Any(), routes, math.Inf(1))
			if !result.Success {
				failures = append(failures, jobFailure{job, result.Code})
				continue
			}
			candidates = append(candidates, candidate{result: result})
		}

		if len(candidates) == 0 {
			drainFailures(ctx, failures)
			return
		}

		sort.Slice(candidates, func(i, j int) bool { return candidates[i].result.Cost < candidates[j].result.Cost })

		chosen := 0
		for chosen < len(candidates)-1 && ctx.Random.UniformReal(0, 1) < b.SkipProbability {
			chosen++
		}
		apply(ctx, candidates[chosen].result)
	}
}
