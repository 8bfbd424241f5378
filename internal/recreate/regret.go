package recreate

import (
	"math"

	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/elektrokombinacija/vrpevo/internal/insertion"
)

// Regret picks, at each step, the job with the largest cost gap between
// its best and k-th-best insertion (spec.md §4.3): jobs that only get
// harder to place later are prioritized over ones with many cheap
// alternatives.
type Regret struct {
	K int
}

// NewRegret builds a Regret-k variant; k below 2 is raised to 2.
func NewRegret(k int) *Regret {
	if k < 2 {
		k = 2
	}
	return &Regret{K: k}
}

func (r *Regret) Run(ctx *core.InsertionContext) {
	for {
		required := append([]core.Job(nil), ctx.Solution.Required...)
		if len(required) == 0 {
			return
		}
		routes := candidateRoutes(ctx)

		type candidate struct {
			results []insertion.Result
			regret  float64
		}
		var candidates []candidate
		var failures []jobFailure

		for _, job := range required {
			results := insertion.EvaluateTopN(ctx, job, insertion.Any(), routes, r.K)
			if len(results) == 0 {
				res := insertion.Evaluate(ctx, job, insertion.Any(), routes, math.Inf(1))
				failures = append(failures, jobFailure{job, res.Code})
				continue
			}
			candidates = append(candidates, candidate{results: results, regret: regretValue(results, r.K)})
		}

		if len(candidates) == 0 {
			drainFailures(ctx, failures)
			return
		}

		bestIdx := 0
		for i, c := range candidates {
			if c.regret > candidates[bestIdx].regret {
				bestIdx = i
			}
		}
		apply(ctx, candidates[bestIdx].results[0])
	}
}

// regretValue is the gap between the best and k-th-best (or worst
// available, if fewer than k exist) insertion cost.
func regretValue(results []insertion.Result, k int) float64 {
	if len(results) == 0 {
		return 0
	}
	idx := k - 1
	if idx >= len(results) {
		idx = len(results) - 1
	}
	return results[idx].Cost - results[0].Cost
}
