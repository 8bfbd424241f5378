package insertion

import (
	"math"
	"sort"

	"github.com/elektrokombinacija/vrpevo/internal/core"
)

// EvaluateTopN returns up to n cheapest legal insertions of job across
// routes, cheapest first. It backs Regret-k and Gaps, which need several
// ranked alternatives rather than just the winner (spec.md §4.3). Multi
// jobs only ever produce the single best permutation's result: ranking
// every permutation-and-leg combination is not worth the complexity a
// recreate variant needs from it.
func EvaluateTopN(ctx *core.InsertionContext, job core.Job, position Position, routes []*core.RouteContext, n int) []Result {
	if job.Kind == core.KindMulti {
		r := Evaluate(ctx, job, position, routes, math.Inf(1))
		if r.Success {
			return []Result{r}
		}
		return nil
	}

	pipeline := ctx.Problem.Constraint
	var all []Result
	for _, route := range routes {
		if v := pipeline.EvaluateHardRoute(ctx.Solution, route, job); v != nil {
			continue
		}
		routeCost := pipeline.EvaluateSoftRoute(ctx.Solution, route, job)
		legs := legsFor(route, position, 0)
		for _, scan := range scanTaskAll(pipeline, ctx.Problem.Transport, route, job, 0, job.Single.Task, legs) {
			all = append(all, Succeed(routeCost+scan.cost, job, []Placement{{Activity: scan.activity, Index: scan.legIndex}}, route))
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Cost < all[j].Cost })
	if len(all) > n {
		all = all[:n]
	}
	return all
}
