package population

import "github.com/elektrokombinacija/vrpevo/internal/core"

// Individual pairs a solution handle with its objective vector so
// ranking never has to recompute cost mid-sort.
type Individual struct {
	Context   *core.InsertionContext
	Objective Objective
}

func newIndividual(problem *core.Problem, ctx *core.InsertionContext) *Individual {
	return &Individual{Context: ctx, Objective: objectiveOf(problem, ctx.Solution)}
}
