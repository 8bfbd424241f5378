// Package population implements the bounded, multi-objective solution
// archive the evolution driver selects parents from and admits
// offspring into (spec.md §4.6).
package population

import "github.com/elektrokombinacija/vrpevo/internal/core"

// Objective is the two-dimensional comparison vector every individual is
// ranked by: {unassigned-job count, routing cost}. Ranking uses Pareto
// dominance (see dominates), so neither dimension takes precedence: a
// solution that places one more job at a higher cost shares a front with
// a cheaper one that places fewer.
type Objective [2]float64

// objectiveOf scores a solution.
func objectiveOf(problem *core.Problem, solution *core.SolutionContext) Objective {
	unassigned := float64(len(solution.Unassigned))
	routingCost := core.SolutionCost(problem, solution) - unassigned*core.UnassignedPenalty
	return Objective{unassigned, routingCost}
}

// dominates reports whether a is at least as good as b on every
// dimension and strictly better on at least one (Pareto dominance).
func dominates(a, b Objective) bool {
	lessEqual := a[0] <= b[0] && a[1] <= b[1]
	strictlyLess := a[0] < b[0] || a[1] < b[1]
	return lessEqual && strictlyLess
}
