package insertion

import "github.com/elektrokombinacija/vrpevo/internal/core"

// Evaluate finds the legal insertion of job with the strictly lowest
// total cost across routes, in the order given, under position
// (spec.md §4.2). bestKnown seeds the pruning threshold; pass +Inf for
// an unconstrained search.
func Evaluate(ctx *core.InsertionContext, job core.Job, position Position, routes []*core.RouteContext, bestKnown float64) Result {
	if len(routes) == 0 {
		return Fail(core.CodeNoRoutes, job)
	}

	pipeline := ctx.Problem.Constraint
	bestCost := bestKnown
	var best Result
	found := false
	leadingCode := core.CodeUnknown

	for _, route := range routes {
		if v := pipeline.EvaluateHardRoute(ctx.Solution, route, job); v != nil {
			if leadingCode == core.CodeUnknown {
				leadingCode = v.Code
			}
			continue
		}
		routeCost := pipeline.EvaluateSoftRoute(ctx.Solution, route, job)
		if routeCost >= bestCost {
			continue
		}

		var result Result
		if job.Kind == core.KindSingle {
			result = evaluateSingle(ctx.Problem, route, job, position, routeCost, bestCost)
		} else {
			result = evaluateMulti(ctx.Problem, route, job, position, routeCost, bestCost)
		}

		if result.Success && result.Cost < bestCost {
			bestCost = result.Cost
			best = result
			found = true
		} else if !result.Success {
			leadingCode = result.Code
		}
	}

	if !found {
		return Fail(leadingCode, job)
	}
	return best
}

// evaluateSingle runs the §4.2.1 algorithm for a Single job against one
// route.
func evaluateSingle(problem *core.Problem, route *core.RouteContext, job core.Job, position Position, routeCost, bestKnown float64) Result {
	legs := legsFor(route, position, 0)
	scan := scanTask(problem.Constraint, problem.Transport, route, job, 0, job.Single.Task, legs, bestKnown-routeCost)
	if !scan.success {
		return Fail(scan.code, job)
	}
	return Succeed(routeCost+scan.cost, job, []Placement{{Activity: scan.activity, Index: scan.legIndex}}, route)
}

// evaluateMulti runs the §4.2.2 algorithm for a Multi job against one
// route: every declared permutation is tried against a shared
// copy-on-write shadow, and the cheapest legal permutation wins.
func evaluateMulti(problem *core.Problem, route *core.RouteContext, job core.Job, position Position, routeCost, bestKnown float64) Result {
	multi := job.Multi
	sh := newShadow(route)
	bestCost := bestKnown
	found := false
	var bestPlacements []Placement
	leadingCode := core.CodeUnknown

	for _, perm := range multi.Permutations {
		tasks := multi.Permute(perm)
		nextIndex := 0
		total := 0.0
		placements := make([]Placement, 0, len(tasks))
		ok := true
		stoppedRoute := false

		for i, task := range tasks {
			// Only the first sub-task honors the caller's position policy;
			// later sub-tasks chain forward from nextIndex regardless of it
			// (spec.md §4.2.2: "monotonically non-decreasing insertion index
			// between sub-tasks").
			var legs []core.Leg
			if i == 0 {
				legs = legsFor(sh.route(), position, nextIndex)
			} else {
				legs = sh.route().Tour.Legs(nextIndex)
			}
			scan := scanTask(problem.Constraint, problem.Transport, sh.route(), job, perm[i], task, legs, bestCost-routeCost-total)
			if !scan.success {
				ok = false
				leadingCode = scan.code
				stoppedRoute = scan.stopped
				break
			}
			sh.insert(problem.Constraint, scan.activity, scan.legIndex)
			placements = append(placements, Placement{Activity: scan.activity, Index: scan.legIndex})
			total += scan.cost
			nextIndex = scan.legIndex + 1
		}

		if ok && routeCost+total < bestCost {
			bestCost = routeCost + total
			bestPlacements = placements
			found = true
		}

		sh.restore(problem.Constraint, job.ID())
		if stoppedRoute {
			break
		}
	}

	if !found {
		return Fail(leadingCode, job)
	}
	return Succeed(bestCost, job, bestPlacements, route)
}
