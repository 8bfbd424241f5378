// Package recreate implements the recreate operator variants that
// reinsert required jobs into a solution via the insertion evaluator
// (spec.md §4.3).
package recreate

import (
	"strconv"

	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/elektrokombinacija/vrpevo/internal/insertion"
)

// Variant is one recreate strategy: it drains ctx.Solution.Required,
// inserting what it can and moving the rest to unassigned with a reason
// code.
type Variant interface {
	Run(ctx *core.InsertionContext)
}

type jobFailure struct {
	job  core.Job
	code core.Code
}

// candidateRoutes returns every route already in the solution plus one
// fresh, empty route per not-yet-used vehicle shift, so a variant can
// open a new vehicle when every existing route is full or infeasible.
func candidateRoutes(ctx *core.InsertionContext) []*core.RouteContext {
	routes := append([]*core.RouteContext(nil), ctx.Solution.Routes...)
	used := make(map[core.VehicleID]map[int]bool)
	for _, r := range routes {
		if used[r.Tour.Vehicle.ID] == nil {
			used[r.Tour.Vehicle.ID] = make(map[int]bool)
		}
		used[r.Tour.Vehicle.ID][r.Tour.ShiftIndex] = true
	}
	for _, v := range ctx.Problem.Fleet.Vehicles {
		for shiftIdx := range v.Shifts {
			if used[v.ID] != nil && used[v.ID][shiftIdx] {
				continue
			}
			id := core.RouteID(string(v.ID) + "#" + strconv.Itoa(shiftIdx))
			routes = append(routes, core.NewRouteContext(id, core.NewTour(v, shiftIdx)))
		}
	}
	return routes
}

// apply commits a successful insertion result: splices every resolved
// activity into its route (registering the route if it is newly opened),
// re-accepts route state, and clears the job from required.
func apply(ctx *core.InsertionContext, result insertion.Result) {
	route := result.Route
	if ctx.Solution.RouteByID(route.ID) == nil {
		ctx.Solution.Routes = append(ctx.Solution.Routes, route)
	}
	for _, p := range result.Activities {
		route.Tour.InsertAt(p.Activity, p.Index)
	}
	ctx.Problem.Constraint.AcceptRouteState(route)
	ctx.Solution.RemoveRequired(result.Job.ID())
}

// drainFailures marks every recorded failure as unassigned. Called once
// a full pass over required makes no further progress.
func drainFailures(ctx *core.InsertionContext, failures []jobFailure) {
	for _, f := range failures {
		ctx.Solution.MarkUnassigned(f.job, f.code)
	}
}
