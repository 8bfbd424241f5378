// Package constraint implements the capability-bounded constraint
// pipeline: an ordered set of modules, each advertising a subset of
// {hard-route, soft-route, hard-activity, soft-activity, route-state-accept,
// solution-state-accept}, queried short-circuit-on-first-violation for the
// hard checks and summed for the soft checks.
package constraint

import "github.com/elektrokombinacija/vrpevo/internal/core"

// Module is one constraint concern. A module implements only the methods
// that match its capability set; the no-op embeddable helpers below let
// a module opt out of the rest without a nil-check at every call site.
type Module interface {
	// Priority orders modules within the pipeline: lower runs first.
	Priority() int
}

// HardRouteChecker evaluates a job against an entire route before any
// positional search begins.
type HardRouteChecker interface {
	HardRoute(solution *core.SolutionContext, route *core.RouteContext, job core.Job) *core.Violation
}

// SoftRouteCoster prices using a route at all (e.g. fixed cost of
// waking up a vehicle).
type SoftRouteCoster interface {
	SoftRoute(solution *core.SolutionContext, route *core.RouteContext, job core.Job) float64
}

// HardActivityChecker evaluates one candidate insertion leg.
type HardActivityChecker interface {
	HardActivity(route *core.RouteContext, actx core.ActivityContext) *core.Violation
}

// SoftActivityCoster prices one candidate insertion leg.
type SoftActivityCoster interface {
	SoftActivity(route *core.RouteContext, actx core.ActivityContext) float64
}

// RouteStateAccepter recomputes a module's derived per-route state after
// a structural mutation (spec.md §3 invariant 2).
type RouteStateAccepter interface {
	AcceptRoute(route *core.RouteContext)
}

// SolutionStateAccepter recomputes cross-route derived state.
type SolutionStateAccepter interface {
	AcceptSolution(solution *core.SolutionContext)
}

// Pipeline holds modules in priority order and implements
// core.ConstraintPipeline against them.
type Pipeline struct {
	modules []Module
}

// NewPipeline builds a pipeline from modules, sorted by ascending
// Priority (stable, so equal-priority modules keep construction order).
func NewPipeline(modules ...Module) *Pipeline {
	sorted := make([]Module, len(modules))
	copy(sorted, modules)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Priority() < sorted[j-1].Priority(); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return &Pipeline{modules: sorted}
}

// EvaluateHardRoute returns the first violation raised by any module, in
// priority order (spec.md §4.1).
func (p *Pipeline) EvaluateHardRoute(solution *core.SolutionContext, route *core.RouteContext, job core.Job) *core.Violation {
	for _, m := range p.modules {
		checker, ok := m.(HardRouteChecker)
		if !ok {
			continue
		}
		if v := checker.HardRoute(solution, route, job); v != nil {
			return v
		}
	}
	return nil
}

// EvaluateSoftRoute sums every module's route-level cost contribution.
func (p *Pipeline) EvaluateSoftRoute(solution *core.SolutionContext, route *core.RouteContext, job core.Job) float64 {
	var total float64
	for _, m := range p.modules {
		coster, ok := m.(SoftRouteCoster)
		if !ok {
			continue
		}
		total += coster.SoftRoute(solution, route, job)
	}
	return total
}

// EvaluateHardActivity returns the first violation raised by any module
// for a candidate leg.
func (p *Pipeline) EvaluateHardActivity(route *core.RouteContext, actx core.ActivityContext) *core.Violation {
	for _, m := range p.modules {
		checker, ok := m.(HardActivityChecker)
		if !ok {
			continue
		}
		if v := checker.HardActivity(route, actx); v != nil {
			return v
		}
	}
	return nil
}

// EvaluateSoftActivity sums every module's activity-level cost
// contribution.
func (p *Pipeline) EvaluateSoftActivity(route *core.RouteContext, actx core.ActivityContext) float64 {
	var total float64
	for _, m := range p.modules {
		coster, ok := m.(SoftActivityCoster)
		if !ok {
			continue
		}
		total += coster.SoftActivity(route, actx)
	}
	return total
}

// AcceptRouteState lets every module recompute its derived per-route
// state, in priority order (later modules may depend on earlier ones'
// freshly recomputed state, e.g. time windows after capacity).
func (p *Pipeline) AcceptRouteState(route *core.RouteContext) {
	for _, m := range p.modules {
		if accepter, ok := m.(RouteStateAccepter); ok {
			accepter.AcceptRoute(route)
		}
	}
}

// AcceptSolutionState lets every module recompute cross-route state.
func (p *Pipeline) AcceptSolutionState(solution *core.SolutionContext) {
	for _, m := range p.modules {
		if accepter, ok := m.(SolutionStateAccepter); ok {
			accepter.AcceptSolution(solution)
		}
	}
}

var _ core.ConstraintPipeline = (*Pipeline)(nil)
