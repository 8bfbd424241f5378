package constraint

import "github.com/elektrokombinacija/vrpevo/internal/core"

// MinimizeCost prices vehicle use and distance/duration: a one-time
// FixedCost the first time a route gains a job, plus per-unit travel
// cost on every leg touched by the candidate insertion.
type MinimizeCost struct {
	priority  int
	transport core.TransportCosts
}

// NewMinimizeCost builds a MinimizeCost module.
func NewMinimizeCost(priority int, transport core.TransportCosts) *MinimizeCost {
	return &MinimizeCost{priority: priority, transport: transport}
}

func (c *MinimizeCost) Priority() int { return c.priority }

// SoftRoute charges the vehicle's FixedCost exactly once, the moment an
// empty route receives its first job.
func (c *MinimizeCost) SoftRoute(_ *core.SolutionContext, route *core.RouteContext, _ core.Job) float64 {
	if route.Tour.HasJobs() {
		return 0
	}
	return route.Tour.Vehicle.FixedCost
}

// SoftActivity prices the marginal detour of splicing target between
// prev and next: the new two legs minus the leg they replace.
func (c *MinimizeCost) SoftActivity(route *core.RouteContext, actx core.ActivityContext) float64 {
	if actx.Target.IsSynthetic() {
		return 0
	}
	vehicle := route.Tour.Vehicle
	profile := vehicle.Profile
	direct := c.transport.Distance(profile, actx.Prev.Place.Location, actx.Next.Place.Location, actx.Prev.Departure)
	viaPrev := c.transport.Distance(profile, actx.Prev.Place.Location, actx.Target.Place.Location, actx.Prev.Departure)
	viaNext := c.transport.Distance(profile, actx.Target.Place.Location, actx.Next.Place.Location, actx.Target.Departure)
	return (viaPrev + viaNext - direct) * vehicle.CostPerUnit
}
