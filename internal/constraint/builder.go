package constraint

import "github.com/elektrokombinacija/vrpevo/internal/core"

// Priority ordering for the standard module set: cheap, route-killing
// checks run first so expensive activity-level scans are pruned early.
const (
	PrioritySkills   = 10
	PriorityRelation = 20
	PriorityCapacity = 30
	PriorityTimeWindow = 40
	PriorityCost     = 100
)

// BuildDefault assembles the standard pipeline used by cmd/vrpsolve: skill
// matching, relation pinning/ordering, capacity, time windows, and
// distance/fixed-cost pricing, in that priority order.
func BuildDefault(transport core.TransportCosts, relations []core.Relation) *Pipeline {
	return NewPipeline(
		NewSkills(PrioritySkills),
		NewRelation(PriorityRelation, relations),
		NewCapacity(PriorityCapacity),
		NewTimeWindow(PriorityTimeWindow, transport),
		NewMinimizeCost(PriorityCost, transport),
	)
}
