package core

// RouteContext owns exactly one Tour and its StateMap (spec.md §3
// Ownership). It is the unit of copy-on-write during Multi-job insertion
// (spec.md §4.2.2, §9): unmodified RouteContexts are shared across shadow
// attempts and only DeepCopy'd on first write.
type RouteContext struct {
	ID    RouteID
	Tour  *Tour
	State *StateMap
}

// NewRouteContext wraps a fresh tour with an empty state map.
func NewRouteContext(id RouteID, tour *Tour) *RouteContext {
	return &RouteContext{ID: id, Tour: tour, State: NewStateMap()}
}

// DeepCopy clones both the Tour and the StateMap, keeping the shared,
// immutable Vehicle pointer (spec.md §3 Ownership: "Problem is shared
// immutably ... RouteContext deep-copy clones the tour structure but
// keeps Problem shared").
func (r *RouteContext) DeepCopy() *RouteContext {
	newTour := r.Tour.Clone()
	return &RouteContext{ID: r.ID, Tour: newTour, State: r.State.Clone(r.Tour, newTour)}
}
