package core

// StateKey names one derived numeric annotation a constraint module
// computes and later reads back (e.g. "current_load", "earliest_arrival",
// "latest_departure").
type StateKey string

// StateMap holds per-route and per-activity derived state, recomputed by
// ConstraintPipeline.AcceptRouteState after any structural mutation
// (spec.md §3 invariant 2). Activity state is keyed by pointer identity,
// so callers must re-key after cloning a Tour (Clone walks activities in
// lockstep, so the common Tour.Clone()+StateMap.Clone(oldTour, newTour)
// pairing keeps keys valid).
type StateMap struct {
	route    map[StateKey]float64
	activity map[*Activity]map[StateKey]float64
}

// NewStateMap creates an empty StateMap.
func NewStateMap() *StateMap {
	return &StateMap{route: make(map[StateKey]float64), activity: make(map[*Activity]map[StateKey]float64)}
}

// SetRoute stores a route-level value.
func (s *StateMap) SetRoute(key StateKey, value float64) {
	s.route[key] = value
}

// Route returns a route-level value and whether it was set.
func (s *StateMap) Route(key StateKey) (float64, bool) {
	v, ok := s.route[key]
	return v, ok
}

// SetActivity stores a value for a specific activity.
func (s *StateMap) SetActivity(a *Activity, key StateKey, value float64) {
	m := s.activity[a]
	if m == nil {
		m = make(map[StateKey]float64)
		s.activity[a] = m
	}
	m[key] = value
}

// Activity returns a value for a specific activity and whether it was set.
func (s *StateMap) Activity(a *Activity, key StateKey) (float64, bool) {
	m, ok := s.activity[a]
	if !ok {
		return 0, false
	}
	v, ok := m[key]
	return v, ok
}

// RemoveActivityStates drops all state recorded against an activity
// (called before a structural mutation removes it from the tour).
func (s *StateMap) RemoveActivityStates(a *Activity) {
	delete(s.activity, a)
}

// Clone deep-copies route-level state and re-keys activity-level state
// against the corresponding activities of newTour, which must have the
// same length and order as the tour this StateMap was built against.
func (s *StateMap) Clone(oldTour, newTour *Tour) *StateMap {
	clone := NewStateMap()
	for k, v := range s.route {
		clone.route[k] = v
	}
	for i, oldAct := range oldTour.Activities {
		if m, ok := s.activity[oldAct]; ok {
			newAct := newTour.Activities[i]
			cp := make(map[StateKey]float64, len(m))
			for k, v := range m {
				cp[k] = v
			}
			clone.activity[newAct] = cp
		}
	}
	return clone
}
