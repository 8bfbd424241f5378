package core

// Leg is an adjacent (prev, next) pair in a tour — an insertion target
// (spec.md §9 GLOSSARY). Next is nil only for the synthetic trailing leg
// past the end activity, which legal tours never expose via Legs().
type Leg struct {
	Prev, Next *Activity
	Index      int
}

// Tour is the ordered sequence of activities a vehicle performs on one
// shift, including the synthetic start/end activities that always
// bracket every real activity (spec.md §3 invariant 3).
type Tour struct {
	Vehicle    *Vehicle
	ShiftIndex int
	Activities []*Activity // [start, ...real..., end]
}

// NewTour creates an empty tour for a vehicle shift, already bracketed by
// start/end activities at the shift's start/end places.
func NewTour(vehicle *Vehicle, shiftIndex int) *Tour {
	shift := vehicle.Shifts[shiftIndex]
	start := &Activity{Place: shift.Start, Departure: shift.Start.Windows[0].Start}
	end := &Activity{}
	if shift.End != nil {
		end.Place = *shift.End
	} else {
		end.Place = shift.Start
	}
	return &Tour{Vehicle: vehicle, ShiftIndex: shiftIndex, Activities: []*Activity{start, end}}
}

// Start returns the synthetic first activity.
func (t *Tour) Start() *Activity { return t.Activities[0] }

// End returns the synthetic last activity.
func (t *Tour) End() *Activity { return t.Activities[len(t.Activities)-1] }

// ActivityCount returns the number of real (non-synthetic) activities.
func (t *Tour) ActivityCount() int {
	return len(t.Activities) - 2
}

// Legs returns every (prev, next) adjacent pair in tour order, starting
// from the leg whose prev is at startIndex activities into the tour
// (0 means the very first leg, [start, first-real-or-end]).
func (t *Tour) Legs(startIndex int) []Leg {
	legs := make([]Leg, 0, len(t.Activities)-1)
	for i := startIndex; i < len(t.Activities)-1; i++ {
		legs = append(legs, Leg{Prev: t.Activities[i], Next: t.Activities[i+1], Index: i})
	}
	return legs
}

// LegAt returns the leg at the given index, or false if out of range
// (spec.md §4.2.1: "Concrete(i) beyond tour length ⇒ Failure without
// panic").
func (t *Tour) LegAt(index int) (Leg, bool) {
	if index < 0 || index >= len(t.Activities)-1 {
		return Leg{}, false
	}
	return Leg{Prev: t.Activities[index], Next: t.Activities[index+1], Index: index}, true
}

// InsertAt inserts activity into leg index (0 means the leg whose prev
// is Start), placing it right after that leg's prev and shifting later
// activities right.
func (t *Tour) InsertAt(activity *Activity, index int) {
	t.Activities = append(t.Activities, nil)
	copy(t.Activities[index+2:], t.Activities[index+1:len(t.Activities)-1])
	t.Activities[index+1] = activity
}

// Remove deletes every activity belonging to job from the tour.
func (t *Tour) Remove(job JobID) {
	out := t.Activities[:0:0]
	for _, a := range t.Activities {
		if a.Job != nil && a.Job.ID() == job {
			continue
		}
		out = append(out, a)
	}
	t.Activities = out
}

// Jobs returns the distinct jobs present in the tour, in first-occurrence
// order.
func (t *Tour) Jobs() []Job {
	seen := make(map[JobID]bool)
	var jobs []Job
	for _, a := range t.Activities {
		if a.Job == nil || seen[a.Job.ID()] {
			continue
		}
		seen[a.Job.ID()] = true
		jobs = append(jobs, *a.Job)
	}
	return jobs
}

// HasJobs reports whether any real activity is present.
func (t *Tour) HasJobs() bool {
	return t.ActivityCount() > 0
}

// Clone deep-copies the tour's activity slice (the activities themselves
// are cloned too, but the Vehicle pointer is shared — it is immutable
// problem data).
func (t *Tour) Clone() *Tour {
	clone := &Tour{Vehicle: t.Vehicle, ShiftIndex: t.ShiftIndex, Activities: make([]*Activity, len(t.Activities))}
	for i, a := range t.Activities {
		clone.Activities[i] = a.Clone()
	}
	return clone
}
