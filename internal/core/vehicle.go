package core

// Break is an optional rest period a vehicle must take during a shift,
// either at a fixed time window or after a duration offset.
type Break struct {
	Windows  []TimeWindow
	Duration float64 // seconds
}

// Shift is one planning horizon for a vehicle: a start location/time, an
// optional end location/time (absent for open-ended shifts), reload
// depots it may revisit to replenish capacity, and an optional break.
type Shift struct {
	Start      Place
	End        *Place // nil means an open shift: the vehicle need not return
	Reloads    []Place
	Break      *Break
	MaxTasks   int // 0 means unbounded
}

// Vehicle is one unit of a heterogeneous fleet: a profile (for matrix
// lookups), a capacity vector, the skills it carries, and the shifts it is
// available for.
type Vehicle struct {
	ID       VehicleID
	Profile  string
	Capacity Demand
	Skills   []string
	Shifts   []Shift
	// FixedCost is charged once if the vehicle is used at all; CostPerUnit
	// scales with distance/duration, both consumed by soft-route
	// constraint modules (internal/constraint).
	FixedCost   float64
	CostPerUnit float64
}

// HasSkills reports whether the vehicle carries every skill required.
func (v *Vehicle) HasSkills(required []string) bool {
	for _, req := range required {
		found := false
		for _, have := range v.Skills {
			if have == req {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Fleet is the heterogeneous set of vehicles available to a Problem.
type Fleet struct {
	Vehicles []*Vehicle
}

// ByID finds a vehicle by identifier, or nil.
func (f *Fleet) ByID(id VehicleID) *Vehicle {
	for _, v := range f.Vehicles {
		if v.ID == id {
			return v
		}
	}
	return nil
}
