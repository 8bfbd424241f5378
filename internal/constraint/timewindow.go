package constraint

import (
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/core"
)

// TimeWindow enforces that every activity is serviced within one of its
// place's declared windows, reachable from the previous activity's
// departure at the vehicle's travel speed.
type TimeWindow struct {
	priority  int
	profile   func(route *core.RouteContext) string
	transport core.TransportCosts
}

// NewTimeWindow builds a TimeWindow module. profile resolves a route's
// vehicle profile for matrix lookups (typically route.Tour.Vehicle.Profile).
func NewTimeWindow(priority int, transport core.TransportCosts) *TimeWindow {
	return &TimeWindow{
		priority:  priority,
		transport: transport,
		profile:   func(route *core.RouteContext) string { return route.Tour.Vehicle.Profile },
	}
}

func (t *TimeWindow) Priority() int { return t.priority }

// Resolve finds the earliest feasible (serviceStart, departure) for
// target following prev, waiting into target's earliest still-open
// window if arrival is early. Shared with internal/insertion so the
// evaluator commits the exact values this constraint validated against.
func (t *TimeWindow) Resolve(profile string, prev, target *core.Activity) (start, departure time.Time, ok bool) {
	arrival := prev.Departure.Add(travelDuration(t.transport, profile, prev, target))
	var best *core.TimeWindow
	for i := range target.Place.Windows {
		w := target.Place.Windows[i]
		if arrival.After(w.End) {
			continue
		}
		if best == nil || w.Start.Before(best.Start) {
			best = &target.Place.Windows[i]
		}
	}
	if best == nil {
		return time.Time{}, time.Time{}, false
	}
	start = arrival
	if start.Before(best.Start) {
		start = best.Start
	}
	departure = start.Add(time.Duration(target.Place.Duration * float64(time.Second)))
	return start, departure, true
}

func travelDuration(transport core.TransportCosts, profile string, prev, target *core.Activity) time.Duration {
	secs := transport.Duration(profile, prev.Place.Location, target.Place.Location, prev.Departure)
	return time.Duration(secs * float64(time.Second))
}

// HardActivity rejects a leg when no window of the target place can be
// reached in time, or when the insertion would push the next activity
// past every one of its own windows. Both failures are non-stopping: a
// different leg further along the route may still work.
func (t *TimeWindow) HardActivity(route *core.RouteContext, actx core.ActivityContext) *core.Violation {
	if actx.Target.IsSynthetic() {
		return nil
	}
	profile := t.profile(route)
	_, departure, ok := t.Resolve(profile, actx.Prev, actx.Target)
	if !ok {
		return core.NewViolation(core.CodeTimeWindow, false)
	}
	if actx.Next == nil || actx.Next.IsSynthetic() && len(actx.Next.Place.Windows) == 0 {
		return nil
	}
	nextArrival := departure.Add(travelDuration(t.transport, profile, actx.Target, actx.Next))
	if !fitsAnyWindow(nextArrival, actx.Next.Place.Windows) {
		return core.NewViolation(core.CodeTimeWindow, false)
	}
	return nil
}

func fitsAnyWindow(t time.Time, windows []core.TimeWindow) bool {
	if len(windows) == 0 {
		return true
	}
	for _, w := range windows {
		if !t.After(w.End) {
			return true
		}
	}
	return false
}
