package insertion

import (
	"sort"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/core"
)

// legsFor resolves the legs a position policy authorizes scanning,
// starting no earlier than minIndex (spec.md §4.2.2's "cheapest legal leg
// >= next_index" for Multi sub-tasks; Single jobs always pass minIndex 0).
func legsFor(route *core.RouteContext, position Position, minIndex int) []core.Leg {
	switch position.Kind {
	case KindConcrete:
		if position.Index < minIndex {
			return nil
		}
		leg, ok := route.Tour.LegAt(position.Index)
		if !ok {
			return nil
		}
		return []core.Leg{leg}
	case KindLast:
		leg, ok := route.Tour.LegAt(len(route.Tour.Activities) - 2)
		if !ok || leg.Index < minIndex {
			return nil
		}
		return []core.Leg{leg}
	default:
		return route.Tour.Legs(minIndex)
	}
}

// taskScanResult is the outcome of scanning every leg/place/window
// combination for a single task.
type taskScanResult struct {
	success  bool
	cost     float64
	activity *core.Activity
	legIndex int
	code     core.Code
	stopped  bool
}

// scanTask finds the cheapest legal (leg, place, window) triple for one
// task of job, strictly below bestKnown (spec.md §4.2.1 steps 3-4).
func scanTask(pipeline core.ConstraintPipeline, transport core.TransportCosts, route *core.RouteContext, job core.Job, taskIndex int, task core.Task, legs []core.Leg, bestKnown float64) taskScanResult {
	best := taskScanResult{cost: bestKnown, code: core.CodeUnknown}
	profile := route.Tour.Vehicle.Profile

legsLoop:
	for _, leg := range legs {
		for pi := range task.Places {
			place := task.Places[pi]
			travel := leg.Prev.Departure.Add(travelDuration(transport, profile, leg.Prev, place))
			for wi := range place.Windows {
				w := place.Windows[wi]
				if travel.After(w.End) {
					continue
				}
				start := travel
				if start.Before(w.Start) {
					start = w.Start
				}
				departure := start.Add(time.Duration(place.Duration * float64(time.Second)))
				activity := &core.Activity{
					Job:       &job,
					TaskIndex: taskIndex,
					Place:     core.Place{Location: place.Location, Duration: place.Duration, Windows: []core.TimeWindow{w}},
					Arrival:   start,
					Departure: departure,
				}
				actx := core.ActivityContext{Index: leg.Index, Prev: leg.Prev, Target: activity, Next: leg.Next}
				if v := pipeline.EvaluateHardActivity(route, actx); v != nil {
					best.code = v.Code
					if v.Stopped {
						best.stopped = true
						break legsLoop
					}
					continue
				}
				cost := pipeline.EvaluateSoftActivity(route, actx)
				if cost < best.cost {
					best.cost = cost
					best.activity = activity
					best.legIndex = leg.Index
					best.success = true
				}
			}
		}
	}
	return best
}

// scanTaskAll collects the cheapest feasible result per leg (rather than
// only the single incumbent), sorted cheapest-first. Used by recreate
// variants that need several ranked alternatives (Regret-k, Gaps) rather
// than just the winner.
func scanTaskAll(pipeline core.ConstraintPipeline, transport core.TransportCosts, route *core.RouteContext, job core.Job, taskIndex int, task core.Task, legs []core.Leg) []taskScanResult {
	perLeg := make(map[int]taskScanResult)
	profile := route.Tour.Vehicle.Profile

	for _, leg := range legs {
		stop := false
		for pi := range task.Places {
			place := task.Places[pi]
			travel := leg.Prev.Departure.Add(travelDuration(transport, profile, leg.Prev, place))
			for wi := range place.Windows {
				w := place.Windows[wi]
				if travel.After(w.End) {
					continue
				}
				start := travel
				if start.Before(w.Start) {
					start = w.Start
				}
				departure := start.Add(time.Duration(place.Duration * float64(time.Second)))
				activity := &core.Activity{
					Job:       &job,
					TaskIndex: taskIndex,
					Place:     core.Place{Location: place.Location, Duration: place.Duration, Windows: []core.TimeWindow{w}},
					Arrival:   start,
					Departure: departure,
				}
				actx := core.ActivityContext{Index: leg.Index, Prev: leg.Prev, Target: activity, Next: leg.Next}
				if v := pipeline.EvaluateHardActivity(route, actx); v != nil {
					if v.Stopped {
						stop = true
					}
					continue
				}
				cost := pipeline.EvaluateSoftActivity(route, actx)
				if existing, ok := perLeg[leg.Index]; !ok || cost < existing.cost {
					perLeg[leg.Index] = taskScanResult{success: true, cost: cost, activity: activity, legIndex: leg.Index}
				}
			}
		}
		if stop {
			break
		}
	}

	out := make([]taskScanResult, 0, len(perLeg))
	for _, leg := range legs {
		if r, ok := perLeg[leg.Index]; ok {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].cost < out[j].cost })
	return out
}

func travelDuration(transport core.TransportCosts, profile string, prev *core.Activity, place core.Place) time.Duration {
	secs := transport.Duration(profile, prev.Place.Location, place.Location, prev.Departure)
	return time.Duration(secs * float64(time.Second))
}
