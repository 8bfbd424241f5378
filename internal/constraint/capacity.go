package constraint

import (
	"fmt"

	"github.com/elektrokombinacija/vrpevo/internal/core"
)

// Capacity enforces the vehicle's demand vector along every leg of a
// route (spec.md §6: "Positive entries are picked up, negative entries
// are delivered"). Running load per activity is cached as per-dimension
// route state so a hard-activity check is an O(dimensions) lookup rather
// than a route rescan.
type Capacity struct {
	priority int
}

// NewCapacity builds a Capacity module at the given pipeline priority.
func NewCapacity(priority int) *Capacity {
	return &Capacity{priority: priority}
}

func (c *Capacity) Priority() int { return c.priority }

func loadKey(dim int) core.StateKey {
	return core.StateKey(fmt.Sprintf("capacity.load.%d", dim))
}

// HardRoute rejects a job outright when even an empty vehicle could not
// carry its peak single-task demand.
func (c *Capacity) HardRoute(_ *core.SolutionContext, route *core.RouteContext, job core.Job) *core.Violation {
	vehicle := route.Tour.Vehicle
	for _, task := range taskDemands(job) {
		if !task.Fits(vehicle.Capacity) {
			return core.NewViolation(core.CodeCapacity, true)
		}
	}
	return nil
}

func taskDemands(job core.Job) []core.Demand {
	if job.Kind == core.KindSingle {
		return []core.Demand{job.Single.Task.Demand}
	}
	out := make([]core.Demand, len(job.Multi.Tasks))
	for i, t := range job.Multi.Tasks {
		out[i] = t.Demand
	}
	return out
}

// HardActivity checks that inserting the target activity's demand at
// this leg keeps every downstream activity's running load within
// capacity: the target's demand shifts the cumulative load of every
// activity after it by the same constant delta, so each of them is
// rechecked against the cached pre-insertion load, not just the
// insertion point itself. Stopped is always false: a capacity overflow
// at one leg says nothing about legs further along the route (load
// changes direction with pickups and deliveries), so scanning continues.
func (c *Capacity) HardActivity(route *core.RouteContext, actx core.ActivityContext) *core.Violation {
	if actx.Target.IsSynthetic() || actx.Target.Job == nil {
		return nil
	}
	demand := taskDemand(actx.Target)
	vehicle := route.Tour.Vehicle
	if !fitsAbs(c.loadAt(route, actx.Prev).Add(demand), vehicle.Capacity) {
		return core.NewViolation(core.CodeCapacity, false)
	}
	for _, a := range route.Tour.Activities[actx.Index+1:] {
		if !fitsAbs(c.loadAt(route, a).Add(demand), vehicle.Capacity) {
			return core.NewViolation(core.CodeCapacity, false)
		}
	}
	return nil
}

func taskDemand(a *core.Activity) core.Demand {
	if a.Job == nil {
		return nil
	}
	if a.Job.Kind == core.KindSingle {
		return a.Job.Single.Task.Demand
	}
	return a.Job.Multi.Tasks[a.TaskIndex].Demand
}

// fitsAbs checks every dimension's magnitude (both over-pickup and
// over-delivery are overflows) against capacity.
func fitsAbs(d, capacity core.Demand) bool {
	for i := range d {
		v := d[i]
		if v < 0 {
			v = -v
		}
		if v > capacity[i] {
			return false
		}
	}
	return true
}

func (c *Capacity) loadAt(route *core.RouteContext, a *core.Activity) core.Demand {
	dims := len(route.Tour.Vehicle.Capacity)
	out := make(core.Demand, dims)
	for d := 0; d < dims; d++ {
		if v, ok := route.State.Activity(a, loadKey(d)); ok {
			out[d] = int(v)
		}
	}
	return out
}

// AcceptRoute recomputes the running load at every real activity.
func (c *Capacity) AcceptRoute(route *core.RouteContext) {
	dims := len(route.Tour.Vehicle.Capacity)
	running := make(core.Demand, dims)
	for _, a := range route.Tour.Activities {
		if !a.IsSynthetic() {
			running = running.Add(taskDemand(a))
		}
		for d := 0; d < dims; d++ {
			route.State.SetActivity(a, loadKey(d), float64(running[d]))
		}
	}
}
