package ruin

import "github.com/elektrokombinacija/vrpevo/internal/core"

// Operator is one ruin variant (spec.md §4.4).
type Operator interface {
	Run(ctx *core.InsertionContext)
}

// selectSeedJob uniformly picks a route, then scans from a random
// activity index cyclically until a job-bearing activity is found,
// cycling routes if none has one (spec.md §4.4: "Deterministic on equal
// RNG seeds").
func selectSeedJob(ctx *core.InsertionContext) (*core.RouteContext, core.Job, bool) {
	routes := ctx.Solution.Routes
	if len(routes) == 0 {
		return nil, core.Job{}, false
	}
	start := ctx.Random.UniformInt(0, len(routes)-1)
	for i := 0; i < len(routes); i++ {
		route := routes[(start+i)%len(routes)]
		if job, ok := selectRandomJobInRoute(ctx.Random, route); ok {
			return route, job, true
		}
	}
	return nil, core.Job{}, false
}

func selectRandomJobInRoute(random core.Random, route *core.RouteContext) (core.Job, bool) {
	n := len(route.Tour.Activities)
	if n == 0 {
		return core.Job{}, false
	}
	start := random.UniformInt(0, n-1)
	for i := 0; i < n; i++ {
		a := route.Tour.Activities[(start+i)%n]
		if a.Job != nil {
			return *a.Job, true
		}
	}
	return core.Job{}, false
}

// removeJob removes every activity of job from whichever route carries
// it, re-accepts that route's derived state, and marks job required.
func removeJob(ctx *core.InsertionContext, job core.Job) {
	for _, r := range ctx.Solution.Routes {
		before := r.Tour.ActivityCount()
		r.Tour.Remove(job.ID())
		if r.Tour.ActivityCount() != before {
			ctx.Problem.Constraint.AcceptRouteState(r)
		}
	}
	ctx.Solution.MarkRequired(job)
}

// pruneEmptyRoutes drops routes left with no real activities so the next
// recreate pass treats their vehicle/shift as available again rather
// than stacking a second route onto the same slot.
func pruneEmptyRoutes(ctx *core.InsertionContext) {
	kept := ctx.Solution.Routes[:0:0]
	for _, r := range ctx.Solution.Routes {
		if r.Tour.HasJobs() {
			kept = append(kept, r)
		}
	}
	ctx.Solution.Routes = kept
}

func jobLocation(job core.Job) core.Location {
	if job.Kind == core.KindSingle {
		return job.Single.Task.Places[0].Location
	}
	return job.Multi.Tasks[0].Places[0].Location
}

func referenceProfile(ctx *core.InsertionContext) string {
	if len(ctx.Solution.Routes) > 0 {
		return ctx.Solution.Routes[0].Tour.Vehicle.Profile
	}
	if len(ctx.Problem.Fleet.Vehicles) > 0 {
		return ctx.Problem.Fleet.Vehicles[0].Profile
	}
	return ""
}

func shuffle(random core.Random, ids []core.JobID) {
	for i := len(ids) - 1; i > 0; i-- {
		j := random.UniformInt(0, i)
		ids[i], ids[j] = ids[j], ids[i]
	}
}
