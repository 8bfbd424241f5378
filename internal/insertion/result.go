package insertion

import "github.com/elektrokombinacija/vrpevo/internal/core"

// Placement is one resolved activity and the leg index it must be
// spliced in after. A Multi job's placements are ordered and must be
// applied in order — each index is into the route as it stands once the
// placements ahead of it in the slice have been applied.
type Placement struct {
	Activity *core.Activity
	Index    int
}

// Result is the outcome of evaluating one job against one position
// policy across one or more routes (spec.md §4.2: "Success{cost, job,
// activities, route_ref} | Failure{code, job}").
type Result struct {
	Success    bool
	Cost       float64
	Job        core.Job
	Activities []Placement
	Route      *core.RouteContext
	Code       core.Code
}

// Succeed builds a successful Result.
func Succeed(cost float64, job core.Job, activities []Placement, route *core.RouteContext) Result {
	return Result{Success: true, Cost: cost, Job: job, Activities: activities, Route: route}
}

// Fail builds a failed Result carrying the most-advanced violation code
// encountered.
func Fail(code core.Code, job core.Job) Result {
	return Result{Success: false, Code: code, Job: job}
}
