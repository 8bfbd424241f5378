package core

// ConstraintPipeline is the capability-bounded constraint evaluator a
// Problem is bound to (spec.md §4.1). It is declared here as an interface
// to avoid a dependency cycle: internal/constraint implements it against
// the types in this package.
type ConstraintPipeline interface {
	EvaluateHardRoute(solution *SolutionContext, route *RouteContext, job Job) *Violation
	EvaluateSoftRoute(solution *SolutionContext, route *RouteContext, job Job) float64
	EvaluateHardActivity(route *RouteContext, actx ActivityContext) *Violation
	EvaluateSoftActivity(route *RouteContext, actx ActivityContext) float64
	AcceptRouteState(route *RouteContext)
	AcceptSolutionState(solution *SolutionContext)
}

// Problem is the read-only input to a solve: jobs, fleet, and the
// constraint pipeline bound to them. It is shared immutably by every
// route and worker (spec.md §3 Ownership) — reference-counted in spirit
// by simply never being mutated after NewProblem returns.
type Problem struct {
	Jobs       []Job
	Fleet      *Fleet
	Transport  TransportCosts
	Activity   ActivityCosts
	Constraint ConstraintPipeline
	Relations  []Relation
}

// NewProblem builds a Problem from its parts. The constraint pipeline is
// attached after construction via SetConstraint; internal/constraint's
// BuildDefault builds it from the transport costs and relations, not
// from the Problem itself.
func NewProblem(jobs []Job, fleet *Fleet, transport TransportCosts, activity ActivityCosts) *Problem {
	return &Problem{Jobs: jobs, Fleet: fleet, Transport: transport, Activity: activity}
}

// SetConstraint attaches the constraint pipeline once built.
func (p *Problem) SetConstraint(c ConstraintPipeline) {
	p.Constraint = c
}

// JobByID finds a job by identifier, or the zero Job and false.
func (p *Problem) JobByID(id JobID) (Job, bool) {
	for _, j := range p.Jobs {
		if j.ID() == id {
			return j, true
		}
	}
	return Job{}, false
}

// Size returns the total number of jobs in the problem.
func (p *Problem) Size() int {
	return len(p.Jobs)
}
