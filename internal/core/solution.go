package core

// SolutionContext is the mutable working solution (spec.md §3): routes,
// and the four job buckets that, together with jobs assigned in routes,
// partition the problem's job set (invariant 1).
type SolutionContext struct {
	Routes     []*RouteContext
	Required   []Job
	Unassigned map[JobID]Code
	Ignored    []Job
	Locked     map[JobID]bool
}

// NewSolutionContext creates an empty solution with every job required.
func NewSolutionContext(jobs []Job) *SolutionContext {
	required := make([]Job, len(jobs))
	copy(required, jobs)
	return &SolutionContext{
		Required:   required,
		Unassigned: make(map[JobID]Code),
		Locked:     make(map[JobID]bool),
	}
}

// RouteByID finds a route by identifier, or nil.
func (s *SolutionContext) RouteByID(id RouteID) *RouteContext {
	for _, r := range s.Routes {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// AssignedJobIDs returns the set of job IDs currently placed in a tour.
func (s *SolutionContext) AssignedJobIDs() map[JobID]bool {
	out := make(map[JobID]bool)
	for _, r := range s.Routes {
		for _, j := range r.Tour.Jobs() {
			out[j.ID()] = true
		}
	}
	return out
}

// MarkRequired moves a job (back) into the required bucket, removing it
// from unassigned if present. Ruin operators use this after physically
// pulling a job out of a tour (spec.md §4.4: "removes jobs, marks them
// required").
func (s *SolutionContext) MarkRequired(job Job) {
	delete(s.Unassigned, job.ID())
	for _, r := range s.Required {
		if r.ID() == job.ID() {
			return
		}
	}
	s.Required = append(s.Required, job)
}

// MarkUnassigned removes a job from required and records why it could
// not be placed.
func (s *SolutionContext) MarkUnassigned(job Job, code Code) {
	s.removeRequired(job.ID())
	s.Unassigned[job.ID()] = code
}

// RemoveRequired drops a job from the required bucket without assigning a
// reason code (used once it has been successfully inserted).
func (s *SolutionContext) RemoveRequired(id JobID) {
	s.removeRequired(id)
}

func (s *SolutionContext) removeRequired(id JobID) {
	out := s.Required[:0:0]
	for _, j := range s.Required {
		if j.ID() != id {
			out = append(out, j)
		}
	}
	s.Required = out
}

// Clone deep-copies every route, and shallow-copies the job buckets
// (Job values are themselves read-only problem data, so a slice/map copy
// is sufficient isolation).
func (s *SolutionContext) Clone() *SolutionContext {
	clone := &SolutionContext{
		Routes:     make([]*RouteContext, len(s.Routes)),
		Required:   append([]Job(nil), s.Required...),
		Unassigned: make(map[JobID]Code, len(s.Unassigned)),
		Ignored:    append([]Job(nil), s.Ignored...),
		Locked:     make(map[JobID]bool, len(s.Locked)),
	}
	for i, r := range s.Routes {
		clone.Routes[i] = r.DeepCopy()
	}
	for k, v := range s.Unassigned {
		clone.Unassigned[k] = v
	}
	for k, v := range s.Locked {
		clone.Locked[k] = v
	}
	return clone
}

// InsertionContext is the full mutable state threaded through the
// constraint pipeline, the insertion evaluator, and every ruin/recreate
// operator: the shared, read-only Problem plus one SolutionContext plus a
// per-worker Random handle (spec.md §5).
type InsertionContext struct {
	Problem  *Problem
	Solution *SolutionContext
	Random   Random
}

// NewInsertionContext creates a fresh, all-required InsertionContext for
// a problem (the starting point of the initial-solution operator,
// spec.md §4.8 step 1).
func NewInsertionContext(problem *Problem, random Random) *InsertionContext {
	return &InsertionContext{Problem: problem, Solution: NewSolutionContext(problem.Jobs), Random: random}
}

// Clone deep-copies the solution state and hands the clone a fresh,
// independently-seeded Random (spec.md §5: "Each worker operates on its
// own deep-copied InsertionContext; no mutable sharing of solution
// state").
func (ctx *InsertionContext) Clone() *InsertionContext {
	return &InsertionContext{Problem: ctx.Problem, Solution: ctx.Solution.Clone(), Random: ctx.Random.Clone()}
}

// CheckPartition verifies the job-set partition invariant (spec.md §8):
// every job is in exactly one of {assigned, required, unassigned,
// ignored, locked}. Used by tests, not by the hot path.
func (ctx *InsertionContext) CheckPartition() bool {
	assigned := ctx.Solution.AssignedJobIDs()
	seen := make(map[JobID]int, len(ctx.Problem.Jobs))
	for id := range assigned {
		seen[id]++
	}
	for _, j := range ctx.Solution.Required {
		seen[j.ID()]++
	}
	for id := range ctx.Solution.Unassigned {
		seen[id]++
	}
	for _, j := range ctx.Solution.Ignored {
		seen[j.ID()]++
	}
	for id, locked := range ctx.Solution.Locked {
		if locked {
			seen[id]++
		}
	}
	if len(seen) != len(ctx.Problem.Jobs) {
		return false
	}
	for _, count := range seen {
		if count != 1 {
			return false
		}
	}
	return true
}
