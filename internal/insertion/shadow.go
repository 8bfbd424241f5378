package insertion

import "github.com/elektrokombinacija/vrpevo/internal/core"

// shadow is the copy-on-write route wrapper a Multi-job permutation scan
// mutates (spec.md §4.2.2). It starts out aliasing the original route;
// the first insert deep-copies, and every later permutation attempt
// reuses that one copy, restoring it to a clean state in between rather
// than re-cloning.
type shadow struct {
	original *core.RouteContext
	current  *core.RouteContext
	mutated  bool
}

func newShadow(route *core.RouteContext) *shadow {
	return &shadow{original: route, current: route}
}

// route returns the route permutation attempts should read and write.
func (s *shadow) route() *core.RouteContext { return s.current }

// insert splices activity into the shadow at legIndex, deep-copying on
// first write, and lets the pipeline recompute derived route state.
func (s *shadow) insert(pipeline core.ConstraintPipeline, activity *core.Activity, legIndex int) {
	if !s.mutated {
		s.current = s.original.DeepCopy()
		s.mutated = true
	}
	s.current.Tour.InsertAt(activity, legIndex)
	pipeline.AcceptRouteState(s.current)
}

// restore removes every activity belonging to job from the shadow and
// re-accepts state, readying it for the next permutation. A no-op if the
// shadow was never mutated (spec.md §4.2.2 "clean invariant").
func (s *shadow) restore(pipeline core.ConstraintPipeline, job core.JobID) {
	if !s.mutated {
		return
	}
	s.current.Tour.Remove(job)
	pipeline.AcceptRouteState(s.current)
}
