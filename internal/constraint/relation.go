package constraint

import "github.com/elektrokombinacija/vrpevo/internal/core"

// Relation enforces user-declared job orderings/lockings (spec.md §6):
// Strict jobs must be back-to-back in declared order, Sequence jobs must
// keep declared order but allow interleaving, Flexible jobs only pin a
// vehicle/shift with no ordering among themselves.
type Relation struct {
	priority  int
	byJob     map[core.JobID]*core.Relation
	relations []core.Relation
}

// NewRelation indexes relations by the jobs they name.
func NewRelation(priority int, relations []core.Relation) *Relation {
	byJob := make(map[core.JobID]*core.Relation)
	for i := range relations {
		r := &relations[i]
		for _, id := range r.JobIDs {
			byJob[id] = r
		}
	}
	return &Relation{priority: priority, byJob: byJob, relations: relations}
}

func (r *Relation) Priority() int { return r.priority }

// HardRoute pins a job to its relation's declared vehicle/shift, if any.
func (r *Relation) HardRoute(_ *core.SolutionContext, route *core.RouteContext, job core.Job) *core.Violation {
	rel, ok := r.byJob[job.ID()]
	if !ok || rel.VehicleID == "" {
		return nil
	}
	if route.Tour.Vehicle.ID != rel.VehicleID || route.Tour.ShiftIndex != rel.ShiftIndex {
		return core.NewViolation(core.CodeRelation, true)
	}
	return nil
}

// HardActivity enforces ordering for Strict and Sequence relations
// against jobs of the same relation already present in the tour.
func (r *Relation) HardActivity(route *core.RouteContext, actx core.ActivityContext) *core.Violation {
	if actx.Target.IsSynthetic() || actx.Target.Job == nil {
		return nil
	}
	rel, ok := r.byJob[actx.Target.Job.ID()]
	if !ok || rel.Type == core.RelationFlexible {
		return nil
	}
	pos := indexOf(rel.JobIDs, actx.Target.Job.ID())
	if predID, has := precedingPlaced(rel.JobIDs, pos); has {
		predAct := findActivity(route, predID)
		if predAct != nil {
			if rel.Type == core.RelationStrict && predAct != actx.Prev {
				return core.NewViolation(core.CodeRelation, false)
			}
			if rel.Type == core.RelationSequence && activityIndex(route, predAct) > actx.Index {
				return core.NewViolation(core.CodeRelation, false)
			}
		}
	}
	if succID, has := followingPlaced(rel.JobIDs, pos); has {
		succAct := findActivity(route, succID)
		if succAct != nil {
			if rel.Type == core.RelationStrict && succAct != actx.Next {
				return core.NewViolation(core.CodeRelation, false)
			}
			if rel.Type == core.RelationSequence && activityIndex(route, succAct) <= actx.Index {
				return core.NewViolation(core.CodeRelation, false)
			}
		}
	}
	return nil
}

func indexOf(ids []core.JobID, id core.JobID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func precedingPlaced(ids []core.JobID, pos int) (core.JobID, bool) {
	if pos <= 0 {
		return "", false
	}
	return ids[pos-1], true
}

func followingPlaced(ids []core.JobID, pos int) (core.JobID, bool) {
	if pos < 0 || pos >= len(ids)-1 {
		return "", false
	}
	return ids[pos+1], true
}

func findActivity(route *core.RouteContext, id core.JobID) *core.Activity {
	for _, a := range route.Tour.Activities {
		if a.Job != nil && a.Job.ID() == id {
			return a
		}
	}
	return nil
}

func activityIndex(route *core.RouteContext, target *core.Activity) int {
	for i, a := range route.Tour.Activities {
		if a == target {
			return i
		}
	}
	return -1
}
