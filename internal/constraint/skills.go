package constraint

import "github.com/elektrokombinacija/vrpevo/internal/core"

// Skills rejects a job for any vehicle lacking every skill its tasks
// require.
type Skills struct {
	priority int
}

// NewSkills builds a Skills module at the given pipeline priority.
func NewSkills(priority int) *Skills {
	return &Skills{priority: priority}
}

func (s *Skills) Priority() int { return s.priority }

// HardRoute stops the route entirely: a vehicle's skill set cannot
// change mid-route, so a skill mismatch is final for every leg.
func (s *Skills) HardRoute(_ *core.SolutionContext, route *core.RouteContext, job core.Job) *core.Violation {
	vehicle := route.Tour.Vehicle
	for _, task := range taskSkills(job) {
		if !vehicle.HasSkills(task) {
			return core.NewViolation(core.CodeSkill, true)
		}
	}
	return nil
}

func taskSkills(job core.Job) [][]string {
	if job.Kind == core.KindSingle {
		return [][]string{job.Single.Task.Skills}
	}
	out := make([][]string, len(job.Multi.Tasks))
	for i, t := range job.Multi.Tasks {
		out[i] = t.Skills
	}
	return out
}
