package recreate

import (
	"testing"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/constraint"
	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/stretchr/testify/require"
)

type fixedRandom struct{ seq []float64 }

func (r *fixedRandom) UniformReal(min, max float64) float64 {
	if len(r.seq) == 0 {
		return min
	}
	v := r.seq[0]
	r.seq = r.seq[1:]
	return min + v*(max-min)
}
func (r *fixedRandom) UniformInt(min, max int) int { return min }
func (r *fixedRandom) Weighted(weights []float64) int {
	best := 0
	for i, w := range weights {
		if w > weights[best] {
			best = i
		}
	}
	return best
}
func (r *fixedRandom) Clone() core.Random { return &fixedRandom{seq: append([]float64(nil), r.seq...)} }

func twoJobProblem() (*core.Problem, *core.Vehicle) {
	matrix := core.NewMatrix()
	matrix.SetSpeed("car", 1.0)
	matrix.AddEdge("car", 0, 1, 10)
	matrix.AddEdge("car", 0, 2, 20)
	matrix.AddEdge("car", 1, 2, 10)

	farFuture := time.Unix(0, 0).Add(24 * time.Hour)
	window := []core.TimeWindow{{Start: time.Unix(0, 0), End: farFuture}}
	start := core.Place{Location: core.Location{Index: 0}, Windows: window}
	vehicle := &core.Vehicle{ID: "v1", Profile: "car", Capacity: core.Demand{10}, Shifts: []core.Shift{{Start: start}}, CostPerUnit: 1}
	fleet := &core.Fleet{Vehicles: []*core.Vehicle{vehicle}}

	job1 := core.NewSingleJob(&core.Single{ID: "j1", Task: core.Task{
		Places: []core.Place{{Location: core.Location{Index: 1}, Duration: 5, Windows: window}},
		Demand: core.Demand{1},
	}})
	job2 := core.NewSingleJob(&core.Single{ID: "j2", Task: core.Task{
		Places: []core.Place{{Location: core.Location{Index: 2}, Duration: 5, Windows: window}},
		Demand: core.Demand{1},
	}})

	problem := core.NewProblem([]core.Job{job1, job2}, fleet, matrix, noopActivityCost{})
	problem.SetConstraint(constraint.BuildDefault(matrix, nil))
	return problem, vehicle
}

type noopActivityCost struct{}

func (noopActivityCost) Cost(*core.Vehicle, core.Place, time.Time) float64 { return 0 }

func TestCheapestInsertsAllJobs(t *testing.T) {
	problem, _ := twoJobProblem()
	ctx := core.NewInsertionContext(problem, &fixedRandom{})

	Cheapest{}.Run(ctx)

	require.Empty(t, ctx.Solution.Required)
	require.Empty(t, ctx.Solution.Unassigned)
	require.True(t, ctx.CheckPartition())
}

func TestRegretInsertsAllJobs(t *testing.T) {
	problem, _ := twoJobProblem()
	ctx := core.NewInsertionContext(problem, &fixedRandom{})

	NewRegret(2).Run(ctx)

	require.Empty(t, ctx.Solution.Required)
	require.True(t, ctx.CheckPartition())
}

func TestNearestNeighborInsertsAllJobs(t *testing.T) {
	problem, _ := twoJobProblem()
	ctx := core.NewInsertionContext(problem, &fixedRandom{})

	NearestNeighbor{}.Run(ctx)

	require.Empty(t, ctx.Solution.Required)
	require.True(t, ctx.CheckPartition())
}

func TestCompositeSelectsHighestWeight(t *testing.T) {
	problem, _ := twoJobProblem()
	ctx := core.NewInsertionContext(problem, &fixedRandom{})

	composite := NewComposite().Add(Cheapest{}, 100).Add(NewBlinks(0.5), 1)
	composite.Run(ctx)

	require.Empty(t, ctx.Solution.Required)
	// Cheapest places j1 (cost 20) before j2 (cost 40), then puts j2 on the
	// first of two equal-cost legs, ahead of j1; Blinks would take j2 first
	// and end with j1 ahead.
	require.Equal(t, core.JobID("j2"), ctx.Solution.Routes[0].Tour.Jobs()[0].ID())
}
