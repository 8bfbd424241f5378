package ruin

import (
	"testing"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/constraint"
	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/elektrokombinacija/vrpevo/internal/recreate"
	"github.com/stretchr/testify/require"
)

type stepRandom struct {
	ints    []int
	reals   []float64
	weights []int
}

func (r *stepRandom) UniformInt(min, max int) int {
	if len(r.ints) == 0 {
		return min
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
func (r *stepRandom) UniformReal(min, max float64) float64 {
	if len(r.reals) == 0 {
		return min
	}
	v := r.reals[0]
	r.reals = r.reals[1:]
	return min + v*(max-min)
}
func (r *stepRandom) Weighted(weights []float64) int {
	if len(r.weights) == 0 {
		return 0
	}
	v := r.weights[0]
	r.weights = r.weights[1:]
	if v >= len(weights) {
		v = len(weights) - 1
	}
	return v
}
func (r *stepRandom) Clone() core.Random {
	return &stepRandom{ints: append([]int(nil), r.ints...), reals: append([]float64(nil), r.reals...), weights: append([]int(nil), r.weights...)}
}

func seededSolution(t *testing.T, n int) *core.InsertionContext {
	t.Helper()
	matrix := core.NewMatrix()
	matrix.SetSpeed("car", 1.0)
	farFuture := time.Unix(0, 0).Add(24 * time.Hour)
	window := []core.TimeWindow{{Start: time.Unix(0, 0), End: farFuture}}
	start := core.Place{Location: core.Location{Index: 0}, Windows: window}
	vehicle := &core.Vehicle{ID: "v1", Profile: "car", Capacity: core.Demand{100}, Shifts: []core.Shift{{Start: start}}}
	fleet := &core.Fleet{Vehicles: []*core.Vehicle{vehicle}}

	jobs := make([]core.Job, 0, n)
	for i := 0; i < n; i++ {
		loc := core.LocationID(i + 1)
		matrix.AddEdge("car", 0, loc, float64(i+1))
		jobs = append(jobs, core.NewSingleJob(&core.Single{
			ID: core.JobID(string(rune('a' + i))),
			Task: core.Task{
				Places: []core.Place{{Location: core.Location{Index: loc}, Duration: 1, Windows: window}},
				Demand: core.Demand{1},
			},
		}))
	}

	problem := core.NewProblem(jobs, fleet, matrix, noopCost{})
	problem.SetConstraint(constraint.BuildDefault(matrix, nil))
	ctx := core.NewInsertionContext(problem, &stepRandom{})
	recreate.Cheapest{}.Run(ctx)
	require.Empty(t, ctx.Solution.Required)
	return ctx
}

type noopCost struct{}

func (noopCost) Cost(*core.Vehicle, core.Place, time.Time) float64 { return 0 }

func TestRandomJobRemovesWithinLimit(t *testing.T) {
	ctx := seededSolution(t, 10)
	ctx.Random = &stepRandom{ints: []int{3}}
	limit := JobRemovalLimit{Min: 3, Max: 3, Threshold: 1.0}

	NewRandomJob(limit).Run(ctx)

	require.Len(t, ctx.Solution.Required, 3)
	require.True(t, ctx.CheckPartition())
}

func TestRandomRouteEmptiesOneRoute(t *testing.T) {
	ctx := seededSolution(t, 5)
	ctx.Random = &stepRandom{ints: []int{0}}

	RandomRoute{}.Run(ctx)

	require.NotEmpty(t, ctx.Solution.Required)
	require.True(t, ctx.CheckPartition())
}

func TestWorstJobRemovalPicksHighestCost(t *testing.T) {
	ctx := seededSolution(t, 6)
	limit := JobRemovalLimit{Min: 1, Max: 1, Threshold: 1.0}
	ctx.Random = &stepRandom{ints: []int{1}}
	// Seeded at zero cost, the tour is [start, f, e, d, c, b, a, end]; only
	// depot edges exist, so priced at 1 per unit f's detour is 6+0-5 = 1,
	// the highest of all.
	ctx.Solution.Routes[0].Tour.Vehicle.CostPerUnit = 1

	NewWorstJobRemoval(limit).Run(ctx)

	require.Len(t, ctx.Solution.Required, 1)
	require.Equal(t, core.JobID("f"), ctx.Solution.Required[0].ID())
	require.True(t, ctx.CheckPartition())
}

func TestCompositeSelectsGroupAndPrunesEmptyRoutes(t *testing.T) {
	ctx := seededSolution(t, 4)
	ctx.Random = &stepRandom{weights: []int{5}, ints: []int{0}, reals: []float64{0, 0}}

	composite := NewComposite(
		Group{Weight: 1, Operators: []WeightedOperator{}},
		Group{Weight: 1, Operators: []WeightedOperator{{RandomRoute{}, 1.0}}},
	)
	composite.Run(ctx)

	require.Len(t, ctx.Solution.Required, 4)
	require.Empty(t, ctx.Solution.Routes)
	require.True(t, ctx.CheckPartition())
}
