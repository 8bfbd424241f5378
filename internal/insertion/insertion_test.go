package insertion

import (
	"math"
	"testing"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/constraint"
	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/stretchr/testify/require"
)

func testProblem() (*core.Problem, *core.Vehicle) {
	matrix := core.NewMatrix()
	matrix.SetSpeed("car", 1.0)
	matrix.AddEdge("car", 0, 1, 10)
	matrix.AddEdge("car", 1, 2, 10)
	matrix.AddEdge("car", 0, 2, 25)

	farFuture := time.Unix(0, 0).Add(24 * time.Hour)
	start := core.Place{Location: core.Location{Index: 0}, Windows: []core.TimeWindow{{Start: time.Unix(0, 0), End: farFuture}}}
	vehicle := &core.Vehicle{
		ID:          "v1",
		Profile:     "car",
		Capacity:    core.Demand{10},
		Shifts:      []core.Shift{{Start: start}},
		CostPerUnit: 1,
	}
	fleet := &core.Fleet{Vehicles: []*core.Vehicle{vehicle}}

	job := core.NewSingleJob(&core.Single{
		ID: "j1",
		Task: core.Task{
			Places: []core.Place{{
				Location: core.Location{Index: 1},
				Duration: 30,
				Windows:  []core.TimeWindow{{Start: time.Unix(0, 0), End: farFuture}},
			}},
			Demand: core.Demand{1},
		},
	})

	problem := core.NewProblem([]core.Job{job}, fleet, matrix, constantActivityCost{})
	problem.SetConstraint(constraint.BuildDefault(matrix, nil))
	return problem, vehicle
}

type constantActivityCost struct{}

func (constantActivityCost) Cost(*core.Vehicle, core.Place, time.Time) float64 { return 0 }

func TestEvaluateSingleJobSuccess(t *testing.T) {
	problem, vehicle := testProblem()
	route := core.NewRouteContext("r1", core.NewTour(vehicle, 0))
	ctx := core.NewInsertionContext(problem, nil)
	ctx.Solution.Routes = []*core.RouteContext{route}

	result := Evaluate(ctx, problem.Jobs[0], Any(), ctx.Solution.Routes, math.Inf(1))
	require.True(t, result.Success)
	require.Len(t, result.Activities, 1)
	require.Equal(t, 0, result.Activities[0].Index)
}

func TestEvaluateSingleJobFailsOnCapacity(t *testing.T) {
	problem, vehicle := testProblem()
	vehicle.Capacity = core.Demand{0}
	route := core.NewRouteContext("r1", core.NewTour(vehicle, 0))
	ctx := core.NewInsertionContext(problem, nil)

	result := Evaluate(ctx, problem.Jobs[0], Any(), []*core.RouteContext{route}, math.Inf(1))
	require.False(t, result.Success)
	require.Equal(t, core.CodeCapacity, result.Code)
}

func TestEvaluateMultiJobOrdersPickupBeforeDelivery(t *testing.T) {
	matrix := core.NewMatrix()
	matrix.SetSpeed("car", 1.0)
	matrix.AddEdge("car", 0, 1, 10)
	matrix.AddEdge("car", 1, 2, 10)
	farFuture := time.Unix(0, 0).Add(24 * time.Hour)
	start := core.Place{Location: core.Location{Index: 0}, Windows: []core.TimeWindow{{Start: time.Unix(0, 0), End: farFuture}}}
	vehicle := &core.Vehicle{ID: "v1", Profile: "car", Capacity: core.Demand{10}, Shifts: []core.Shift{{Start: start}}}
	fleet := &core.Fleet{Vehicles: []*core.Vehicle{vehicle}}

	pickup := core.Task{
		Places: []core.Place{{Location: core.Location{Index: 1}, Duration: 10, Windows: []core.TimeWindow{{Start: time.Unix(0, 0), End: farFuture}}}},
		Demand: core.Demand{1},
	}
	delivery := core.Task{
		Places: []core.Place{{Location: core.Location{Index: 2}, Duration: 10, Windows: []core.TimeWindow{{Start: time.Unix(0, 0), End: farFuture}}}},
		Demand: core.Demand{-1},
	}
	multi := core.NewMultiJob(&core.Multi{
		ID:           "m1",
		Tasks:        []core.Task{pickup, delivery},
		Permutations: [][]int{{0, 1}},
	})

	problem := core.NewProblem([]core.Job{multi}, fleet, matrix, constantActivityCost{})
	problem.SetConstraint(constraint.BuildDefault(matrix, nil))
	route := core.NewRouteContext("r1", core.NewTour(vehicle, 0))
	ctx := core.NewInsertionContext(problem, nil)

	result := Evaluate(ctx, multi, Any(), []*core.RouteContext{route}, math.Inf(1))
	require.True(t, result.Success)
	require.Len(t, result.Activities, 2)
	require.LessOrEqual(t, result.Activities[0].Index, result.Activities[1].Index)
}
