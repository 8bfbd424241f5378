package evolution

import (
	"testing"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/constraint"
	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/stretchr/testify/require"
)

type zeroCost struct{}

func (zeroCost) Cost(*core.Vehicle, core.Place, time.Time) float64 { return 0 }

func lineProblem(t *testing.T, jobCount int) *core.Problem {
	t.Helper()
	matrix := core.NewMatrix()
	matrix.SetSpeed("car", 1.0)
	window := []core.TimeWindow{{Start: time.Unix(0, 0), End: time.Unix(0, 0).Add(24 * time.Hour)}}
	start := core.Place{Location: core.Location{Index: 0}, Windows: window}
	vehicle := &core.Vehicle{ID: "v1", Profile: "car", Capacity: core.Demand{100}, Shifts: []core.Shift{{Start: start}}}
	fleet := &core.Fleet{Vehicles: []*core.Vehicle{vehicle}}

	var jobs []core.Job
	for i := 1; i <= jobCount; i++ {
		matrix.AddEdge("car", 0, core.LocationID(i), float64(i))
		jobs = append(jobs, core.NewSingleJob(&core.Single{
			ID: core.JobID(rune('a' + i)),
			Task: core.Task{
				Places: []core.Place{{Location: core.Location{Index: core.LocationID(i)}, Duration: 1, Windows: window}},
				Demand: core.Demand{1},
			},
		}))
	}
	problem := core.NewProblem(jobs, fleet, matrix, zeroCost{})
	problem.SetConstraint(constraint.BuildDefault(matrix, nil))
	return problem
}

func TestBuilderRejectsNilProblem(t *testing.T) {
	_, err := NewBuilder(nil).Build()
	require.Error(t, err)
}

func TestBuilderRejectsNoTermination(t *testing.T) {
	problem := lineProblem(t, 1)
	_, err := NewBuilder(problem).WithMaxGenerations(0).WithMaxTime(0).Build()
	require.Error(t, err)
}

func TestDriverRunCompletesWithinMaxGenerations(t *testing.T) {
	problem := lineProblem(t, 5)
	driver, err := NewBuilder(problem).
		WithMaxGenerations(5).
		WithMaxTime(2 * time.Second).
		WithPopulationCapacity(2).
		WithInitialMaxSize(2).
		WithSeed(7).
		Build()
	require.NoError(t, err)

	result := driver.Run()
	require.NotEmpty(t, result.Solutions)
	require.GreaterOrEqual(t, result.Statistics.Generation, 0)
	require.LessOrEqual(t, result.Statistics.Generation, 5)

	for _, sol := range result.Solutions {
		require.True(t, sol.CheckPartition())
	}
}

func TestDriverRunHonorsMaxTime(t *testing.T) {
	problem := lineProblem(t, 3)
	driver, err := NewBuilder(problem).
		WithMaxGenerations(1_000_000_000).
		WithMaxTime(50 * time.Millisecond).
		WithPopulationCapacity(2).
		WithInitialMaxSize(1).
		Build()
	require.NoError(t, err)

	start := time.Now()
	result := driver.Run()
	elapsed := time.Since(start)

	require.Less(t, elapsed, 2*time.Second)
	require.NotEmpty(t, result.Solutions)
}

func TestDriverHandlesEmptyFleet(t *testing.T) {
	problem := lineProblem(t, 2)
	problem.Fleet = &core.Fleet{}
	driver, err := NewBuilder(problem).
		WithMaxGenerations(2).
		WithMaxTime(time.Second).
		WithPopulationCapacity(1).
		WithInitialMaxSize(1).
		Build()
	require.NoError(t, err)

	result := driver.Run()
	require.NotEmpty(t, result.Solutions)
	for _, sol := range result.Solutions {
		require.Len(t, sol.Solution.Unassigned, 2)
	}
}
