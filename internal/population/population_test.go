package population

import (
	"testing"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/constraint"
	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/stretchr/testify/require"
)

type zeroCost struct{}

func (zeroCost) Cost(*core.Vehicle, core.Place, time.Time) float64 { return 0 }

type fixedRandom struct{}

func (fixedRandom) UniformReal(min, max float64) float64 { return min }
func (fixedRandom) UniformInt(min, max int) int          { return min }
func (fixedRandom) Weighted(weights []float64) int       { return 0 }
func (fixedRandom) Clone() core.Random                   { return fixedRandom{} }

func sampleProblem(t *testing.T) *core.Problem {
	t.Helper()
	matrix := core.NewMatrix()
	matrix.SetSpeed("car", 1.0)
	window := []core.TimeWindow{{Start: time.Unix(0, 0), End: time.Unix(0, 0).Add(24 * time.Hour)}}
	start := core.Place{Location: core.Location{Index: 0}, Windows: window}
	vehicle := &core.Vehicle{ID: "v1", Profile: "car", Capacity: core.Demand{10}, Shifts: []core.Shift{{Start: start}}}
	fleet := &core.Fleet{Vehicles: []*core.Vehicle{vehicle}}

	var jobs []core.Job
	for i := 1; i <= 2; i++ {
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

func emptyContext(problem *core.Problem) *core.InsertionContext {
	return core.NewInsertionContext(problem, fixedRandom{})
}

func TestAddAcceptsUnderCapacity(t *testing.T) {
	problem := sampleProblem(t)
	pop := New(4, problem)
	accepted := pop.Add(emptyContext(problem))
	require.True(t, accepted)
	require.Equal(t, 1, pop.Len())
}

func TestAddPrunesBackToCapacity(t *testing.T) {
	problem := sampleProblem(t)
	pop := New(2, problem)
	for i := 0; i < 5; i++ {
		pop.Add(emptyContext(problem))
	}
	require.LessOrEqual(t, pop.Len(), 2)
}

func TestSelectReturnsEveryHandle(t *testing.T) {
	problem := sampleProblem(t)
	pop := New(4, problem)
	pop.AddAll([]*core.InsertionContext{emptyContext(problem), emptyContext(problem)})
	require.Len(t, pop.Select(), 2)
}

func TestAddAllSkipsNil(t *testing.T) {
	problem := sampleProblem(t)
	pop := New(4, problem)
	accepted := pop.AddAll([]*core.InsertionContext{nil, emptyContext(problem), nil})
	require.Equal(t, 1, accepted)
	require.Equal(t, 1, pop.Len())
}

func TestRankedOrdersFrontsThenCrowding(t *testing.T) {
	problem := sampleProblem(t)
	pop := New(4, problem)
	pop.AddAll([]*core.InsertionContext{emptyContext(problem), emptyContext(problem), emptyContext(problem)})
	ranked := pop.Ranked()
	require.Len(t, ranked, 3)
	for i := 1; i < len(ranked); i++ {
		require.LessOrEqual(t, ranked[i-1].Rank, ranked[i].Rank)
	}
}

func TestSelectionPhaseProgression(t *testing.T) {
	problem := sampleProblem(t)
	pop := New(2, problem)
	require.Equal(t, PhaseInitial, pop.SelectionPhase())

	pop.AddAll([]*core.InsertionContext{emptyContext(problem), emptyContext(problem)})
	require.Equal(t, PhaseExploration, pop.SelectionPhase())

	for i := 0; i < explorationGenerations+1; i++ {
		pop.Add(emptyContext(problem))
	}
	require.Equal(t, PhaseExploitation, pop.SelectionPhase())
}

func TestBestCostOfEmptyPopulationIsInfinite(t *testing.T) {
	problem := sampleProblem(t)
	pop := New(2, problem)
	require.True(t, pop.BestCost() > 1e300)
}
