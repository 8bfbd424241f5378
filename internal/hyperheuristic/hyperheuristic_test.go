package hyperheuristic

import (
	"testing"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/constraint"
	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/elektrokombinacija/vrpevo/internal/recreate"
	"github.com/elektrokombinacija/vrpevo/internal/ruin"
	"github.com/stretchr/testify/require"
)

type constRandom struct{ pick int }

func (r *constRandom) UniformReal(min, max float64) float64 { return min }
func (r *constRandom) UniformInt(min, max int) int          { return min }
func (r *constRandom) Weighted(weights []float64) int {
	if r.pick >= len(weights) {
		return len(weights) - 1
	}
	return r.pick
}
func (r *constRandom) Clone() core.Random { return &constRandom{pick: r.pick} }

type zeroCost struct{}

func (zeroCost) Cost(*core.Vehicle, core.Place, time.Time) float64 { return 0 }

func sampleContext(t *testing.T) *core.InsertionContext {
	t.Helper()
	matrix := core.NewMatrix()
	matrix.SetSpeed("car", 1.0)
	farFuture := time.Unix(0, 0).Add(24 * time.Hour)
	window := []core.TimeWindow{{Start: time.Unix(0, 0), End: farFuture}}
	start := core.Place{Location: core.Location{Index: 0}, Windows: window}
	vehicle := &core.Vehicle{ID: "v1", Profile: "car", Capacity: core.Demand{10}, Shifts: []core.Shift{{Start: start}}}
	fleet := &core.Fleet{Vehicles: []*core.Vehicle{vehicle}}

	var jobs []core.Job
	for i := 1; i <= 3; i++ {
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
	ctx := core.NewInsertionContext(problem, &constRandom{})
	recreate.Cheapest{}.Run(ctx)
	require.Empty(t, ctx.Solution.Required)
	return ctx
}

func entries() []Entry {
	limit := ruin.JobRemovalLimit{Min: 1, Max: 1, Threshold: 1.0}
	return []Entry{
		{Ruin: ruin.NewComposite(ruin.Group{Weight: 1, Operators: []ruin.WeightedOperator{{NewTestOp(limit), 1.0}}}), Recreate: recreate.Cheapest{}, Weight: 1},
	}
}

// NewTestOp aliases RandomJob for readability in this file's table.
func NewTestOp(limit ruin.JobRemovalLimit) *ruin.RandomJob {
	return ruin.NewRandomJob(limit)
}

func TestStaticSelectiveSearchProducesOffspring(t *testing.T) {
	ctx := sampleContext(t)
	ctx.Random = &constRandom{}
	static := NewStaticSelective(entries())

	offspring := static.Search([]*core.InsertionContext{ctx})
	require.Len(t, offspring, 1)
	require.True(t, offspring[0].CheckPartition())
}

func TestDynamicSelectiveRecordsReward(t *testing.T) {
	ctx := sampleContext(t)
	ctx.Random = &constRandom{}
	dynamic := NewDynamicSelective(ctx.Problem, entries(), 5)

	offspring := dynamic.Search([]*core.InsertionContext{ctx})
	require.Len(t, offspring, 1)
	require.Len(t, dynamic.windows[0].deltas, 1)
}

func TestMultiSelectiveRoutesToDynamic(t *testing.T) {
	ctx := sampleContext(t)
	ctx.Random = &constRandom{}
	static := NewStaticSelective(entries())
	dynamic := NewDynamicSelective(ctx.Problem, entries(), 5)
	multi := NewMultiSelective(static, dynamic, 1.0, &constRandom{})

	offspring := multi.Search([]*core.InsertionContext{ctx})
	require.Len(t, offspring, 1)
	require.Len(t, dynamic.windows[0].deltas, 1)
}
