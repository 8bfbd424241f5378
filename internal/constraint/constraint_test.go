package constraint

import (
	"testing"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/stretchr/testify/require"
)

func vehicle(id string, capacity core.Demand) *core.Vehicle {
	start := core.Place{
		Location: core.Location{Index: 0},
		Windows:  []core.TimeWindow{{Start: time.Unix(0, 0), End: time.Unix(100000, 0)}},
	}
	return &core.Vehicle{
		ID:       core.VehicleID(id),
		Profile:  "car",
		Capacity: capacity,
		Shifts:   []core.Shift{{Start: start}},
	}
}

func singleJob(id string, demand core.Demand, skills []string) core.Job {
	return core.NewSingleJob(&core.Single{
		ID: core.JobID(id),
		Task: core.Task{
			Places: []core.Place{{
				Location: core.Location{Index: 1},
				Duration: 60,
				Windows:  []core.TimeWindow{{Start: time.Unix(0, 0), End: time.Unix(100000, 0)}},
			}},
			Demand: demand,
			Skills: skills,
		},
	})
}

func TestCapacityHardRouteRejectsOversizedDemand(t *testing.T) {
	v := vehicle("v1", core.Demand{1})
	route := core.NewRouteContext("r1", core.NewTour(v, 0))
	job := singleJob("j1", core.Demand{2}, nil)

	cap := NewCapacity(PriorityCapacity)
	violation := cap.HardRoute(nil, route, job)
	require.NotNil(t, violation)
	require.Equal(t, core.CodeCapacity, violation.Code)
	require.True(t, violation.Stopped)
}

func TestCapacityHardActivityTracksRunningLoad(t *testing.T) {
	v := vehicle("v1", core.Demand{1})
	route := core.NewRouteContext("r1", core.NewTour(v, 0))
	job := singleJob("j1", core.Demand{1}, nil)

	cap := NewCapacity(PriorityCapacity)
	actx := core.ActivityContext{
		Prev:   route.Tour.Start(),
		Target: core.NewActivity(&job, 0),
		Next:   route.Tour.End(),
	}
	actx.Target.Place = job.Single.Task.Places[0]
	require.Nil(t, cap.HardActivity(route, actx))

	route.Tour.InsertAt(actx.Target, 0)
	cap.AcceptRoute(route)

	over := singleJob("j2", core.Demand{1}, nil)
	overActx := core.ActivityContext{
		Prev:   actx.Target,
		Target: core.NewActivity(&over, 0),
		Next:   route.Tour.End(),
	}
	overActx.Target.Place = over.Single.Task.Places[0]
	violation := cap.HardActivity(route, overActx)
	require.NotNil(t, violation)
	require.Equal(t, core.CodeCapacity, violation.Code)
}

func TestSkillsRejectsMissingSkill(t *testing.T) {
	v := vehicle("v1", core.Demand{10})
	route := core.NewRouteContext("r1", core.NewTour(v, 0))
	job := singleJob("j1", core.Demand{1}, []string{"refrigerated"})

	skills := NewSkills(PrioritySkills)
	violation := skills.HardRoute(nil, route, job)
	require.NotNil(t, violation)
	require.Equal(t, core.CodeSkill, violation.Code)
	require.True(t, violation.Stopped)
}

func TestRelationPinsVehicle(t *testing.T) {
	v1 := vehicle("v1", core.Demand{10})
	v2 := vehicle("v2", core.Demand{10})
	job := singleJob("j1", core.Demand{1}, nil)
	relations := []core.Relation{{Type: core.RelationFlexible, JobIDs: []core.JobID{"j1"}, VehicleID: "v1"}}

	rel := NewRelation(PriorityRelation, relations)
	require.Nil(t, rel.HardRoute(nil, core.NewRouteContext("r1", core.NewTour(v1, 0)), job))

	violation := rel.HardRoute(nil, core.NewRouteContext("r2", core.NewTour(v2, 0)), job)
	require.NotNil(t, violation)
	require.Equal(t, core.CodeRelation, violation.Code)
}

func TestMinimizeCostChargesFixedCostOnce(t *testing.T) {
	v := vehicle("v1", core.Demand{10})
	v.FixedCost = 50
	route := core.NewRouteContext("r1", core.NewTour(v, 0))
	job := singleJob("j1", core.Demand{1}, nil)

	cost := NewMinimizeCost(PriorityCost, core.NewMatrix())
	require.Equal(t, 50.0, cost.SoftRoute(nil, route, job))

	route.Tour.InsertAt(core.NewActivity(&job, 0), 0)
	require.Equal(t, 0.0, cost.SoftRoute(nil, route, job))
}
