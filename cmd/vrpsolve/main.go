// Command vrpsolve runs the evolutionary VRP solver core against a small
// built-in demonstration instance and prints the best route found. Real
// problem/solution I/O (HRE/Solomon/pragmatic JSON, a routing-cost
// matrix service) is an external collaborator the core only consumes by
// interface (spec.md §1); this command stands in for it with a single
// hand-built Problem, the way the teacher's cmd/mapfhet builds its test
// instances inline rather than loading them from disk.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/constraint"
	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/elektrokombinacija/vrpevo/internal/evolution"
	"github.com/elektrokombinacija/vrpevo/internal/termination"
)

func main() {
	var (
		maxGenerations = flag.Int("max-generations", 3000, "terminate after this many generations")
		maxTime        = flag.Duration("max-time", 5*time.Second, "terminate after this much wall-clock time")
		populationSize = flag.Int("population", 4, "population archive capacity")
		seed           = flag.Int64("seed", 1, "RNG seed for deterministic runs")
		verbose        = flag.Bool("verbose", false, "enable debug-level logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	problem := lineDeliveryProblem()

	driver, err := evolution.NewBuilder(problem).
		WithMaxGenerations(*maxGenerations).
		WithMaxTime(*maxTime).
		WithPopulationCapacity(*populationSize).
		WithMinVariation(termination.IntervalSample, 20, 0.0001, true, "best_cost").
		WithSeed(*seed).
		WithLogger(logger).
		Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "vrpsolve: invalid configuration:", err)
		os.Exit(1)
	}

	result := driver.Run()
	printResult(result)
}

// lineDeliveryProblem builds the 7-deliveries-on-a-line instance from
// spec.md §8 scenario 1: one capacity-7 vehicle, deliveries at
// x∈{1..7}, y=0.
func lineDeliveryProblem() *core.Problem {
	matrix := core.NewMatrix()
	matrix.SetSpeed("car", 1.0)
	for i := 1; i <= 7; i++ {
		for j := 0; j < i; j++ {
			matrix.AddEdge("car", core.LocationID(j), core.LocationID(i), float64(i-j))
		}
	}

	window := []core.TimeWindow{{Start: time.Unix(0, 0), End: time.Unix(0, 0).Add(24 * time.Hour)}}
	start := core.Place{Location: core.Location{Index: 0}, Windows: window}
	vehicle := &core.Vehicle{
		ID:       "vehicle_1",
		Profile:  "car",
		Capacity: core.Demand{7},
		Shifts:   []core.Shift{{Start: start}},
	}
	fleet := &core.Fleet{Vehicles: []*core.Vehicle{vehicle}}

	var jobs []core.Job
	for i := 1; i <= 7; i++ {
		jobs = append(jobs, core.NewSingleJob(&core.Single{
			ID: core.JobID(fmt.Sprintf("job%d", i)),
			Task: core.Task{
				Places: []core.Place{{Location: core.Location{Index: core.LocationID(i)}, Duration: 0, Windows: window}},
				Demand: core.Demand{1},
			},
		}))
	}

	problem := core.NewProblem(jobs, fleet, matrix, zeroActivityCost{})
	problem.SetConstraint(constraint.BuildDefault(matrix, nil))
	return problem
}

type zeroActivityCost struct{}

func (zeroActivityCost) Cost(*core.Vehicle, core.Place, time.Time) float64 { return 0 }

func printResult(result evolution.Result) {
	fmt.Printf("generations: %d\n", result.Statistics.Generation)
	fmt.Printf("best cost:   %.2f\n", result.Statistics.BestCost)
	if len(result.Solutions) == 0 {
		fmt.Println("no solutions returned")
		return
	}

	best := result.Solutions[0]
	fmt.Printf("unassigned:  %d\n", len(best.Solution.Unassigned))
	for _, route := range best.Solution.Routes {
		fmt.Printf("route %s (%s):", route.ID, route.Tour.Vehicle.ID)
		for _, job := range route.Tour.Jobs() {
			fmt.Printf(" %s", job.ID())
		}
		fmt.Println()
	}
}
