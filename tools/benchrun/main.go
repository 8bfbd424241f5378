// Command benchrun loads synthetic instances produced by
// tools/geninstances and runs the evolutionary solver against each,
// writing one CSV row of summary metrics per run. Adapted from the
// teacher's tools/run_benchmarks, which walks a directory of generated
// instance JSON files and appends a CSV row per solver/instance pair.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/constraint"
	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/elektrokombinacija/vrpevo/internal/evolution"
)

type jobSpec struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	PickupX     int     `json:"pickup_x,omitempty"`
	PickupY     int     `json:"pickup_y,omitempty"`
	DeliveryX   int     `json:"delivery_x"`
	DeliveryY   int     `json:"delivery_y"`
	Demand      int     `json:"demand"`
	WindowOpen  float64 `json:"window_open"`
	WindowClose float64 `json:"window_close"`
}

type vehicleSpec struct {
	ID       string `json:"id"`
	Profile  string `json:"profile"`
	Capacity int    `json:"capacity"`
	StartX   int    `json:"start_x"`
	StartY   int    `json:"start_y"`
}

type instanceFile struct {
	Name     string        `json:"name"`
	Jobs     []jobSpec     `json:"jobs"`
	Vehicles []vehicleSpec `json:"vehicles"`
}

type result struct {
	Instance    string
	GoVersion   string
	OS          string
	Arch        string
	NumJobs     int
	NumVehicles int
	RuntimeMs   float64
	Generations int
	BestCost    float64
	Unassigned  int
}

func main() {
	var (
		dir      = flag.String("dir", "instances", "directory of instance JSON files to load")
		outPath  = flag.String("out", "benchmark_results.csv", "CSV output path")
		maxTime  = flag.Duration("max-time", 5*time.Second, "per-instance solver time budget")
		maxGens  = flag.Int("max-generations", 3000, "per-instance generation limit")
		seed     = flag.Int64("seed", 1, "RNG seed")
	)
	flag.Parse()

	entries, err := filepath.Glob(filepath.Join(*dir, "*.json"))
	if err != nil || len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "benchrun: no instance files found in", *dir)
		os.Exit(1)
	}

	var results []result
	for _, path := range entries {
		inst, err := loadInstance(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "benchrun: skipping", path, ":", err)
			continue
		}
		results = append(results, runInstance(inst, *maxGens, *maxTime, *seed))
	}

	if err := writeCSV(*outPath, results); err != nil {
		fmt.Fprintln(os.Stderr, "benchrun:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d results to %s\n", len(results), *outPath)
}

func loadInstance(path string) (*instanceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var inst instanceFile
	if err := json.Unmarshal(data, &inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

func runInstance(inst *instanceFile, maxGenerations int, maxTime time.Duration, seed int64) result {
	problem := buildProblem(inst)

	driver, err := evolution.NewBuilder(problem).
		WithMaxGenerations(maxGenerations).
		WithMaxTime(maxTime).
		WithSeed(seed).
		Build()
	if err != nil {
		return result{Instance: inst.Name}
	}

	start := time.Now()
	solved := driver.Run()
	elapsed := time.Since(start)

	unassigned := 0
	bestCost := solved.Statistics.BestCost
	if len(solved.Solutions) > 0 {
		unassigned = len(solved.Solutions[0].Solution.Unassigned)
	}

	return result{
		Instance:    inst.Name,
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		NumJobs:     len(inst.Jobs),
		NumVehicles: len(inst.Vehicles),
		RuntimeMs:   float64(elapsed.Microseconds()) / 1000.0,
		Generations: solved.Statistics.Generation,
		BestCost:    bestCost,
		Unassigned:  unassigned,
	}
}

func buildProblem(inst *instanceFile) *core.Problem {
	matrix := core.NewMatrix()
	matrix.SetSpeed("car", 1.0)

	window := []core.TimeWindow{{Start: time.Unix(0, 0), End: time.Unix(0, 0).Add(24 * time.Hour)}}

	var vehicles []*core.Vehicle
	for _, v := range inst.Vehicles {
		start := core.Place{Location: core.Location{Point: &core.GeoPoint{Lat: float64(v.StartX), Lng: float64(v.StartY)}}, Windows: window}
		vehicles = append(vehicles, &core.Vehicle{
			ID:       core.VehicleID(v.ID),
			Profile:  v.Profile,
			Capacity: core.Demand{v.Capacity},
			Shifts:   []core.Shift{{Start: start}},
		})
	}
	fleet := &core.Fleet{Vehicles: vehicles}

	var jobs []core.Job
	for _, j := range inst.Jobs {
		deliveryLoc := core.Location{Point: &core.GeoPoint{Lat: float64(j.DeliveryX), Lng: float64(j.DeliveryY)}}
		window := []core.TimeWindow{{
			Start: time.Unix(0, 0).Add(time.Duration(j.WindowOpen) * time.Second),
			End:   time.Unix(0, 0).Add(time.Duration(j.WindowClose) * time.Second),
		}}
		jobs = append(jobs, core.NewSingleJob(&core.Single{
			ID: core.JobID(j.ID),
			Task: core.Task{
				Places: []core.Place{{Location: deliveryLoc, Duration: 60, Windows: window}},
				Demand: core.Demand{j.Demand},
			},
		}))
	}

	problem := core.NewProblem(jobs, fleet, matrix, zeroActivityCost{})
	problem.SetConstraint(constraint.BuildDefault(matrix, nil))
	return problem
}

type zeroActivityCost struct{}

func (zeroActivityCost) Cost(*core.Vehicle, core.Place, time.Time) float64 { return 0 }

func dist(x1, y1, x2, y2 int) float64 {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	return math.Sqrt(dx*dx + dy*dy)
}

func writeCSV(path string, results []result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"instance", "go_version", "os", "arch", "num_jobs", "num_vehicles", "runtime_ms", "generations", "best_cost", "unassigned"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Instance, r.GoVersion, r.OS, r.Arch,
			fmt.Sprint(r.NumJobs), fmt.Sprint(r.NumVehicles),
			fmt.Sprintf("%.3f", r.RuntimeMs), fmt.Sprint(r.Generations),
			fmt.Sprintf("%.2f", r.BestCost), fmt.Sprint(r.Unassigned),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
