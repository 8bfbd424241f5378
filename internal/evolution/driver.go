package evolution

import (
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/elektrokombinacija/vrpevo/internal/hyperheuristic"
	"github.com/elektrokombinacija/vrpevo/internal/population"
	"github.com/elektrokombinacija/vrpevo/internal/recreate"
	"github.com/elektrokombinacija/vrpevo/internal/telemetry"
	"github.com/elektrokombinacija/vrpevo/internal/termination"
	"github.com/google/uuid"
)

// Driver orchestrates the generational evolution loop (spec.md §4.8):
// initial population construction, repeated select → diversify/search →
// accept generations until termination, then solution postprocessing and
// extraction. Built only via Builder, which is where fatal configuration
// errors are raised (spec.md §7); Run itself never returns an error —
// any operator failure is absorbed as a same-as-input offspring.
type Driver struct {
	problem     *core.Problem
	environment *telemetry.Environment
	population  *population.Population
	heuristic   hyperheuristic.HyperHeuristic
	termination termination.Termination

	initialIndividuals []*core.InsertionContext
	initialMaxSize     int
	initialQuota       float64
	maxTime            time.Duration

	contextPreprocessors   []func(*core.InsertionContext)
	solutionPostprocessors []func(*core.InsertionContext)
	desiredSolutions       int
}

// Result is what Run returns: the top ranked solutions and the final run
// statistics (spec.md §6: "the solver returns (solutions, metrics)").
type Result struct {
	Solutions  []*core.InsertionContext
	Statistics Statistics
}

// Run executes the full pseudoflow of spec.md §4.8.
func (d *Driver) Run() Result {
	refCtx := NewRefinementContext(d.problem, d.environment)

	d.seedInitialPopulation(refCtx)

	for !d.termination.IsTermination(refCtx) && !d.environment.Quota.IsReached() {
		d.runGeneration(refCtx)
	}

	ranked := d.population.Ranked()
	solutions := make([]*core.InsertionContext, 0, d.desiredSolutions)
	for _, r := range ranked {
		for _, post := range d.solutionPostprocessors {
			post(r.Context)
		}
		solutions = append(solutions, r.Context)
		if len(solutions) >= d.desiredSolutions {
			break
		}
	}

	return Result{Solutions: solutions, Statistics: refCtx.Statistics()}
}

// runGeneration performs one iteration of spec.md §4.8 step 2: select
// parents, diversify (unless the population reports Exploitation),
// search, combine, and admit the combined offspring.
func (d *Driver) runGeneration(refCtx *RefinementContext) {
	start := time.Now()
	genID := uuid.New().String()[:8]

	parents := d.population.Select()

	var diverse []*core.InsertionContext
	if d.population.SelectionPhase() != population.PhaseExploitation {
		diverse = d.heuristic.Diversify(parents)
		d.environment.Metrics.IncrementOperator("diversify")
	}
	search := d.heuristic.Search(parents)
	d.environment.Metrics.IncrementOperator("search")

	offspring := make([]*core.InsertionContext, 0, len(search)+len(diverse))
	offspring = append(offspring, search...)
	offspring = append(offspring, diverse...)

	d.population.AddAll(offspring)

	duration := time.Since(start)
	d.environment.Logger.Debug("generation complete",
		"generation_id", genID,
		"parents", len(parents),
		"offspring", len(offspring),
		"duration_ms", duration.Milliseconds(),
	)
	refCtx.OnGeneration(d.population.Len(), d.population.BestUnassigned(), d.population.BestCost(), duration)
}

// seedInitialPopulation builds the starting archive (spec.md §4.8 step
// 1): caller-provided individuals first, then generated seeds (via the
// default recreate composite acting as the initial operator) until
// initialMaxSize is reached or the initial time-budget fraction runs out.
// Every seed — provided or generated — is run through the configured
// context preprocessors exactly once.
func (d *Driver) seedInitialPopulation(refCtx *RefinementContext) {
	for _, ind := range d.initialIndividuals {
		d.preprocess(ind)
		d.population.Add(ind)
	}

	budget := time.Duration(float64(d.maxTime) * d.initialQuota)
	deadline := time.Now().Add(budget)

	initial := recreate.DefaultComposite()
	for seeds := d.population.Len(); seeds < d.initialMaxSize; seeds++ {
		if budget > 0 && time.Now().After(deadline) {
			break
		}
		if d.environment.Quota.IsReached() {
			break
		}
		ctx := core.NewInsertionContext(d.problem, d.environment.Random.Clone())
		initial.Run(ctx)
		d.preprocess(ctx)
		d.population.Add(ctx)
	}

	refCtx.Seeded(d.population.Len(), d.population.BestCost())
}

func (d *Driver) preprocess(ctx *core.InsertionContext) {
	for _, pre := range d.contextPreprocessors {
		pre(ctx)
	}
}
