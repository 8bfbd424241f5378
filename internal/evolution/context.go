package evolution

import (
	"math"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/elektrokombinacija/vrpevo/internal/telemetry"
	"github.com/elektrokombinacija/vrpevo/internal/termination"
)

// RefinementContext is the evolution driver's run-level state: the
// problem, the shared telemetry.Environment, and the bookkeeping
// termination criteria read from (generation count, elapsed time, and
// tracked-metric history). It implements termination.Context.
type RefinementContext struct {
	Problem     *core.Problem
	Environment *telemetry.Environment

	startedAt   time.Time
	generation  int
	bestCost    float64
	improved    int
	lastGenDur  time.Duration
	history     map[string][]termination.Sample
}

// NewRefinementContext builds a fresh RefinementContext, clock started
// immediately (its Elapsed is read by MaxTime and logged generation
// durations).
func NewRefinementContext(problem *core.Problem, env *telemetry.Environment) *RefinementContext {
	return &RefinementContext{
		Problem:     problem,
		Environment: env,
		startedAt:   time.Now(),
		bestCost:    math.Inf(1),
		history:     make(map[string][]termination.Sample),
	}
}

// Generation implements termination.Context.
func (c *RefinementContext) Generation() int { return c.generation }

// Elapsed implements termination.Context.
func (c *RefinementContext) Elapsed() time.Duration { return time.Since(c.startedAt) }

// QuotaReached implements termination.Context.
func (c *RefinementContext) QuotaReached() bool { return c.Environment.Quota.IsReached() }

// History implements termination.Context.
func (c *RefinementContext) History(key string) []termination.Sample { return c.history[key] }

// Record appends a sample under key (MinVariation reads it back via
// History using the "global:"/"local:" prefixes it applies itself).
func (c *RefinementContext) Record(key string, value float64) {
	c.history[key] = append(c.history[key], termination.Sample{
		Generation: c.generation,
		At:         time.Now(),
		Value:      value,
	})
}

// Statistics snapshots the run state visible to callers (spec.md §4
// supplemented features).
func (c *RefinementContext) Statistics() Statistics {
	return Statistics{
		Generation:       c.generation,
		Speed:            speedOf(c.lastGenDur),
		ImprovementRatio: improvementRatio(c.improved, c.generation),
		BestCost:         c.bestCost,
	}
}

// OnGeneration records one completed generation's bookkeeping (spec.md
// §4.8 step 2e): advances the generation counter, tracks whether the
// population's best cost improved, and stores the new best cost as both
// a "global" and "local" history sample so MinVariation can read either
// key regardless of IsGlobal — this repo keeps one population rather
// than ROSOMAXA's per-subpopulation archipelago, so both views collapse
// onto the same series (see DESIGN.md).
func (c *RefinementContext) OnGeneration(populationSize, unassigned int, bestCost float64, generationDuration time.Duration) {
	c.generation++
	c.lastGenDur = generationDuration
	if bestCost < c.bestCost {
		c.improved++
		c.bestCost = bestCost
	}
	c.Record("global:best_cost", bestCost)
	c.Record("local:best_cost", bestCost)

	c.Environment.Metrics.ObserveGeneration(c.generation, populationSize, unassigned, generationDuration)
	c.Environment.Logger.Info("generation complete",
		"generation", c.generation,
		"best_cost", bestCost,
		"population_size", populationSize,
		"duration", generationDuration)
}

// Seeded records the initial population's best cost without advancing
// the generation counter (spec.md §4.8 step 1 happens before the
// generational loop and is not itself a generation).
func (c *RefinementContext) Seeded(populationSize int, bestCost float64) {
	if bestCost < c.bestCost {
		c.bestCost = bestCost
	}
	c.Environment.Logger.Info("initial population seeded", "population_size", populationSize, "best_cost", bestCost)
}

func speedOf(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return 1 / d.Seconds()
}

func improvementRatio(improved, generation int) float64 {
	if generation == 0 {
		return 0
	}
	return float64(improved) / float64(generation)
}

var _ termination.Context = (*RefinementContext)(nil)
