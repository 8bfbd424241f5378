package evolution

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/elektrokombinacija/vrpevo/internal/hyperheuristic"
	"github.com/elektrokombinacija/vrpevo/internal/population"
	"github.com/elektrokombinacija/vrpevo/internal/recreate"
	"github.com/elektrokombinacija/vrpevo/internal/ruin"
	"github.com/elektrokombinacija/vrpevo/internal/telemetry"
	"github.com/elektrokombinacija/vrpevo/internal/termination"
	"github.com/prometheus/client_golang/prometheus"
)

// Builder assembles a Driver with sensible defaults, fluent With*
// configuration, and validation deferred to Build (spec.md §4
// supplemented features, grounded in vrp-core/src/solver/builder.rs's
// options-style construction).
type Builder struct {
	problem *core.Problem

	maxGenerations int
	maxTime        time.Duration
	minVariation   *termination.MinVariation

	populationCapacity int
	heuristic          hyperheuristic.HyperHeuristic

	initialIndividuals []*core.InsertionContext
	initialMaxSize     int
	initialQuota       float64

	contextPreprocessors   []func(*core.InsertionContext)
	solutionPostprocessors []func(*core.InsertionContext)

	desiredSolutions int
	seed             int64
	logger           *slog.Logger
	registerer       prometheus.Registerer
}

// NewBuilder starts a Builder with the configuration-surface defaults
// from spec.md §6: 3000 max generations, 300s max time, population
// capacity 4, 4 seed individuals capped at a 20% time-budget fraction.
func NewBuilder(problem *core.Problem) *Builder {
	return &Builder{
		problem:            problem,
		maxGenerations:     3000,
		maxTime:            300 * time.Second,
		populationCapacity: 4,
		initialMaxSize:     4,
		initialQuota:       0.2,
		desiredSolutions:   1,
		seed:               1,
	}
}

// WithMaxGenerations overrides the MaxGeneration termination limit.
func (b *Builder) WithMaxGenerations(n int) *Builder { b.maxGenerations = n; return b }

// WithMaxTime overrides the MaxTime termination limit and the shared
// TimeQuota budget.
func (b *Builder) WithMaxTime(d time.Duration) *Builder { b.maxTime = d; return b }

// WithMinVariation adds a MinVariation stagnation criterion to the
// composed termination.
func (b *Builder) WithMinVariation(interval termination.IntervalType, value, threshold float64, isGlobal bool, key string) *Builder {
	b.minVariation = &termination.MinVariation{Interval: interval, Value: value, Threshold: threshold, IsGlobal: isGlobal, Key: key}
	return b
}

// WithPopulationCapacity overrides the population archive's bound.
func (b *Builder) WithPopulationCapacity(n int) *Builder { b.populationCapacity = n; return b }

// WithHyperHeuristic overrides the default hyper-heuristic.
func (b *Builder) WithHyperHeuristic(h hyperheuristic.HyperHeuristic) *Builder { b.heuristic = h; return b }

// WithInitialIndividuals supplies pre-built seed solutions, inserted into
// the initial population ahead of any generated seeds (spec.md §4.8 step
// 1: "Add provided individuals first").
func (b *Builder) WithInitialIndividuals(individuals ...*core.InsertionContext) *Builder {
	b.initialIndividuals = append(b.initialIndividuals, individuals...)
	return b
}

// WithInitialMaxSize overrides how many seed individuals the initial
// phase builds (spec.md §6: initial.max_size).
func (b *Builder) WithInitialMaxSize(n int) *Builder { b.initialMaxSize = n; return b }

// WithInitialQuota overrides the fraction of max_time the initial phase
// may spend generating seeds (spec.md §6: initial.quota).
func (b *Builder) WithInitialQuota(fraction float64) *Builder { b.initialQuota = fraction; return b }

// WithContextPreprocessor registers a function run once over every seed
// individual after it is built (spec.md §4.8 step 1).
func (b *Builder) WithContextPreprocessor(fn func(*core.InsertionContext)) *Builder {
	b.contextPreprocessors = append(b.contextPreprocessors, fn)
	return b
}

// WithSolutionPostprocessor registers a function run once over every
// returned solution at finalize time (spec.md §4.8 step 3).
func (b *Builder) WithSolutionPostprocessor(fn func(*core.InsertionContext)) *Builder {
	b.solutionPostprocessors = append(b.solutionPostprocessors, fn)
	return b
}

// WithDesiredSolutions overrides how many ranked solutions Run returns.
func (b *Builder) WithDesiredSolutions(n int) *Builder { b.desiredSolutions = n; return b }

// WithSeed overrides the RNG seed (spec.md §6: deterministic runs).
func (b *Builder) WithSeed(seed int64) *Builder { b.seed = seed; return b }

// WithLogger overrides the environment's logger.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder { b.logger = logger; return b }

// WithMetricsRegisterer overrides the Prometheus registerer the
// environment's metrics register against.
func (b *Builder) WithMetricsRegisterer(r prometheus.Registerer) *Builder { b.registerer = r; return b }

// Build validates the configuration and assembles a Driver. The only
// fatal errors this core raises are configuration errors at build time
// (spec.md §7); everything else is handled as expected, per-attempt
// outcomes once the driver is running.
func (b *Builder) Build() (*Driver, error) {
	if b.problem == nil {
		return nil, fmt.Errorf("evolution: builder requires a problem")
	}
	if b.populationCapacity < 1 {
		return nil, fmt.Errorf("evolution: population capacity must be >= 1, got %d", b.populationCapacity)
	}
	if b.maxGenerations <= 0 && b.maxTime <= 0 && b.minVariation == nil {
		return nil, fmt.Errorf("evolution: at least one termination criterion must be configured")
	}

	quota := telemetry.NewTimeQuota(b.maxTime)
	env := telemetry.NewEnvironment(b.seed, quota, b.logger, b.registerer)

	children := []termination.Termination{}
	if b.maxGenerations > 0 {
		children = append(children, termination.MaxGeneration{Limit: b.maxGenerations})
	}
	if b.maxTime > 0 {
		children = append(children, termination.MaxTime{Limit: b.maxTime})
	}
	if b.minVariation != nil {
		children = append(children, *b.minVariation)
	}

	heuristic := b.heuristic
	if heuristic == nil {
		heuristic = defaultHyperHeuristic(b.problem, env.Random.Clone())
	}

	return &Driver{
		problem:                b.problem,
		environment:            env,
		population:             population.New(b.populationCapacity, b.problem),
		heuristic:              heuristic,
		termination:            termination.NewComposite(children...),
		initialIndividuals:     b.initialIndividuals,
		initialMaxSize:         b.initialMaxSize,
		initialQuota:           b.initialQuota,
		maxTime:                b.maxTime,
		contextPreprocessors:   b.contextPreprocessors,
		solutionPostprocessors: b.solutionPostprocessors,
		desiredSolutions:       b.desiredSolutions,
	}, nil
}

// defaultHyperHeuristic builds a MultiSelective over one StaticSelective
// and one DynamicSelective entry table, each wrapping the standard
// ruin.DefaultComposite/recreate.DefaultComposite pair (spec.md §4
// supplemented features).
func defaultHyperHeuristic(problem *core.Problem, random core.Random) hyperheuristic.HyperHeuristic {
	entries := []hyperheuristic.Entry{
		{Ruin: ruin.DefaultComposite(), Recreate: recreate.DefaultComposite(), Weight: 1},
	}
	static := hyperheuristic.NewStaticSelective(entries)
	dynamic := hyperheuristic.NewDynamicSelective(problem, entries, 20)
	return hyperheuristic.NewMultiSelective(static, dynamic, 0.5, random)
}
