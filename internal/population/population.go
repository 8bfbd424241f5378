package population

import (
	"math"
	"sort"

	"github.com/elektrokombinacija/vrpevo/internal/core"
)

// Phase is the selection-phase signal the population reports to the
// hyper-heuristic (spec.md §4.5, §4.6): Exploitation gates off
// diversify-path offspring in the evolution driver.
type Phase int

const (
	// PhaseInitial holds while the archive hasn't yet reached capacity.
	PhaseInitial Phase = iota
	// PhaseExploration holds for a period after the archive fills, while
	// the population is still being actively reshuffled by admissions.
	PhaseExploration
	// PhaseExploitation holds once the archive has stabilized; the driver
	// skips Diversify while in this phase.
	PhaseExploitation
)

// explorationGenerations is how many admissions (Add calls) after the
// first capacity ones count as PhaseExploration before the population
// settles into PhaseExploitation.
// Grounded in the simplification documented in DESIGN.md for ROSOMAXA's
// SOM-node-age-driven phase signal, which this archive does not
// replicate.
const explorationGenerations = 3

// Population is the bounded, multi-objective archive the evolution
// driver selects parents from and admits offspring into (spec.md §4.6).
// Ordering is NSGA-II-style: non-dominated fronts, broken by crowding
// distance within a front; admission prunes back to Capacity by dropping
// the most-crowded members of the worst retained front.
type Population struct {
	capacity    int
	problem     *core.Problem
	individuals []*Individual
	generation  int
}

// New builds an empty Population bounded at capacity (spec.md §4.6:
// "typical 4"). capacity below 1 is treated as 1.
func New(capacity int, problem *core.Problem) *Population {
	if capacity < 1 {
		capacity = 1
	}
	return &Population{capacity: capacity, problem: problem}
}

// Add scores ctx and admits it, pruning the archive back to capacity.
// Returns whether ctx survived pruning (spec.md §4.6: "add(individual) →
// Bool(accepted)").
func (p *Population) Add(ctx *core.InsertionContext) bool {
	ind := newIndividual(p.problem, ctx)
	p.individuals = append(p.individuals, ind)
	p.generation++
	p.prune()
	for _, kept := range p.individuals {
		if kept == ind {
			return true
		}
	}
	return false
}

// AddAll admits every non-nil context in order, returning how many
// survived pruning (spec.md §4.6: "add_all(individuals)"). A nil entry is
// the "operator returned the input unchanged but the caller lost the
// handle" case and is silently skipped rather than panicking (spec.md
// §4.8: "any operator may return the input solution unchanged").
func (p *Population) AddAll(ctxs []*core.InsertionContext) int {
	accepted := 0
	for _, c := range ctxs {
		if c == nil {
			continue
		}
		if p.Add(c) {
			accepted++
		}
	}
	return accepted
}

// prune drops individuals past capacity, preferring to keep whole
// non-dominated fronts and, within the first front that doesn't fully
// fit, the least-crowded members of it (NSGA-II survivor selection).
func (p *Population) prune() {
	if len(p.individuals) <= p.capacity {
		return
	}
	fronts := nonDominatedFronts(p.individuals)
	kept := make([]*Individual, 0, p.capacity)
	for _, front := range fronts {
		if len(kept)+len(front) <= p.capacity {
			kept = append(kept, front...)
			continue
		}
		dist := crowdingDistance(front)
		sorted := append([]*Individual(nil), front...)
		sort.Slice(sorted, func(i, j int) bool { return dist[sorted[i]] > dist[sorted[j]] })
		remaining := p.capacity - len(kept)
		kept = append(kept, sorted[:remaining]...)
		break
	}
	p.individuals = kept
}

// Select returns every individual's solution handle, borrowed for the
// duration of one generation (spec.md §3 Ownership, §4.6: "select() →
// iterator of parent handles").
func (p *Population) Select() []*core.InsertionContext {
	out := make([]*core.InsertionContext, len(p.individuals))
	for i, ind := range p.individuals {
		out[i] = ind.Context
	}
	return out
}

// RankedIndividual pairs a solution with its Pareto front rank (0 =
// non-dominated).
type RankedIndividual struct {
	Context *core.InsertionContext
	Rank    int
}

// Ranked returns every individual in front order, front-internally
// ordered by descending crowding distance (spec.md §4.6: "ranked() →
// iterator of (solution, rank)").
func (p *Population) Ranked() []RankedIndividual {
	fronts := nonDominatedFronts(p.individuals)
	out := make([]RankedIndividual, 0, len(p.individuals))
	for rank, front := range fronts {
		dist := crowdingDistance(front)
		sorted := append([]*Individual(nil), front...)
		sort.Slice(sorted, func(i, j int) bool { return dist[sorted[i]] > dist[sorted[j]] })
		for _, ind := range sorted {
			out = append(out, RankedIndividual{Context: ind.Context, Rank: rank})
		}
	}
	return out
}

// SelectionPhase reports the archive's current phase (spec.md §4.6).
func (p *Population) SelectionPhase() Phase {
	if len(p.individuals) < p.capacity {
		return PhaseInitial
	}
	if p.generation < p.capacity+explorationGenerations {
		return PhaseExploration
	}
	return PhaseExploitation
}

// BestCost returns the lowest SolutionCost across every individual, or
// +Inf for an empty archive.
func (p *Population) BestCost() float64 {
	best := math.Inf(1)
	for _, ind := range p.individuals {
		if cost := core.SolutionCost(p.problem, ind.Context.Solution); cost < best {
			best = cost
		}
	}
	return best
}

// BestUnassigned returns the unassigned-job count of whichever individual
// has the lowest SolutionCost (ties broken by iteration order), or 0 for
// an empty archive.
func (p *Population) BestUnassigned() int {
	best := math.Inf(1)
	unassigned := 0
	for _, ind := range p.individuals {
		if cost := core.SolutionCost(p.problem, ind.Context.Solution); cost < best {
			best = cost
			unassigned = len(ind.Context.Solution.Unassigned)
		}
	}
	return unassigned
}

// Len returns how many individuals the archive currently holds.
func (p *Population) Len() int {
	return len(p.individuals)
}
