// Package hyperheuristic selects and applies a ruin-and-recreate
// operator chain to build offspring from parent solutions (spec.md
// §4.5).
package hyperheuristic

import (
	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/elektrokombinacija/vrpevo/internal/recreate"
	"github.com/elektrokombinacija/vrpevo/internal/ruin"
)

// Entry is one (ruin-group, recreate) operator pair with its selection
// weight.
type Entry struct {
	Ruin     *ruin.Composite
	Recreate recreate.Variant
	Weight   float64
}

// apply runs the operator's ruin pass then its recreate pass on ctx.
func (e Entry) apply(ctx *core.InsertionContext) {
	e.Ruin.Run(ctx)
	e.Recreate.Run(ctx)
}

// HyperHeuristic exposes the exploitation (Search) and diversity-boosting
// (Diversify) offspring-construction paths (spec.md §4.5). Diversify is
// intentionally skipped by the evolution driver when the population
// reports Exploitation phase.
type HyperHeuristic interface {
	Search(parents []*core.InsertionContext) []*core.InsertionContext
	Diversify(parents []*core.InsertionContext) []*core.InsertionContext
}

func weightsOf(entries []Entry) []float64 {
	weights := make([]float64, len(entries))
	for i, e := range entries {
		weights[i] = e.Weight
	}
	return weights
}
