package ruin

import "github.com/elektrokombinacija/vrpevo/internal/core"

// WeightedOperator pairs an operator with the coin-flip probability it
// runs at once its group is chosen.
type WeightedOperator struct {
	Operator    Operator
	Probability float64
}

// Group is an ordered list of operators, each independently triggered,
// run sequentially on the accumulating solution (spec.md §4.4).
type Group struct {
	Operators []WeightedOperator
	Weight    float64
}

// Composite selects a group by weight, then runs every operator in it
// whose coin flip succeeds (spec.md §4.4).
type Composite struct {
	Groups []Group
}

// NewComposite builds an empty Composite; populate Groups directly or
// via DefaultComposite.
func NewComposite(groups ...Group) *Composite {
	return &Composite{Groups: groups}
}

func (c *Composite) Run(ctx *core.InsertionContext) {
	if len(c.Groups) == 0 {
		return
	}
	weights := make([]float64, len(c.Groups))
	for i, g := range c.Groups {
		weights[i] = g.Weight
	}
	group := c.Groups[ctx.Random.Weighted(weights)]
	for _, op := range group.Operators {
		if ctx.Random.UniformReal(0, 1) <= op.Probability {
			op.Operator.Run(ctx)
		}
	}
	pruneEmptyRoutes(ctx)
}

// DefaultComposite mirrors the teacher lineage's weighted group table:
// a heavily-favored string removal, several mid-weight spatial/cost
// removals, light-weight pure-random fallbacks, and a rare combination
// group that compounds two operators in one pass.
func DefaultComposite() *Composite {
	limit := DefaultJobRemovalLimit()
	return NewComposite(
		Group{Weight: 100, Operators: []WeightedOperator{{NewAdjustedStringRemoval(limit), 1.0}}},
		Group{Weight: 10, Operators: []WeightedOperator{{NewClusterRemoval(limit), 1.0}}},
		Group{Weight: 10, Operators: []WeightedOperator{{NewNeighbourRemoval(limit), 1.0}}},
		Group{Weight: 10, Operators: []WeightedOperator{{NewWorstJobRemoval(limit), 1.0}}},
		Group{Weight: 5, Operators: []WeightedOperator{{NewRandomJob(limit), 1.0}}},
		Group{Weight: 5, Operators: []WeightedOperator{{RandomRoute{}, 1.0}}},
		Group{Weight: 1, Operators: []WeightedOperator{
			{NewAdjustedStringRemoval(limit), 0.5},
			{NewRandomJob(limit), 0.5},
		}},
	)
}
