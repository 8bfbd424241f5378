package recreate

import "github.com/elektrokombinacija/vrpevo/internal/core"

type weightedVariant struct {
	variant Variant
	weight  float64
}

// Composite wraps a weighted choice of recreate variants; exactly one is
// sampled and run per call (spec.md §4.3: "the weight table is a
// configuration parameter").
type Composite struct {
	variants []weightedVariant
}

// NewComposite builds an empty Composite; add variants with Add.
func NewComposite() *Composite {
	return &Composite{}
}

// Add registers a variant with its selection weight, returning the
// receiver for chaining.
func (c *Composite) Add(variant Variant, weight float64) *Composite {
	c.variants = append(c.variants, weightedVariant{variant: variant, weight: weight})
	return c
}

func (c *Composite) Run(ctx *core.InsertionContext) {
	if len(c.variants) == 0 {
		return
	}
	weights := make([]float64, len(c.variants))
	for i, v := range c.variants {
		weights[i] = v.weight
	}
	idx := ctx.Random.Weighted(weights)
	c.variants[idx].variant.Run(ctx)
}

// DefaultComposite returns the standard weighted mix of every variant,
// used unless a caller configures a different table.
func DefaultComposite() *Composite {
	return NewComposite().
		Add(Cheapest{}, 10).
		Add(NewRegret(3), 5).
		Add(NewGaps(3), 2).
		Add(NewBlinks(0.1), 2).
		Add(NearestNeighbor{}, 2).
		Add(NewPerturbation(0.15), 1)
}
