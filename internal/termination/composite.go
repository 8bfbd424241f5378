package termination

// Composite terminates as soon as any child does; its estimate is the
// max across children (spec.md §4.7).
type Composite struct {
	Children []Termination
}

// NewComposite builds a Composite over the given children.
func NewComposite(children ...Termination) Composite {
	return Composite{Children: children}
}

func (c Composite) IsTermination(ctx Context) bool {
	for _, child := range c.Children {
		if child.IsTermination(ctx) {
			return true
		}
	}
	return false
}

func (c Composite) Estimate(ctx Context) float64 {
	var max float64
	for _, child := range c.Children {
		if e := child.Estimate(ctx); e > max {
			max = e
		}
	}
	return max
}

var (
	_ Termination = MaxGeneration{}
	_ Termination = MaxTime{}
	_ Termination = MinVariation{}
	_ Termination = Composite{}
)
