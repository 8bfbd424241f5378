package termination

// MaxGeneration terminates once the generation counter reaches Limit
// (spec.md §4.7, §6: default 3000).
type MaxGeneration struct {
	Limit int
}

func (m MaxGeneration) IsTermination(ctx Context) bool {
	return m.Limit > 0 && ctx.Generation() >= m.Limit
}

func (m MaxGeneration) Estimate(ctx Context) float64 {
	if m.Limit <= 0 {
		return 0
	}
	return clamp01(float64(ctx.Generation()) / float64(m.Limit))
}
