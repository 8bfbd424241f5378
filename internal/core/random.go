package core

// Random is the seedable randomness capability injected throughout the
// solver (spec.md §9): uniform reals/ints and weighted choice, plus a
// per-worker Clone so parallel offspring construction stays reproducible
// under a shared seed (spec.md §5). Implemented by internal/telemetry.
type Random interface {
	UniformReal(min, max float64) float64
	UniformInt(min, max int) int
	Weighted(weights []float64) int
	Clone() Random
}
