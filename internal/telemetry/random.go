package telemetry

import (
	"math/rand"

	"github.com/elektrokombinacija/vrpevo/internal/core"
)

// Rand is the default core.Random implementation, backed by math/rand
// the way the teacher's stochastic solvers (algo/stochastic_ecbs.go,
// algo/mcts.go) draw their randomness directly from a seeded source.
type Rand struct {
	src *rand.Rand
}

// NewRandom builds a Rand seeded deterministically.
func NewRandom(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

// UniformReal returns a uniform float64 in [min, max).
func (r *Rand) UniformReal(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.src.Float64()*(max-min)
}

// UniformInt returns a uniform int in [min, max], inclusive.
func (r *Rand) UniformInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.src.Intn(max-min+1)
}

// Weighted picks an index proportional to its weight. Non-positive total
// weight falls back to index 0 rather than panicking.
func (r *Rand) Weighted(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	pick := r.src.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if pick < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// Clone derives an independent, deterministically-seeded Rand from this
// one's current state, so parallel offspring construction stays
// reproducible given the original seed (spec.md §5, §9).
func (r *Rand) Clone() core.Random {
	return &Rand{src: rand.New(rand.NewSource(r.src.Int63()))}
}

var _ core.Random = (*Rand)(nil)
