package recreate

import (
	"math"

	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/elektrokombinacija/vrpevo/internal/insertion"
)

// Perturbation runs Cheapest with each candidate's cost multiplied by
// log-normal noise before comparison, spreading the search away from the
// exact greedy path on repeated calls with the same job set (spec.md
// §4.3). The noise sampler is adapted from the teacher's lognormal
// distribution helper.
type Perturbation struct {
	Sigma float64
}

// NewPerturbation builds a Perturbation variant with the given noise
// shape parameter (larger sigma means noisier choices).
func NewPerturbation(sigma float64) *Perturbation {
	if sigma <= 0 {
		sigma = 0.15
	}
	return &Perturbation{Sigma: sigma}
}

func (p *Perturbation) Run(ctx *core.InsertionContext) {
	for {
		required := append([]core.Job(nil), ctx.Solution.Required...)
		if len(required) == 0 {
			return
		}
		routes := candidateRoutes(ctx)

		bestNoisy := math.Inf(1)
		var best insertion.Result
		found := false
		var failures []jobFailure

		for _, job := range required {
			result := insertion.Evaluate(ctx, job, insertion.Any(), routes, math.Inf(1))
			if !result.Success {
				failures = append(failures, jobFailure{job, result.Code})
				continue
			}
			noisy := result.Cost * logNormalNoise(ctx.Random, p.Sigma)
			if noisy < bestNoisy {
				bestNoisy = noisy
				best = result
				found = true
			}
		}

		if !found {
			drainFailures(ctx, failures)
			return
		}
		apply(ctx, best)
	}
}

// logNormalNoise draws a multiplicative perturbation factor with mean 1
// from a log-normal distribution, via a Box-Muller standard-normal draw.
// Adapted from the teacher's LogNormalDist sampler.
func logNormalNoise(random core.Random, sigma float64) float64 {
	u1 := random.UniformReal(1e-12, 1)
	u2 := random.UniformReal(0, 1)
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	mu := -0.5 * sigma * sigma
	return math.Exp(mu + sigma*z)
}
