package termination

import "time"

// MaxTime terminates once wall-clock time since the run started reaches
// Limit, or once the shared TimeQuota independently reports expired
// (spec.md §4.7, §6: default 300s). The latter check lets a quota that
// was constructed with a slightly different budget — or that an
// operator itself polled mid-work and found exhausted — still be
// honored here.
type MaxTime struct {
	Limit time.Duration
}

func (m MaxTime) IsTermination(ctx Context) bool {
	if ctx.QuotaReached() {
		return true
	}
	return m.Limit > 0 && ctx.Elapsed() >= m.Limit
}

func (m MaxTime) Estimate(ctx Context) float64 {
	if m.Limit <= 0 {
		return 0
	}
	return clamp01(ctx.Elapsed().Seconds() / m.Limit.Seconds())
}
