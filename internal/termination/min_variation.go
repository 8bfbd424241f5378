package termination

import (
	"math"
	"time"
)

// IntervalType selects how MinVariation windows the samples it tests for
// stagnation (spec.md §4.7).
type IntervalType int

const (
	// IntervalSample windows by a fixed count of most-recent samples.
	IntervalSample IntervalType = iota
	// IntervalPeriod windows by a trailing wall-clock duration.
	IntervalPeriod
)

// MinVariation terminates once the coefficient of variation (stddev /
// |mean|) of a tracked metric over a window falls below Threshold
// (spec.md §4.7). IsGlobal toggles which history key is read:
// "global:"+Key tracks the metric across the whole population,
// "local:"+Key a narrower per-subpopulation view — see DESIGN.md for how
// this repo's single-population model keeps both keys populated.
type MinVariation struct {
	Interval  IntervalType
	Value     float64 // sample count (IntervalSample) or seconds (IntervalPeriod)
	Threshold float64
	IsGlobal  bool
	Key       string
}

func (m MinVariation) historyKey() string {
	if m.IsGlobal {
		return "global:" + m.Key
	}
	return "local:" + m.Key
}

// window returns the samples this criterion currently considers, or nil
// if there aren't enough yet to judge.
func (m MinVariation) window(ctx Context) []Sample {
	all := ctx.History(m.historyKey())
	switch m.Interval {
	case IntervalSample:
		n := int(m.Value)
		if n <= 0 || len(all) < n {
			return nil
		}
		return all[len(all)-n:]
	case IntervalPeriod:
		if len(all) == 0 {
			return nil
		}
		cutoff := all[len(all)-1].At.Add(-time.Duration(m.Value * float64(time.Second)))
		var out []Sample
		for _, s := range all {
			if !s.At.Before(cutoff) {
				out = append(out, s)
			}
		}
		return out
	default:
		return all
	}
}

func coefficientOfVariation(samples []Sample) (cv float64, ok bool) {
	if len(samples) < 2 {
		return 0, false
	}
	var sum float64
	for _, s := range samples {
		sum += s.Value
	}
	mean := sum / float64(len(samples))

	var sq float64
	for _, s := range samples {
		d := s.Value - mean
		sq += d * d
	}
	stddev := math.Sqrt(sq / float64(len(samples)))

	if mean == 0 {
		return stddev, true
	}
	return stddev / math.Abs(mean), true
}

func (m MinVariation) IsTermination(ctx Context) bool {
	samples := m.window(ctx)
	cv, ok := coefficientOfVariation(samples)
	if !ok {
		return false
	}
	return cv < m.Threshold
}

// Estimate reports how close the tracked metric is to the stagnation
// threshold: 0 far from stagnating, approaching 1 as cv approaches (or
// passes) Threshold.
func (m MinVariation) Estimate(ctx Context) float64 {
	samples := m.window(ctx)
	cv, ok := coefficientOfVariation(samples)
	if !ok || m.Threshold <= 0 {
		return 0
	}
	return clamp01(1 - cv/m.Threshold)
}
