package termination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeContext struct {
	generation   int
	elapsed      time.Duration
	quotaReached bool
	history      map[string][]Sample
}

func (f *fakeContext) Generation() int           { return f.generation }
func (f *fakeContext) Elapsed() time.Duration     { return f.elapsed }
func (f *fakeContext) QuotaReached() bool         { return f.quotaReached }
func (f *fakeContext) History(key string) []Sample { return f.history[key] }

func TestMaxGenerationTriggersAtLimit(t *testing.T) {
	term := MaxGeneration{Limit: 10}
	ctx := &fakeContext{generation: 9}
	require.False(t, term.IsTermination(ctx))
	ctx.generation = 10
	require.True(t, term.IsTermination(ctx))
	require.InDelta(t, 1.0, term.Estimate(ctx), 1e-9)
}

func TestMaxTimeTriggersOnQuotaOrLimit(t *testing.T) {
	term := MaxTime{Limit: time.Second}
	ctx := &fakeContext{elapsed: 500 * time.Millisecond}
	require.False(t, term.IsTermination(ctx))

	ctx.quotaReached = true
	require.True(t, term.IsTermination(ctx))

	ctx.quotaReached = false
	ctx.elapsed = 2 * time.Second
	require.True(t, term.IsTermination(ctx))
}

func TestMinVariationSampleModeWaitsForWindow(t *testing.T) {
	term := MinVariation{Interval: IntervalSample, Value: 3, Threshold: 0.01, Key: "cost", IsGlobal: true}
	ctx := &fakeContext{history: map[string][]Sample{
		"global:cost": {{Value: 100}, {Value: 100}},
	}}
	require.False(t, term.IsTermination(ctx), "fewer samples than the window must not terminate")

	ctx.history["global:cost"] = []Sample{{Value: 100}, {Value: 100.001}, {Value: 99.999}}
	require.True(t, term.IsTermination(ctx))
}

func TestMinVariationDetectsVariation(t *testing.T) {
	term := MinVariation{Interval: IntervalSample, Value: 3, Threshold: 0.01, Key: "cost", IsGlobal: true}
	ctx := &fakeContext{history: map[string][]Sample{
		"global:cost": {{Value: 100}, {Value: 50}, {Value: 150}},
	}}
	require.False(t, term.IsTermination(ctx))
}

func TestMinVariationPeriodMode(t *testing.T) {
	now := time.Now()
	term := MinVariation{Interval: IntervalPeriod, Value: 10, Threshold: 0.5, Key: "cost", IsGlobal: false}
	ctx := &fakeContext{history: map[string][]Sample{
		"local:cost": {
			{Value: 100, At: now.Add(-20 * time.Second)}, // outside the 10s window
			{Value: 100, At: now.Add(-5 * time.Second)},
			{Value: 100, At: now},
		},
	}}
	require.True(t, term.IsTermination(ctx))
}

func TestCompositeTerminatesIfAnyChildDoes(t *testing.T) {
	comp := NewComposite(MaxGeneration{Limit: 1000}, MaxTime{Limit: time.Millisecond})
	ctx := &fakeContext{elapsed: time.Second}
	require.True(t, comp.IsTermination(ctx))
	require.InDelta(t, 1.0, comp.Estimate(ctx), 1e-9)
}
