package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRandUniformIntBounds(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 100; i++ {
		v := r.UniformInt(3, 3)
		require.Equal(t, 3, v)
	}
	for i := 0; i < 100; i++ {
		v := r.UniformInt(1, 5)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 5)
	}
}

func TestRandWeightedDegeneratesToZeroOnNonPositiveTotal(t *testing.T) {
	r := NewRandom(1)
	require.Equal(t, 0, r.Weighted([]float64{0, 0, 0}))
}

func TestRandCloneIsDeterministicForSameSeed(t *testing.T) {
	a := NewRandom(42)
	b := NewRandom(42)

	ca := a.Clone()
	cb := b.Clone()

	for i := 0; i < 10; i++ {
		require.Equal(t, ca.UniformInt(0, 1_000_000), cb.UniformInt(0, 1_000_000))
	}
}

func TestTimeQuotaReachedAfterLimit(t *testing.T) {
	q := NewTimeQuota(10 * time.Millisecond)
	require.False(t, q.IsReached())
	time.Sleep(20 * time.Millisecond)
	require.True(t, q.IsReached())
	require.Equal(t, time.Duration(0), q.Remaining())
}

func TestTimeQuotaNilIsNeverReached(t *testing.T) {
	var q *TimeQuota
	require.False(t, q.IsReached())
	require.Equal(t, time.Duration(0), q.Remaining())
}

func TestNewEnvironmentDefaults(t *testing.T) {
	env := NewEnvironment(1, NewTimeQuota(time.Second), nil, nil)
	require.NotNil(t, env.Logger)
	require.NotNil(t, env.Random)
	require.NotNil(t, env.Metrics)
}
