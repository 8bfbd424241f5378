package telemetry

import "time"

// TimeQuota is the sole cancellation signal threaded through the solver
// (spec.md §5): a wall-clock deadline polled cooperatively at generation
// boundaries and between initial seeds. Its fields are
// set once at construction and only ever read afterward, so concurrent
// IsReached calls from parallel workers need no locking.
type TimeQuota struct {
	startedAt time.Time
	limit     time.Duration
}

// NewTimeQuota starts a quota with the given wall-clock budget.
func NewTimeQuota(limit time.Duration) *TimeQuota {
	return &TimeQuota{startedAt: time.Now(), limit: limit}
}

// IsReached reports whether the budget has been exceeded. A nil quota is
// never reached, so callers that construct a Driver without a time limit
// don't need a nil check at every poll site.
func (q *TimeQuota) IsReached() bool {
	if q == nil || q.limit <= 0 {
		return false
	}
	return time.Since(q.startedAt) >= q.limit
}

// Elapsed returns how much wall-clock time has passed since the quota
// started.
func (q *TimeQuota) Elapsed() time.Duration {
	if q == nil {
		return 0
	}
	return time.Since(q.startedAt)
}

// Remaining returns the budget left, floored at zero.
func (q *TimeQuota) Remaining() time.Duration {
	if q == nil || q.limit <= 0 {
		return 0
	}
	left := q.limit - q.Elapsed()
	if left < 0 {
		return 0
	}
	return left
}
