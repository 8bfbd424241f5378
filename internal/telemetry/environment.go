// Package telemetry provides the solver's explicit environment
// collaborator (spec.md §9: "Environment (logger, RNG, quota) is an
// explicit collaborator threaded through ctx.environment()") — a
// structured logger, a seedable Random, a shared TimeQuota, and
// Prometheus metrics. None of it is global state; it is constructed once
// by internal/evolution.Builder and passed down explicitly.
package telemetry

import (
	"log/slog"

	"github.com/elektrokombinacija/vrpevo/internal/core"
	"github.com/prometheus/client_golang/prometheus"
)

// Environment bundles the solver's non-domain collaborators.
type Environment struct {
	Logger  *slog.Logger
	Random  core.Random
	Quota   *TimeQuota
	Metrics *Metrics
}

// NewEnvironment builds an Environment. A nil logger defaults to
// slog.Default(); a nil registerer gets a private Prometheus registry
// (see NewMetrics).
func NewEnvironment(seed int64, quota *TimeQuota, logger *slog.Logger, registerer prometheus.Registerer) *Environment {
	if logger == nil {
		logger = slog.Default()
	}
	return &Environment{
		Logger:  logger,
		Random:  NewRandom(seed),
		Quota:   quota,
		Metrics: NewMetrics(registerer),
	}
}
