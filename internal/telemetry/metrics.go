package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the evolution driver's and population's Prometheus
// instrumentation, wired the way dshills-langgraph-go's
// graph.PrometheusMetrics wires its engine metrics: a factory bound to
// an injected prometheus.Registerer, gauges for point-in-time state,
// histograms for durations, counters for cumulative totals.
type Metrics struct {
	generation          prometheus.Gauge
	populationSize       prometheus.Gauge
	generationDuration   prometheus.Histogram
	insertionDuration    prometheus.Histogram
	unassignedTotal      prometheus.Gauge
	operatorInvocations  *prometheus.CounterVec
}

// NewMetrics registers every vrpevo_ metric against registerer. A nil
// registerer gets a fresh, private prometheus.Registry rather than
// prometheus.DefaultRegisterer, so building more than one Driver (as
// tests do) never panics on duplicate registration.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.NewRegistry()
	}
	factory := promauto.With(registerer)

	return &Metrics{
		generation: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "vrpevo",
			Name:      "generation",
			Help:      "Current generation number of the running evolution driver.",
		}),
		populationSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "vrpevo",
			Name:      "population_size",
			Help:      "Number of individuals currently held in the population archive.",
		}),
		generationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vrpevo",
			Name:      "generation_duration_seconds",
			Help:      "Wall-clock duration of one generation of the evolution loop.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
		}),
		insertionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vrpevo",
			Name:      "insertion_evaluation_duration_seconds",
			Help:      "Wall-clock duration of a single insertion-evaluator call.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
		}),
		unassignedTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "vrpevo",
			Name:      "unassigned_jobs",
			Help:      "Number of jobs unassigned in the best individual of the current generation.",
		}),
		operatorInvocations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vrpevo",
			Name:      "operator_invocations_total",
			Help:      "Cumulative count of hyper-heuristic operator applications, by kind.",
		}, []string{"kind"}),
	}
}

// ObserveGeneration records one generation's bookkeeping: the generation
// counter, population size, its wall-clock duration, and the best
// individual's unassigned-job count.
func (m *Metrics) ObserveGeneration(generation, populationSize, unassigned int, duration time.Duration) {
	if m == nil {
		return
	}
	m.generation.Set(float64(generation))
	m.populationSize.Set(float64(populationSize))
	m.generationDuration.Observe(duration.Seconds())
	m.unassignedTotal.Set(float64(unassigned))
}

// ObserveInsertion records the duration of one insertion-evaluator call.
func (m *Metrics) ObserveInsertion(duration time.Duration) {
	if m == nil {
		return
	}
	m.insertionDuration.Observe(duration.Seconds())
}

// IncrementOperator records one application of a named hyper-heuristic
// operator ("search" or "diversify").
func (m *Metrics) IncrementOperator(kind string) {
	if m == nil {
		return
	}
	m.operatorInvocations.WithLabelValues(kind).Inc()
}
