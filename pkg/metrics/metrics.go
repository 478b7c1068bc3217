package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ezyvoyage_pipeline_runs_total",
			Help: "Total number of pipeline runs by use case and outcome",
		},
		[]string{"use_case", "outcome"},
	)

	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ezyvoyage_pipeline_duration_seconds",
			Help:    "Duration of pipeline runs in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"use_case"},
	)

	AdapterFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ezyvoyage_adapter_failures_total",
			Help: "Total number of failed external adapter calls",
		},
		[]string{"adapter"},
	)
)

// ObservePipeline records one finished run.
func ObservePipeline(useCase, outcome string, elapsed time.Duration) {
	PipelineRuns.WithLabelValues(useCase, outcome).Inc()
	PipelineDuration.WithLabelValues(useCase).Observe(elapsed.Seconds())
}

func AdapterFailed(adapter string) {
	AdapterFailures.WithLabelValues(adapter).Inc()
}

// BreakerState is 0 closed, 1 half-open, 2 open.
var BreakerState = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "ezyvoyage_circuit_breaker_state",
		Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
	},
	[]string{"name"},
)
