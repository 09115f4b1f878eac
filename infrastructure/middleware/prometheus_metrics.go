// Package middleware provides cross-cutting concerns for the score calculator.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rustickingdom/talentcalc/internal/ports"
)

// Metric names understood by PrometheusMetrics. Any other name is routed to
// the generic operation counter, gauge or histogram.
const (
	MetricCalculations   = "calculations_total"
	MetricStoreMutations = "store_mutations_total"
	MetricFinalScore     = "final_score"
	MetricJudgesScore    = "judges_score"
	MetricAudienceScore  = "audience_score"
	MetricJudgeCount     = "judge_count"
)

// PrometheusMetrics implements the MetricsCollector interface using Prometheus.
// It tracks how often scores are calculated, how the session's inputs are
// edited, and the distribution of the scores produced.
type PrometheusMetrics struct {
	calculations     *prometheus.CounterVec
	storeMutations   *prometheus.CounterVec
	executionLatency *prometheus.HistogramVec
	operationCounter *prometheus.CounterVec
	scoreGauges      *prometheus.GaugeVec
	scoreHistogram   *prometheus.HistogramVec
}

// NewPrometheusMetrics creates a new PrometheusMetrics instance and registers
// all of its metrics with reg. Passing nil registers with the global
// Prometheus registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		calculations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "talentcalc_calculations_total",
				Help: "Total number of explicit score calculations.",
			},
			[]string{"mode", "status"},
		),
		storeMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "talentcalc_store_mutations_total",
				Help: "Total number of edits applied to the judge and audience stores.",
			},
			[]string{"operation", "status"},
		),

		// General execution metrics.
		executionLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "talentcalc_execution_duration_seconds",
				Help:    "Execution time of calculator operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "mode"},
		),
		operationCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "talentcalc_operations_total",
				Help: "Total number of other calculator operations.",
			},
			[]string{"operation", "mode"},
		),
		scoreGauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "talentcalc_last_value",
				Help: "Most recent value of each computed score.",
			},
			[]string{"metric", "mode"},
		),
		scoreHistogram: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "talentcalc_score_distribution",
				Help:    "Distribution of computed scores on the 0-10 scale.",
				Buckets: prometheus.LinearBuckets(0, 1, 11),
			},
			[]string{"metric", "mode"},
		),
	}
}

// label returns labels[key], or "unknown" when it is missing or empty.
func label(labels map[string]string, key string) string {
	if v := labels[key]; v != "" {
		return v
	}
	return "unknown"
}

// RecordLatency implements the MetricsCollector interface by recording
// execution latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(
	operation string,
	duration time.Duration,
	labels map[string]string,
) {
	pm.executionLatency.WithLabelValues(operation, label(labels, "mode")).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by incrementing
// Prometheus counters.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	switch metric {
	case MetricCalculations:
		pm.calculations.WithLabelValues(label(labels, "mode"), label(labels, "status")).Add(value)
	case MetricStoreMutations:
		pm.storeMutations.WithLabelValues(label(labels, "operation"), label(labels, "status")).Add(value)
	default:
		pm.operationCounter.WithLabelValues(metric, label(labels, "mode")).Add(value)
	}
}

// RecordGauge implements the MetricsCollector interface by setting
// Prometheus gauge values.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, labels map[string]string,
) {
	pm.scoreGauges.WithLabelValues(metric, label(labels, "mode")).Set(value)
}

// RecordHistogram implements the MetricsCollector interface by recording
// values in the score distribution histogram.
func (pm *PrometheusMetrics) RecordHistogram(
	metric string, value float64, labels map[string]string,
) {
	pm.scoreHistogram.WithLabelValues(metric, label(labels, "mode")).Observe(value)
}

// Compile-time verification that PrometheusMetrics implements MetricsCollector.
var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)
