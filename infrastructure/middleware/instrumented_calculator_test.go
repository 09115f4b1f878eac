package middleware

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustickingdom/talentcalc/infrastructure/scoring"
	"github.com/rustickingdom/talentcalc/internal/domain"
	"github.com/rustickingdom/talentcalc/internal/ports"
)

// recordingMetrics is an in-memory MetricsCollector for assertions.
type recordingMetrics struct {
	mu         sync.Mutex
	latencies  []string
	counters   map[string]float64
	gauges     map[string]float64
	histograms map[string][]float64
	labels     []map[string]string
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		counters:   make(map[string]float64),
		gauges:     make(map[string]float64),
		histograms: make(map[string][]float64),
	}
}

func (r *recordingMetrics) RecordLatency(op string, _ time.Duration, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latencies = append(r.latencies, op)
	r.labels = append(r.labels, labels)
}

func (r *recordingMetrics) RecordCounter(metric string, v float64, _ map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[metric] += v
}

func (r *recordingMetrics) RecordGauge(metric string, v float64, _ map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gauges[metric] = v
}

func (r *recordingMetrics) RecordHistogram(metric string, v float64, _ map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.histograms[metric] = append(r.histograms[metric], v)
}

var _ ports.MetricsCollector = (*recordingMetrics)(nil)

func scenarioSheet(t *testing.T) domain.Sheet {
	t.Helper()
	panel, err := domain.NewPanel(1).WithField(1, domain.FieldCreativity, "8")
	require.NoError(t, err)
	panel, err = panel.WithField(1, domain.FieldQuality, "6")
	require.NoError(t, err)
	panel = panel.WithCriterion(1, 0, "4")

	audience, err := domain.Audience{}.WithVoterCount(domain.TierFull, "10")
	require.NoError(t, err)
	audience, err = audience.WithTotalPoints(domain.TierFull, "70")
	require.NoError(t, err)

	return domain.Sheet{Panel: panel, Audience: audience}
}

// TestInstrumentedCalculator_PassesThroughResult verifies the decorator
// returns exactly what the wrapped engine computes.
func TestInstrumentedCalculator_PassesThroughResult(t *testing.T) {
	engine, err := scoring.NewEngine(scoring.DefaultConfig())
	require.NoError(t, err)
	metrics := newRecordingMetrics()

	calc := NewInstrumentedCalculator(engine, metrics, "weighted")
	got := calc.Calculate(context.Background(), scenarioSheet(t))

	assert.Equal(t, 6.25, got.FinalScore)
	assert.Equal(t, []float64{6}, got.JudgeAverages())

	assert.Equal(t, []string{"calculate"}, metrics.latencies)
	assert.Equal(t, "weighted", metrics.labels[0]["mode"])
	assert.Equal(t, "ok", metrics.labels[0]["status"])
	assert.Equal(t, 1.0, metrics.counters[MetricCalculations])
	assert.Equal(t, 6.25, metrics.gauges[MetricFinalScore])
	assert.Equal(t, 1.0, metrics.gauges[MetricJudgeCount])
	assert.Equal(t, []float64{1.75}, metrics.histograms[MetricAudienceScore])
}

// TestInstrumentedCalculator_DegenerateResult verifies NaN scores are
// counted as degenerate and not observed in histograms.
func TestInstrumentedCalculator_DegenerateResult(t *testing.T) {
	engine, err := scoring.NewEngine(scoring.DefaultConfig())
	require.NoError(t, err)
	metrics := newRecordingMetrics()

	calc := NewInstrumentedCalculator(engine, metrics, "weighted")
	got := calc.Calculate(context.Background(), domain.Sheet{})

	assert.True(t, math.IsNaN(got.FinalScore))
	assert.Equal(t, "degenerate", metrics.labels[0]["status"])
	assert.NotContains(t, metrics.histograms, MetricFinalScore)
	assert.Contains(t, metrics.histograms, MetricAudienceScore)
}

// TestInstrumentedCalculator_NilMetrics verifies tracing works without a
// metrics collector.
func TestInstrumentedCalculator_NilMetrics(t *testing.T) {
	inner := ports.CalculatorFunc(func(context.Context, domain.Sheet) domain.CalculationResult {
		return domain.NewCalculationResult(2, 1, 1, 1, 4, nil)
	})

	calc := NewInstrumentedCalculator(inner, nil, "classic")

	assert.NotPanics(t, func() {
		got := calc.Calculate(context.Background(), domain.NewSheet())
		assert.Equal(t, 2.0, got.FinalScore)
	})
}
