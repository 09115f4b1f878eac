package middleware

import (
	"context"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rustickingdom/talentcalc/internal/domain"
	"github.com/rustickingdom/talentcalc/internal/ports"
)

var _ ports.Calculator = (*InstrumentedCalculator)(nil)

// InstrumentedCalculator decorates a Calculator with an OpenTelemetry span
// and metrics for every calculation. It never alters the result.
type InstrumentedCalculator struct {
	next    ports.Calculator
	metrics ports.MetricsCollector
	mode    string
	tracer  trace.Tracer
	now     func() time.Time
}

// NewInstrumentedCalculator wraps next. metrics may be nil, in which case
// only tracing is performed. mode labels every recorded metric.
func NewInstrumentedCalculator(next ports.Calculator, metrics ports.MetricsCollector, mode string) *InstrumentedCalculator {
	return &InstrumentedCalculator{
		next:    next,
		metrics: metrics,
		mode:    mode,
		tracer:  otel.Tracer("talentcalc/score-engine"),
		now:     time.Now,
	}
}

// Calculate implements ports.Calculator.
func (c *InstrumentedCalculator) Calculate(ctx context.Context, sheet domain.Sheet) domain.CalculationResult {
	ctx, span := c.tracer.Start(ctx, "ScoreEngine.Calculate")
	defer span.End()

	c.addInputAttributes(span, sheet)

	start := c.now()
	result := c.next.Calculate(ctx, sheet)
	elapsed := c.now().Sub(start)

	span.SetAttributes(
		attribute.Float64("score.final", result.FinalScore),
		attribute.Float64("score.judges", result.JudgesScore),
		attribute.Float64("score.audience", result.AudienceScore),
	)

	status := "ok"
	if math.IsNaN(result.FinalScore) {
		status = "degenerate"
		span.AddEvent("score.degenerate", trace.WithAttributes(
			attribute.Int("judges.count", sheet.Panel.Len()),
		))
		span.SetStatus(codes.Error, "final score is not a number")
	} else {
		span.SetStatus(codes.Ok, "calculation completed")
	}

	c.updateMetrics(result, sheet, elapsed, status)
	return result
}

// addInputAttributes records the size of the calculation on the span.
func (c *InstrumentedCalculator) addInputAttributes(span trace.Span, sheet domain.Sheet) {
	criteria := 0
	halfWeight := 0
	for _, j := range sheet.Panel.Judges() {
		criteria += len(j.SpecialCriteria)
		if j.HalfWeight {
			halfWeight++
		}
	}
	span.SetAttributes(
		attribute.String("score.mode", c.mode),
		attribute.Int("judges.count", sheet.Panel.Len()),
		attribute.Int("judges.half_weight", halfWeight),
		attribute.Int("judges.special_criteria", criteria),
	)
}

// updateMetrics sends the calculation outcome to the metrics collector.
// NaN scores are counted but not observed, since they have no bucket.
func (c *InstrumentedCalculator) updateMetrics(
	result domain.CalculationResult,
	sheet domain.Sheet,
	elapsed time.Duration,
	status string,
) {
	if c.metrics == nil {
		return
	}

	labels := map[string]string{"mode": c.mode, "status": status}
	c.metrics.RecordLatency("calculate", elapsed, labels)
	c.metrics.RecordCounter(MetricCalculations, 1, labels)
	c.metrics.RecordGauge(MetricJudgeCount, float64(sheet.Panel.Len()), labels)

	scores := map[string]float64{
		MetricFinalScore:    result.FinalScore,
		MetricJudgesScore:   result.JudgesScore,
		MetricAudienceScore: result.AudienceScore,
	}
	for name, v := range scores {
		if math.IsNaN(v) {
			continue
		}
		c.metrics.RecordGauge(name, v, labels)
		c.metrics.RecordHistogram(name, v, labels)
	}
}
