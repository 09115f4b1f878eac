package scoring

import (
	"context"
	"math"

	"github.com/rustickingdom/talentcalc/internal/domain"
	"github.com/rustickingdom/talentcalc/internal/ports"
)

var _ ports.Calculator = (*Engine)(nil)

// Engine computes final scores from judges' ratings and audience votes.
//
// Algorithm: each judge's raw average is the mean of creativity, quality
// and the mean of the judge's special criteria. Judges flagged half weight
// contribute HalfWeight times their raw average to the overall judges'
// average, which is the plain mean over all judges. The audience average
// is the half pool's points-per-voter scaled by HalfWeight plus the full
// pool's points-per-voter. The final score is JudgesShare of the former
// plus AudienceShare of the latter.
//
// Every raw field is coerced with domain.Coerce, so malformed input never
// fails a calculation. Runtime is linear in the number of special criteria.
//
// Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	// config contains the validated weighting rules.
	config Config
}

// NewEngine creates an Engine after validating config.
func NewEngine(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Engine{config: config}, nil
}

// defaultEngine backs the package-level Calculate function.
var defaultEngine = &Engine{config: DefaultConfig()}

// Calculate scores judges and audience pools under DefaultConfig.
func Calculate(judges []domain.Judge, half, full domain.AudiencePool) domain.CalculationResult {
	return defaultEngine.Compute(judges, half, full)
}

// Config returns the engine's rules.
func (e *Engine) Config() Config { return e.config }

// Calculate implements ports.Calculator.
func (e *Engine) Calculate(_ context.Context, sheet domain.Sheet) domain.CalculationResult {
	return e.Compute(sheet.Panel.Judges(), sheet.Audience.Half(), sheet.Audience.Full())
}

// Compute is the core scoring procedure. It reads its arguments without
// modifying them and always returns a complete result; with no judges the
// judges' side is NaN or 0 depending on Config.EmptyPanel.
func (e *Engine) Compute(judges []domain.Judge, half, full domain.AudiencePool) domain.CalculationResult {
	judgeAverages := make([]float64, len(judges))
	var weightedSum float64
	for i, j := range judges {
		raw := RawAverage(j)
		judgeAverages[i] = raw
		weightedSum += raw * e.judgeWeight(j)
	}

	overall := e.overall(weightedSum, len(judges))
	judgesScore := overall * e.config.JudgesShare

	audienceAverage := e.audienceAverage(half, full)
	audienceScore := audienceAverage * e.config.AudienceShare

	return domain.NewCalculationResult(
		judgesScore+audienceScore,
		judgesScore,
		audienceScore,
		overall,
		audienceAverage,
		judgeAverages,
	)
}

func (e *Engine) judgeWeight(j domain.Judge) float64 {
	if j.HalfWeight && e.config.Mode == ModeWeighted {
		return e.config.HalfWeight
	}
	return 1
}

func (e *Engine) overall(weightedSum float64, n int) float64 {
	if n == 0 {
		if e.config.EmptyPanel == EmptyPanelZero {
			return 0
		}
		return math.NaN()
	}
	return weightedSum / float64(n)
}

func (e *Engine) audienceAverage(half, full domain.AudiencePool) float64 {
	if e.config.Mode == ModeClassic {
		return voterAverage(
			domain.Coerce(half.VoterCount)+domain.Coerce(full.VoterCount),
			domain.Coerce(half.TotalPoints)+domain.Coerce(full.TotalPoints),
		)
	}
	return PoolAverage(half)*e.config.HalfWeight + PoolAverage(full)
}

// RawAverage is a judge's unweighted average: the mean of creativity,
// quality and the mean of the special criteria.
func RawAverage(j domain.Judge) float64 {
	special := 0.0
	if n := len(j.SpecialCriteria); n > 0 {
		var sum float64
		for _, c := range j.SpecialCriteria {
			sum += domain.Coerce(c)
		}
		special = sum / float64(n)
	}
	return (domain.Coerce(j.Creativity) + domain.Coerce(j.Quality) + special) / 3
}

// PoolAverage is the mean points per voter of one pool, or 0 when the pool
// has no voters.
func PoolAverage(p domain.AudiencePool) float64 {
	return voterAverage(domain.Coerce(p.VoterCount), domain.Coerce(p.TotalPoints))
}

func voterAverage(voters, points float64) float64 {
	if voters > 0 {
		return points / voters
	}
	return 0
}
