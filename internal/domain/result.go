package domain

import "slices"

// CalculationResult is the read-only snapshot produced by one explicit
// calculation. JudgeAverages are the unweighted per-judge averages, in
// panel order; they are shown for display and are not the values summed
// into OverallJudgesAverage when any judge carries half weight.
type CalculationResult struct {
	FinalScore           float64 `json:"final_score"`
	JudgesScore          float64 `json:"judges_score"`
	AudienceScore        float64 `json:"audience_score"`
	OverallJudgesAverage float64 `json:"overall_judges_average"`
	AudienceAverage      float64 `json:"audience_average"`

	judgeAverages []float64
}

// NewCalculationResult assembles a result, copying judgeAverages.
func NewCalculationResult(final, judges, audience, overall, audienceAvg float64, judgeAverages []float64) CalculationResult {
	return CalculationResult{
		FinalScore:           final,
		JudgesScore:          judges,
		AudienceScore:        audience,
		OverallJudgesAverage: overall,
		AudienceAverage:      audienceAvg,
		judgeAverages:        slices.Clone(judgeAverages),
	}
}

// JudgeAverages returns a copy of the per-judge unweighted averages.
func (r CalculationResult) JudgeAverages() []float64 {
	return slices.Clone(r.judgeAverages)
}
