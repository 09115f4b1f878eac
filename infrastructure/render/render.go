package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/template"

	"github.com/rustickingdom/talentcalc/infrastructure/i18n"
	"github.com/rustickingdom/talentcalc/internal/domain"
)

// Weights are the shares shown next to the breakdown, e.g. "Judges' Score (75%)".
type Weights struct {
	Judges   float64
	Audience float64
}

// DefaultWeights are the contest's standard 75/25 shares.
var DefaultWeights = Weights{Judges: 0.75, Audience: 0.25}

// reportData is the value the report template executes against.
type reportData struct {
	Result        domain.CalculationResult
	JudgeAverages []float64
	Weights       Weights
}

const reportTemplate = `{{style "title"}}{{t "title"}}{{reset}}
{{style "muted"}}{{t "subtitle"}}{{reset}}

{{style "heading"}}{{t "finalScore"}}{{reset}}
  {{style "score"}}{{num .Result.FinalScore}}{{reset}} {{t "outOf"}}

{{style "heading"}}{{t "scoreBreakdown"}}{{reset}}
  {{t "judgesScore"}} ({{pct .Weights.Judges}}): {{num .Result.JudgesScore}}
  {{t "audienceScore"}} ({{pct .Weights.Audience}}): {{num .Result.AudienceScore}}

{{style "heading"}}{{t "detailedCalculations"}}{{reset}}
  {{t "judgeAverages"}}
{{- range $i, $avg := .JudgeAverages}}
    {{t "judge"}} {{add $i 1}}: {{num $avg}}
{{- end}}
  {{t "overallJudgesAverage"}} {{num .Result.OverallJudgesAverage}}
  {{t "audienceAverage"}} {{num .Result.AudienceAverage}}

{{style "muted"}}{{t "calculationNote1"}}
{{t "calculationNote2"}}
{{t "calculationNote3"}}{{reset}}

{{t "corpsMessage"}}
`

// Text writes the localized report for result.
func Text(w io.Writer, rc i18n.RenderContext, result domain.CalculationResult, weights Weights) error {
	tmpl, err := template.New("report").Funcs(funcMap(rc)).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	data := reportData{
		Result:        result,
		JudgeAverages: result.JudgeAverages(),
		Weights:       weights,
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// sheetData is the value the inputs template executes against.
type sheetData struct {
	Judges []domain.Judge
	Half   domain.AudiencePool
	Full   domain.AudiencePool
}

const sheetTemplate = `{{style "heading"}}{{t "judgesConfig"}}{{reset}}
  {{t "numJudges"}} {{len .Judges}}
{{- range .Judges}}
  {{t "judge"}} {{.ID}} [{{t "impactToggle"}}: {{if .HalfWeight}}{{t "halfImpact"}}{{else}}{{t "fullImpact"}}{{end}}]
    {{t "creativity"}}: {{raw .Creativity}}
    {{t "quality"}}: {{raw .Quality}}
    {{t "specialCriteria"}}:{{range $i, $c := .SpecialCriteria}} {{t "criteria"}} {{add $i 1}}={{raw $c}}{{end}}
{{- end}}

{{style "heading"}}{{t "audienceHalfImpact"}}{{reset}}
  {{t "numVoters"}}: {{raw .Half.VoterCount}}
  {{t "totalPoints"}}: {{raw .Half.TotalPoints}}
{{style "heading"}}{{t "audienceFullImpact"}}{{reset}}
  {{t "numVoters"}}: {{raw .Full.VoterCount}}
  {{t "totalPoints"}}: {{raw .Full.TotalPoints}}
{{style "muted"}}{{t "voterDescription"}}{{reset}}
`

// Sheet writes the current inputs, labelled in the context's locale.
// Values are shown exactly as entered.
func Sheet(w io.Writer, rc i18n.RenderContext, sheet domain.Sheet) error {
	tmpl, err := template.New("sheet").Funcs(funcMap(rc)).Parse(sheetTemplate)
	if err != nil {
		return fmt.Errorf("parse sheet template: %w", err)
	}

	data := sheetData{
		Judges: sheet.Panel.Judges(),
		Half:   sheet.Audience.Half(),
		Full:   sheet.Audience.Full(),
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render sheet: %w", err)
	}
	return nil
}

// Prompt returns the message shown before any calculation has been made.
func Prompt(rc i18n.RenderContext) string {
	return rc.Translator.T(i18n.KeyEnterScores)
}

// jsonResult mirrors domain.CalculationResult with nullable numbers, since
// JSON cannot carry NaN or infinities.
type jsonResult struct {
	FinalScore           *float64   `json:"final_score"`
	JudgesScore          *float64   `json:"judges_score"`
	AudienceScore        *float64   `json:"audience_score"`
	OverallJudgesAverage *float64   `json:"overall_judges_average"`
	AudienceAverage      *float64   `json:"audience_average"`
	JudgeAverages        []*float64 `json:"judge_averages"`
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// newJSONResult converts a result to its JSON shape.
func newJSONResult(r domain.CalculationResult) jsonResult {
	avgs := r.JudgeAverages()
	out := jsonResult{
		FinalScore:           nullable(r.FinalScore),
		JudgesScore:          nullable(r.JudgesScore),
		AudienceScore:        nullable(r.AudienceScore),
		OverallJudgesAverage: nullable(r.OverallJudgesAverage),
		AudienceAverage:      nullable(r.AudienceAverage),
		JudgeAverages:        make([]*float64, len(avgs)),
	}
	for i, a := range avgs {
		out.JudgeAverages[i] = nullable(a)
	}
	return out
}

// JSON writes result as indented JSON. Non-finite numbers become null.
func JSON(w io.Writer, result domain.CalculationResult) error {
	return writeJSON(w, newJSONResult(result))
}

// JSONBatch writes several results, keyed by source name, as one JSON array.
func JSONBatch(w io.Writer, names []string, results []domain.CalculationResult) error {
	if len(names) != len(results) {
		return fmt.Errorf("render batch: %d names for %d results", len(names), len(results))
	}
	type entry struct {
		Source string     `json:"source"`
		Result jsonResult `json:"result"`
	}
	out := make([]entry, len(results))
	for i, r := range results {
		out[i] = entry{Source: names[i], Result: newJSONResult(r)}
	}
	return writeJSON(w, out)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
