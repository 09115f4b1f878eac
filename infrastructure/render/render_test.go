package render

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustickingdom/talentcalc/infrastructure/i18n"
	"github.com/rustickingdom/talentcalc/internal/domain"
)

func scenarioResult() domain.CalculationResult {
	return domain.NewCalculationResult(6.25, 4.5, 1.75, 6, 7, []float64{6, 20.0 / 3.0})
}

// TestText_English verifies the report lists every figure with two decimals.
func TestText_English(t *testing.T) {
	var buf bytes.Buffer
	rc := i18n.RenderContext{Translator: i18n.NewTranslator(i18n.English), Theme: i18n.Light}

	require.NoError(t, Text(&buf, rc, scenarioResult(), DefaultWeights))
	out := buf.String()

	assert.Contains(t, out, "Rustic Got Talent Calculator")
	assert.Contains(t, out, "6.25 out of 10.00")
	assert.Contains(t, out, "Judges' Score (75%): 4.50")
	assert.Contains(t, out, "Audience Score (25%): 1.75")
	assert.Contains(t, out, "Judge 1: 6.00")
	assert.Contains(t, out, "Judge 2: 6.67")
	assert.Contains(t, out, "Overall Judges Average: 6.00")
	assert.Contains(t, out, "Audience Average: 7.00")
	assert.Contains(t, out, "• Final Score = Judges' Score + Audience Score")
	assert.Contains(t, out, "Regards from the Corp of Talents")
	assert.NotContains(t, out, "\x1b[", "no ANSI codes without colour")
}

// TestText_Arabic verifies labels come from the Arabic catalog.
func TestText_Arabic(t *testing.T) {
	var buf bytes.Buffer
	rc := i18n.RenderContext{Translator: i18n.NewTranslator(i18n.Arabic), Theme: i18n.Dark}

	require.NoError(t, Text(&buf, rc, scenarioResult(), DefaultWeights))

	assert.Contains(t, buf.String(), "النتيجة النهائية")
	assert.Contains(t, buf.String(), "متوسطات الحكام:")
	assert.Contains(t, buf.String(), "تحيات من مؤسسة المواهب")
}

// TestText_ColorFollowsTheme verifies headings use the theme's palette.
func TestText_ColorFollowsTheme(t *testing.T) {
	for _, theme := range []i18n.Theme{i18n.Light, i18n.Dark} {
		var buf bytes.Buffer
		rc := i18n.RenderContext{Translator: i18n.NewTranslator(i18n.English), Theme: theme, Color: true}

		require.NoError(t, Text(&buf, rc, scenarioResult(), DefaultWeights))

		assert.True(t, strings.HasPrefix(buf.String(), palettes[theme]["title"]), string(theme))
		assert.Contains(t, buf.String(), ansiReset)
	}
}

// TestText_NaN verifies the degenerate empty-panel result still renders.
func TestText_NaN(t *testing.T) {
	var buf bytes.Buffer
	rc := i18n.RenderContext{Translator: i18n.NewTranslator(i18n.English)}
	r := domain.NewCalculationResult(math.NaN(), math.NaN(), 1.75, math.NaN(), 7, nil)

	require.NoError(t, Text(&buf, rc, r, DefaultWeights))

	assert.Contains(t, buf.String(), "NaN out of 10.00")
	assert.Contains(t, buf.String(), "Audience Score (25%): 1.75")
}

// TestJSON verifies field names and null for non-finite values.
func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	r := domain.NewCalculationResult(math.NaN(), math.NaN(), 1.75, math.NaN(), 7, []float64{})

	require.NoError(t, JSON(&buf, r))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Nil(t, decoded["final_score"])
	assert.Equal(t, 1.75, decoded["audience_score"])
	assert.Equal(t, []any{}, decoded["judge_averages"])
}

// TestJSONBatch pairs sources with results and rejects length mismatches.
func TestJSONBatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONBatch(&buf, []string{"a.yaml"}, []domain.CalculationResult{scenarioResult()}))

	var decoded []struct {
		Source string         `json:"source"`
		Result map[string]any `json:"result"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "a.yaml", decoded[0].Source)
	assert.Equal(t, 6.25, decoded[0].Result["final_score"])

	assert.Error(t, JSONBatch(&buf, []string{"a", "b"}, nil))
}

// TestPrompt returns the pre-calculation hint.
func TestPrompt(t *testing.T) {
	rc := i18n.RenderContext{Translator: i18n.NewTranslator(i18n.English)}
	assert.Contains(t, Prompt(rc), "Calculate Result")
}

// TestSheet verifies inputs are listed as entered with blank values dashed.
func TestSheet(t *testing.T) {
	var buf bytes.Buffer
	rc := i18n.RenderContext{Translator: i18n.NewTranslator(i18n.English)}
	sheet := domain.Sheet{
		Panel: domain.PanelOf(
			domain.Judge{ID: 1, Creativity: "8", Quality: "6.5", SpecialCriteria: []string{"4", ""}, HalfWeight: true},
			domain.NewJudge(2),
		),
		Audience: domain.AudienceOf(domain.AudiencePool{}, domain.AudiencePool{VoterCount: "10", TotalPoints: "70"}),
	}

	require.NoError(t, Sheet(&buf, rc, sheet))
	out := buf.String()

	assert.Contains(t, out, "Number of Judges: 2")
	assert.Contains(t, out, "Judge 1 [Impact Level: Half Impact]")
	assert.Contains(t, out, "Judge 2 [Impact Level: Full Impact]")
	assert.Contains(t, out, "Quality (0-10): 6.5")
	assert.Contains(t, out, "Special Criteria: Criteria 1=4 Criteria 2=-")
	assert.Contains(t, out, "Number of Voters: 10")
	assert.Contains(t, out, "Total Points: 70")
}
