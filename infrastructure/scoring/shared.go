// Package scoring implements the score engine that blends judges' ratings
// and audience votes into a contestant's final score.
package scoring

import (
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
)

// Mode selects which generation of the scoring rules the engine applies.
type Mode string

// Supported scoring modes.
const (
	// ModeWeighted honours per-judge weight flags and keeps the two audience
	// pools separate, scaling the half pool's average by HalfWeight.
	ModeWeighted Mode = "weighted"

	// ModeClassic ignores weight flags and merges both audience pools into
	// one before averaging.
	ModeClassic Mode = "classic"
)

// EmptyPanelPolicy decides what the judges' side yields when there are no
// judges at all.
type EmptyPanelPolicy string

// Supported empty panel policies.
const (
	// EmptyPanelNaN divides by zero and lets NaN flow into the judges'
	// score and the final score.
	EmptyPanelNaN EmptyPanelPolicy = "nan"

	// EmptyPanelZero treats the judges' average as 0.
	EmptyPanelZero EmptyPanelPolicy = "zero"
)

// Common errors returned when building an engine.
var (
	// ErrSharesDoNotSumToOne is returned when the judges' and audience
	// shares do not add up to 1.
	ErrSharesDoNotSumToOne = errors.New("judges_share and audience_share must sum to 1")
)

// shareTolerance is the slack allowed when checking that shares sum to 1.
const shareTolerance = 1e-9

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		cfg := sl.Current().Interface().(Config)
		if math.Abs(cfg.JudgesShare+cfg.AudienceShare-1) > shareTolerance {
			sl.ReportError(cfg.AudienceShare, "AudienceShare", "audience_share", "sharesum", "")
		}
	}, Config{})
	return v
}
