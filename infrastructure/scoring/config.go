package scoring

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds the weighting rules of the contest. The defaults are the
// fixed rules of the show; every field can be overridden from YAML for
// rehearsals or other formats.
type Config struct {
	// JudgesShare is the fraction of the final score owed to the judges.
	JudgesShare float64 `yaml:"judges_share" json:"judges_share" validate:"min=0,max=1"`

	// AudienceShare is the fraction owed to the audience. JudgesShare and
	// AudienceShare must sum to 1.
	AudienceShare float64 `yaml:"audience_share" json:"audience_share" validate:"min=0,max=1"`

	// HalfWeight is the multiplier applied to half-weight judges and to the
	// half-weight audience pool.
	HalfWeight float64 `yaml:"half_weight" json:"half_weight" validate:"min=0,max=1"`

	// EmptyPanel decides the judges' average when no judges exist.
	EmptyPanel EmptyPanelPolicy `yaml:"empty_panel" json:"empty_panel" validate:"required,oneof=nan zero"`

	// Mode selects weighted or classic rules.
	Mode Mode `yaml:"mode" json:"mode" validate:"required,oneof=weighted classic"`
}

// DefaultConfig returns the contest's standard rules: 75% judges, 25%
// audience, half weight of 0.5, weighted mode, and NaN for an empty panel.
func DefaultConfig() Config {
	return Config{
		JudgesShare:   0.75,
		AudienceShare: 0.25,
		HalfWeight:    0.5,
		EmptyPanel:    EmptyPanelNaN,
		Mode:          ModeWeighted,
	}
}

// Validate checks the configuration against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "sharesum" {
					return fmt.Errorf("configuration validation failed: %w (got %.4f + %.4f)",
						ErrSharesDoNotSumToOne, c.JudgesShare, c.AudienceShare)
				}
			}
		}
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
