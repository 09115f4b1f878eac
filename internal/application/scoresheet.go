package application

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rustickingdom/talentcalc/internal/domain"
)

// rawValue keeps a YAML scalar exactly as written, whatever its type, so
// that numeric coercion happens in one place: the score engine.
type rawValue string

// UnmarshalYAML accepts any scalar. Mappings and sequences are rejected.
func (r *rawValue) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a single value", n.Line)
	}
	if n.ShortTag() == "!!null" {
		*r = ""
		return nil
	}
	*r = rawValue(n.Value)
	return nil
}

// ScoresheetFile is the YAML layout of a saved scoresheet.
type ScoresheetFile struct {
	// Judges lists the panel in order; IDs are assigned 1..n.
	Judges []JudgeEntry `yaml:"judges" validate:"dive"`

	// Audience holds the two voting pools.
	Audience AudienceEntry `yaml:"audience"`
}

// JudgeEntry is one judge in a scoresheet file.
type JudgeEntry struct {
	Creativity      rawValue   `yaml:"creativity"`
	Quality         rawValue   `yaml:"quality"`
	SpecialCriteria []rawValue `yaml:"special_criteria"`

	// Weight is "half" or "full"; empty means full.
	Weight string `yaml:"weight" validate:"omitempty,oneof=half full"`
}

// AudienceEntry holds both pools of a scoresheet file.
type AudienceEntry struct {
	Half PoolEntry `yaml:"half"`
	Full PoolEntry `yaml:"full"`
}

// PoolEntry is one audience pool in a scoresheet file.
type PoolEntry struct {
	Voters rawValue `yaml:"voters"`
	Points rawValue `yaml:"points"`
}

// scoresheetValidator validates scoresheet files and reports fields by
// their YAML names.
var scoresheetValidator = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// LoadScoresheetFile reads a scoresheet from a YAML file.
func LoadScoresheetFile(path string) (domain.Sheet, error) {
	// Clean the path to prevent directory traversal attacks.
	cleanPath := filepath.Clean(path)

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return domain.Sheet{}, fmt.Errorf("failed to read file: %w", err)
	}
	return LoadScoresheet(bytes.NewReader(data))
}

// LoadScoresheet reads a scoresheet from r. Unknown keys are rejected.
func LoadScoresheet(r io.Reader) (domain.Sheet, error) {
	var file ScoresheetFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Sheet{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return file.Sheet()
}

// Sheet validates the file and converts it to a domain snapshot.
func (f ScoresheetFile) Sheet() (domain.Sheet, error) {
	for i := range f.Judges {
		f.Judges[i].Weight = strings.ToLower(strings.TrimSpace(f.Judges[i].Weight))
	}
	if err := scoresheetValidator.Struct(f); err != nil {
		return domain.Sheet{}, scoresheetValidationError(err)
	}

	judges := make([]domain.Judge, len(f.Judges))
	for i, e := range f.Judges {
		criteria := make([]string, len(e.SpecialCriteria))
		for k, c := range e.SpecialCriteria {
			criteria[k] = string(c)
		}
		judges[i] = domain.Judge{
			ID:              i + 1,
			Creativity:      string(e.Creativity),
			Quality:         string(e.Quality),
			SpecialCriteria: criteria,
			HalfWeight:      e.Weight == string(domain.TierHalf),
		}
	}

	return domain.Sheet{
		Panel: domain.PanelOf(judges...),
		Audience: domain.AudienceOf(
			domain.AudiencePool{VoterCount: string(f.Audience.Half.Voters), TotalPoints: string(f.Audience.Half.Points)},
			domain.AudiencePool{VoterCount: string(f.Audience.Full.Voters), TotalPoints: string(f.Audience.Full.Points)},
		),
	}, nil
}

// scoresheetValidationError converts validator output to a domain error.
func scoresheetValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}
	ve := domain.NewValidationError("scoresheet")
	for _, fe := range verrs {
		// Drop the root type name so messages read "judges[1].weight".
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		switch fe.Tag() {
		case "oneof":
			ve.AddError(fmt.Sprintf("%s: %q must be one of %s", field, fe.Value(), fe.Param()))
		default:
			ve.AddError(fmt.Sprintf("%s: failed %s", field, fe.Tag()))
		}
	}
	return ve
}

// NewScoresheetFile converts a sheet back to its file layout, for saving a
// session.
func NewScoresheetFile(sheet domain.Sheet) ScoresheetFile {
	var f ScoresheetFile
	for _, j := range sheet.Panel.Judges() {
		e := JudgeEntry{
			Creativity: rawValue(j.Creativity),
			Quality:    rawValue(j.Quality),
			Weight:     string(domain.TierFull),
		}
		if j.HalfWeight {
			e.Weight = string(domain.TierHalf)
		}
		for _, c := range j.SpecialCriteria {
			e.SpecialCriteria = append(e.SpecialCriteria, rawValue(c))
		}
		f.Judges = append(f.Judges, e)
	}
	half, full := sheet.Audience.Half(), sheet.Audience.Full()
	f.Audience.Half = PoolEntry{Voters: rawValue(half.VoterCount), Points: rawValue(half.TotalPoints)}
	f.Audience.Full = PoolEntry{Voters: rawValue(full.VoterCount), Points: rawValue(full.TotalPoints)}
	return f
}

// SaveScoresheet writes sheet as YAML.
func SaveScoresheet(w io.Writer, sheet domain.Sheet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewScoresheetFile(sheet)); err != nil {
		return fmt.Errorf("failed to encode scoresheet: %w", err)
	}
	return enc.Close()
}
