// Package domain contains pure, dependency-free domain models and types
// for the talent-show score calculator.
package domain

import (
	"slices"
	"strings"
)

// Field names a scalar judge field that can be replaced with WithField.
type Field string

// Judge fields accepted by Panel.WithField.
const (
	FieldCreativity Field = "creativity"
	FieldQuality    Field = "quality"
	FieldWeight     Field = "weight"
)

// ParseField resolves a case-insensitive field name.
func ParseField(name string) (Field, bool) {
	switch f := Field(strings.ToLower(strings.TrimSpace(name))); f {
	case FieldCreativity, FieldQuality, FieldWeight:
		return f, true
	}
	return "", false
}

// Judge is one scoring participant. Ratings are kept as the raw text the
// user entered; they are coerced to numbers only when a score is calculated.
type Judge struct {
	// ID is the 1-based identifier assigned by creation order.
	ID int `json:"id"`

	// Creativity is the raw 0-10 creativity rating.
	Creativity string `json:"creativity"`

	// Quality is the raw 0-10 quality rating.
	Quality string `json:"quality"`

	// SpecialCriteria holds the judge's additional raw 0-10 ratings.
	// It always has at least one entry.
	SpecialCriteria []string `json:"special_criteria"`

	// HalfWeight selects a 0.5 multiplier for this judge's contribution to
	// the overall judges' average instead of the full 1.0.
	HalfWeight bool `json:"half_weight"`
}

// NewJudge returns a judge with empty ratings and a single empty special
// criterion.
func NewJudge(id int) Judge {
	return Judge{ID: id, SpecialCriteria: []string{""}}
}

// clone returns a copy that shares no memory with j.
func (j Judge) clone() Judge {
	j.SpecialCriteria = slices.Clone(j.SpecialCriteria)
	return j
}

// ParseWeight interprets the raw text of the weight flag. Anything that is
// not recognisably "half" selects full weight.
func ParseWeight(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "half", "true", "1", "yes", "on":
		return true
	}
	return false
}

// Panel is the judge record store. It is an immutable value: every
// mutation returns a new Panel and leaves the receiver untouched.
type Panel struct {
	judges []Judge
}

// NewPanel creates a panel with n default judges numbered 1..n.
// Values of n below 1 produce an empty panel.
func NewPanel(n int) Panel {
	judges := make([]Judge, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		judges = append(judges, NewJudge(i))
	}
	return Panel{judges: judges}
}

// PanelOf builds a panel from existing judge records, copying them.
func PanelOf(judges ...Judge) Panel {
	out := make([]Judge, len(judges))
	for i, j := range judges {
		out[i] = j.clone()
		if len(out[i].SpecialCriteria) == 0 {
			out[i].SpecialCriteria = []string{""}
		}
	}
	return Panel{judges: out}
}

// Len returns the number of judges.
func (p Panel) Len() int { return len(p.judges) }

// Judges returns a deep copy of the judge list in order.
func (p Panel) Judges() []Judge {
	out := make([]Judge, len(p.judges))
	for i, j := range p.judges {
		out[i] = j.clone()
	}
	return out
}

// Judge returns a copy of the judge with the given ID.
func (p Panel) Judge(id int) (Judge, bool) {
	if i := p.index(id); i >= 0 {
		return p.judges[i].clone(), true
	}
	return Judge{}, false
}

func (p Panel) index(id int) int {
	return slices.IndexFunc(p.judges, func(j Judge) bool { return j.ID == id })
}

// update applies fn to a copy of the matching judge. Unknown IDs leave the
// panel as it was.
func (p Panel) update(id int, fn func(*Judge)) Panel {
	i := p.index(id)
	if i < 0 {
		return p
	}
	next := p.Judges()
	fn(&next[i])
	return Panel{judges: next}
}

// WithJudgeCount resizes the panel. Counts below 1 are ignored. New judges
// get IDs continuing from the current highest ID; shrinking drops judges
// from the end and retained judges keep their values.
func (p Panel) WithJudgeCount(n int) Panel {
	if n < 1 {
		return p
	}
	if n <= len(p.judges) {
		return Panel{judges: p.Judges()[:n]}
	}

	next := p.Judges()
	nextID := 0
	for _, j := range next {
		nextID = max(nextID, j.ID)
	}
	for len(next) < n {
		nextID++
		next = append(next, NewJudge(nextID))
	}
	return Panel{judges: next}
}

// WithField replaces one scalar field on the judge matching id.
// The weight field accepts the forms understood by ParseWeight.
func (p Panel) WithField(id int, field Field, value string) (Panel, error) {
	switch field {
	case FieldCreativity:
		return p.update(id, func(j *Judge) { j.Creativity = value }), nil
	case FieldQuality:
		return p.update(id, func(j *Judge) { j.Quality = value }), nil
	case FieldWeight:
		return p.WithHalfWeight(id, ParseWeight(value)), nil
	default:
		return p, NewFieldError("update field", string(field), ErrUnknownField)
	}
}

// WithHalfWeight sets the weight flag on the judge matching id.
func (p Panel) WithHalfWeight(id int, half bool) Panel {
	return p.update(id, func(j *Judge) { j.HalfWeight = half })
}

// WithCriterion replaces the special criterion at index (0-based).
// Out-of-range indexes are ignored.
func (p Panel) WithCriterion(id, index int, value string) Panel {
	return p.update(id, func(j *Judge) {
		if index >= 0 && index < len(j.SpecialCriteria) {
			j.SpecialCriteria[index] = value
		}
	})
}

// WithAddedCriterion appends an empty special criterion.
func (p Panel) WithAddedCriterion(id int) Panel {
	return p.update(id, func(j *Judge) {
		j.SpecialCriteria = append(j.SpecialCriteria, "")
	})
}

// WithoutCriterion removes the special criterion at index. Removing the last
// remaining criterion is rejected, as are out-of-range indexes.
func (p Panel) WithoutCriterion(id, index int) Panel {
	i := p.index(id)
	if i < 0 {
		return p
	}
	n := len(p.judges[i].SpecialCriteria)
	if n <= 1 || index < 0 || index >= n {
		return p
	}
	return p.update(id, func(j *Judge) {
		j.SpecialCriteria = slices.Delete(j.SpecialCriteria, index, index+1)
	})
}

// Equal reports whether two panels hold the same judges with the same values.
func (p Panel) Equal(other Panel) bool {
	return slices.EqualFunc(p.judges, other.judges, func(a, b Judge) bool {
		return a.ID == b.ID &&
			a.Creativity == b.Creativity &&
			a.Quality == b.Quality &&
			a.HalfWeight == b.HalfWeight &&
			slices.Equal(a.SpecialCriteria, b.SpecialCriteria)
	})
}
