package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPanel_WithJudgeCount verifies resizing keeps retained judges, numbers
// new judges after the highest existing ID and ignores counts below one.
func TestPanel_WithJudgeCount(t *testing.T) {
	base, err := NewPanel(2).WithField(2, FieldCreativity, "7")
	require.NoError(t, err)

	tests := []struct {
		name    string
		count   int
		wantIDs []int
	}{
		{name: "grows with sequential ids", count: 4, wantIDs: []int{1, 2, 3, 4}},
		{name: "shrinks from the end", count: 1, wantIDs: []int{1}},
		{name: "same size is unchanged", count: 2, wantIDs: []int{1, 2}},
		{name: "zero is ignored", count: 0, wantIDs: []int{1, 2}},
		{name: "negative is ignored", count: -3, wantIDs: []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.WithJudgeCount(tt.count)

			ids := make([]int, 0, got.Len())
			for _, j := range got.Judges() {
				ids = append(ids, j.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, 2, base.Len(), "receiver must not change")
		})
	}

	t.Run("retained judges keep their values", func(t *testing.T) {
		grown := base.WithJudgeCount(3)
		j, ok := grown.Judge(2)
		require.True(t, ok)
		assert.Equal(t, "7", j.Creativity)

		fresh, ok := grown.Judge(3)
		require.True(t, ok)
		assert.Equal(t, NewJudge(3), fresh)
	})
}

// TestPanel_WithField covers scalar replacement, unknown judges and unknown
// field names.
func TestPanel_WithField(t *testing.T) {
	p := NewPanel(2)

	p, err := p.WithField(1, FieldQuality, "9.5")
	require.NoError(t, err)
	p, err = p.WithField(2, FieldWeight, "half")
	require.NoError(t, err)

	j1, _ := p.Judge(1)
	j2, _ := p.Judge(2)
	assert.Equal(t, "9.5", j1.Quality)
	assert.False(t, j1.HalfWeight)
	assert.True(t, j2.HalfWeight)

	same, err := p.WithField(42, FieldCreativity, "3")
	require.NoError(t, err)
	assert.True(t, same.Equal(p), "unknown judge id is a no-op")

	_, err = p.WithField(1, Field("charisma"), "3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownField))
}

// TestParseWeight checks the accepted spellings of the weight flag.
func TestParseWeight(t *testing.T) {
	for _, v := range []string{"half", "HALF", "true", "1", "yes", " on "} {
		assert.True(t, ParseWeight(v), v)
	}
	for _, v := range []string{"full", "false", "0", "", "no", "quarter"} {
		assert.False(t, ParseWeight(v), v)
	}
}

// TestParseField resolves field names case-insensitively.
func TestParseField(t *testing.T) {
	f, ok := ParseField(" Creativity ")
	assert.True(t, ok)
	assert.Equal(t, FieldCreativity, f)

	_, ok = ParseField("special")
	assert.False(t, ok)
}

// TestPanel_SpecialCriteria exercises add, update and remove of special
// criteria including the at-least-one rule.
func TestPanel_SpecialCriteria(t *testing.T) {
	t.Run("removing the sole criterion is rejected", func(t *testing.T) {
		p := NewPanel(1)
		got := p.WithoutCriterion(1, 0)

		j, _ := got.Judge(1)
		assert.Len(t, j.SpecialCriteria, 1)
	})

	t.Run("add then remove restores the sequence", func(t *testing.T) {
		p := NewPanel(1).WithCriterion(1, 0, "4")
		round := p.WithAddedCriterion(1).WithoutCriterion(1, 1)

		assert.True(t, round.Equal(p))
		j, _ := round.Judge(1)
		assert.Equal(t, []string{"4"}, j.SpecialCriteria)
	})

	t.Run("update replaces only the indexed entry", func(t *testing.T) {
		p := NewPanel(1).WithAddedCriterion(1).WithAddedCriterion(1).WithCriterion(1, 1, "8")

		j, _ := p.Judge(1)
		assert.Equal(t, []string{"", "8", ""}, j.SpecialCriteria)
	})

	t.Run("remove from the middle", func(t *testing.T) {
		p := NewPanel(1).
			WithCriterion(1, 0, "1").
			WithAddedCriterion(1).WithCriterion(1, 1, "2").
			WithAddedCriterion(1).WithCriterion(1, 2, "3")

		j, _ := p.WithoutCriterion(1, 1).Judge(1)
		assert.Equal(t, []string{"1", "3"}, j.SpecialCriteria)
	})

	t.Run("out of range indexes are ignored", func(t *testing.T) {
		p := NewPanel(1).WithAddedCriterion(1)

		assert.True(t, p.WithCriterion(1, 5, "9").Equal(p))
		assert.True(t, p.WithoutCriterion(1, -1).Equal(p))
		assert.True(t, p.WithoutCriterion(1, 2).Equal(p))
	})

	t.Run("mutations do not leak into earlier snapshots", func(t *testing.T) {
		before := NewPanel(1)
		after := before.WithCriterion(1, 0, "6")

		j, _ := before.Judge(1)
		assert.Equal(t, []string{""}, j.SpecialCriteria)
		assert.False(t, before.Equal(after))
	})
}

// TestPanelOf ensures imported judges get at least one criterion and are
// copied rather than aliased.
func TestPanelOf(t *testing.T) {
	criteria := []string{"5"}
	p := PanelOf(Judge{ID: 1, SpecialCriteria: criteria}, Judge{ID: 2})
	criteria[0] = "changed"

	j1, _ := p.Judge(1)
	j2, _ := p.Judge(2)
	assert.Equal(t, []string{"5"}, j1.SpecialCriteria)
	assert.Equal(t, []string{""}, j2.SpecialCriteria)
}
