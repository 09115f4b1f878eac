package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAudience_Setters verifies raw text replacement per tier and rejection
// of unknown tiers.
func TestAudience_Setters(t *testing.T) {
	var a Audience

	a, err := a.WithVoterCount(TierFull, "10")
	require.NoError(t, err)
	a, err = a.WithTotalPoints(TierFull, "70")
	require.NoError(t, err)
	a, err = a.WithTotalPoints(TierHalf, "not a number")
	require.NoError(t, err)

	assert.Equal(t, AudiencePool{VoterCount: "10", TotalPoints: "70"}, a.Full())
	assert.Equal(t, AudiencePool{TotalPoints: "not a number"}, a.Half())

	_, err = a.WithVoterCount(Tier("double"), "3")
	assert.True(t, errors.Is(err, ErrUnknownTier))

	pool, ok := a.Pool(TierFull)
	assert.True(t, ok)
	assert.Equal(t, "10", pool.VoterCount)
}

// TestParseTier resolves tier names case-insensitively.
func TestParseTier(t *testing.T) {
	tier, ok := ParseTier("HALF")
	assert.True(t, ok)
	assert.Equal(t, TierHalf, tier)

	_, ok = ParseTier("quarter")
	assert.False(t, ok)
}

// TestSheet_Equal compares snapshots by value.
func TestSheet_Equal(t *testing.T) {
	a := NewSheet()
	b := NewSheet()
	assert.True(t, a.Equal(b))

	b.Audience, _ = b.Audience.WithVoterCount(TierHalf, "1")
	assert.False(t, a.Equal(b))

	c := NewSheet()
	c.Panel = c.Panel.WithJudgeCount(4)
	assert.False(t, a.Equal(c))
	assert.Equal(t, DefaultJudgeCount, a.Panel.Len())
}
