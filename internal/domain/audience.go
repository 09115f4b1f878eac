package domain

import "strings"

// Tier identifies one of the two audience voting pools.
type Tier string

// Audience pool tiers.
const (
	// TierHalf is the pool whose average counts at half weight.
	TierHalf Tier = "half"

	// TierFull is the pool whose average counts at full weight.
	TierFull Tier = "full"
)

// ParseTier resolves a case-insensitive tier name.
func ParseTier(name string) (Tier, bool) {
	switch t := Tier(strings.ToLower(strings.TrimSpace(name))); t {
	case TierHalf, TierFull:
		return t, true
	}
	return "", false
}

// AudiencePool records one population of audience voters. TotalPoints is the
// sum of every voter's 1-10 vote. Both fields hold raw, unvalidated text.
type AudiencePool struct {
	VoterCount  string `json:"voter_count"`
	TotalPoints string `json:"total_points"`
}

// Audience is the audience pool store. Like Panel it is an immutable value.
type Audience struct {
	half AudiencePool
	full AudiencePool
}

// AudienceOf builds an audience from two pool records.
func AudienceOf(half, full AudiencePool) Audience {
	return Audience{half: half, full: full}
}

// Half returns the half-weight pool.
func (a Audience) Half() AudiencePool { return a.half }

// Full returns the full-weight pool.
func (a Audience) Full() AudiencePool { return a.full }

// Pool returns the pool for tier.
func (a Audience) Pool(tier Tier) (AudiencePool, bool) {
	switch tier {
	case TierHalf:
		return a.half, true
	case TierFull:
		return a.full, true
	}
	return AudiencePool{}, false
}

func (a Audience) with(op string, tier Tier, fn func(*AudiencePool)) (Audience, error) {
	switch tier {
	case TierHalf:
		fn(&a.half)
	case TierFull:
		fn(&a.full)
	default:
		return a, NewFieldError(op, string(tier), ErrUnknownTier)
	}
	return a, nil
}

// WithVoterCount replaces the raw voter count of the named pool.
func (a Audience) WithVoterCount(tier Tier, value string) (Audience, error) {
	return a.with("set voters", tier, func(p *AudiencePool) { p.VoterCount = value })
}

// WithTotalPoints replaces the raw points total of the named pool.
func (a Audience) WithTotalPoints(tier Tier, value string) (Audience, error) {
	return a.with("set points", tier, func(p *AudiencePool) { p.TotalPoints = value })
}
