// Package testutils provides test data generators for the calculator's test
// suites and load tooling. These components are intended for internal use
// and are not part of the public API.
package testutils

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/rustickingdom/talentcalc/internal/domain"
)

// Generator limits.
const (
	MaxGeneratedJudges   = 7
	MaxGeneratedCriteria = 3
	MaxGeneratedVoters   = 200
)

// malformedValues are inputs a hurried operator might type. The engine
// must score each of them as 0.
var malformedValues = []string{"", " ", "n/a", "seven", "8,5", "--1"}

// GeneratorOptions controls the shape of generated scoresheets.
type GeneratorOptions struct {
	// HalfWeightRate is the probability that a judge carries half weight.
	HalfWeightRate float64

	// MalformedRate is the probability that any one value is replaced by
	// malformed text.
	MalformedRate float64

	// EmptyPanelRate is the probability that a sheet has no judges at all.
	EmptyPanelRate float64
}

// DefaultGeneratorOptions mirrors a typical evening: a fifth of judges at
// half weight, occasional typos, and no empty panels.
var DefaultGeneratorOptions = GeneratorOptions{
	HalfWeightRate: 0.2,
	MalformedRate:  0.05,
}

// GenerateSampleScoresheets creates n random scoresheets. The seed controls
// randomization; use a fixed value for reproducible tests.
func GenerateSampleScoresheets(n int, seed int64, opts GeneratorOptions) []domain.Sheet {
	rng := rand.New(rand.NewSource(seed))
	sheets := make([]domain.Sheet, 0, n)
	for range n {
		sheets = append(sheets, generateSheet(rng, opts))
	}
	return sheets
}

// GenerateSampleScoresheetsDefault creates sheets with a time-based seed and
// the default options.
func GenerateSampleScoresheetsDefault(n int) []domain.Sheet {
	return GenerateSampleScoresheets(n, time.Now().UnixNano(), DefaultGeneratorOptions)
}

func generateSheet(rng *rand.Rand, opts GeneratorOptions) domain.Sheet {
	count := 1 + rng.Intn(MaxGeneratedJudges)
	if rng.Float64() < opts.EmptyPanelRate {
		count = 0
	}

	judges := make([]domain.Judge, count)
	for i := range judges {
		criteria := make([]string, 1+rng.Intn(MaxGeneratedCriteria))
		for k := range criteria {
			criteria[k] = rating(rng, opts)
		}
		judges[i] = domain.Judge{
			ID:              i + 1,
			Creativity:      rating(rng, opts),
			Quality:         rating(rng, opts),
			SpecialCriteria: criteria,
			HalfWeight:      rng.Float64() < opts.HalfWeightRate,
		}
	}

	return domain.Sheet{
		Panel:    domain.PanelOf(judges...),
		Audience: domain.AudienceOf(pool(rng, opts), pool(rng, opts)),
	}
}

// rating is a 0-10 value with at most one decimal.
func rating(rng *rand.Rand, opts GeneratorOptions) string {
	if rng.Float64() < opts.MalformedRate {
		return malformedValues[rng.Intn(len(malformedValues))]
	}
	return strconv.FormatFloat(float64(rng.Intn(101))/10, 'f', -1, 64)
}

// pool draws a voter count and a points total of 1-10 per voter.
func pool(rng *rand.Rand, opts GeneratorOptions) domain.AudiencePool {
	voters := rng.Intn(MaxGeneratedVoters + 1)
	points := 0
	for range voters {
		points += 1 + rng.Intn(10)
	}
	p := domain.AudiencePool{
		VoterCount:  strconv.Itoa(voters),
		TotalPoints: strconv.Itoa(points),
	}
	if rng.Float64() < opts.MalformedRate {
		p.TotalPoints = malformedValues[rng.Intn(len(malformedValues))]
	}
	return p
}

// ScoresheetStatistics summarizes a generated set.
type ScoresheetStatistics struct {
	Sheets           int
	Judges           int
	HalfWeightJudges int
	Criteria         int
	EmptyPanels      int
	MalformedValues  int
}

// ComputeScoresheetStatistics counts judges, criteria and malformed values
// across sheets.
func ComputeScoresheetStatistics(sheets []domain.Sheet) ScoresheetStatistics {
	stats := ScoresheetStatistics{Sheets: len(sheets)}
	for _, s := range sheets {
		judges := s.Panel.Judges()
		if len(judges) == 0 {
			stats.EmptyPanels++
		}
		stats.Judges += len(judges)
		for _, j := range judges {
			if j.HalfWeight {
				stats.HalfWeightJudges++
			}
			stats.Criteria += len(j.SpecialCriteria)
			stats.MalformedValues += countMalformed(j.Creativity, j.Quality)
			stats.MalformedValues += countMalformed(j.SpecialCriteria...)
		}
		half, full := s.Audience.Half(), s.Audience.Full()
		stats.MalformedValues += countMalformed(half.VoterCount, half.TotalPoints, full.VoterCount, full.TotalPoints)
	}
	return stats
}

func countMalformed(values ...string) int {
	n := 0
	for _, v := range values {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			n++
		}
	}
	return n
}
