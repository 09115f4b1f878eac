// Package application provides the orchestration for the score calculator:
// the single-user session, scoresheet and configuration loading, the
// interactive command interpreter, and batch scoring.
package application

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rustickingdom/talentcalc/infrastructure/middleware"
	"github.com/rustickingdom/talentcalc/internal/domain"
	"github.com/rustickingdom/talentcalc/internal/ports"
)

// Session holds one user's inputs and the result of their last explicit
// calculation. Edits replace the current sheet snapshot and never
// recompute; only Calculate produces a new result.
//
// A Session is meant to be driven by a single goroutine.
type Session struct {
	id      string
	calc    ports.Calculator
	metrics ports.MetricsCollector
	logger  *slog.Logger

	sheet      domain.Sheet
	calculated domain.Sheet
	result     *domain.CalculationResult
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger. The default is slog.Default().
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithMetrics records store edits in m.
func WithMetrics(m ports.MetricsCollector) SessionOption {
	return func(s *Session) { s.metrics = m }
}

// WithSheet starts the session from an existing sheet instead of
// domain.NewSheet().
func WithSheet(sheet domain.Sheet) SessionOption {
	return func(s *Session) { s.sheet = sheet }
}

// NewSession creates a session scored by calc.
func NewSession(calc ports.Calculator, opts ...SessionOption) *Session {
	s := &Session{
		id:     uuid.NewString(),
		calc:   calc,
		logger: slog.Default(),
		sheet:  domain.NewSheet(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id)
	return s
}

// ID returns the session's correlation identifier.
func (s *Session) ID() string { return s.id }

// Sheet returns the current input snapshot.
func (s *Session) Sheet() domain.Sheet { return s.sheet }

// Result returns the last calculated result, if any.
func (s *Session) Result() (domain.CalculationResult, bool) {
	if s.result == nil {
		return domain.CalculationResult{}, false
	}
	return *s.result, true
}

// Changed reports whether the inputs differ from those used by the last
// calculation. Before the first calculation it is always true.
func (s *Session) Changed() bool {
	return s.result == nil || !s.sheet.Equal(s.calculated)
}

// apply installs next as the current sheet and records the edit. Edits that
// leave the sheet unchanged (rejected or no-op) are reported as ignored.
func (s *Session) apply(operation string, next domain.Sheet, attrs ...any) bool {
	changed := !next.Equal(s.sheet)
	s.sheet = next

	status := "applied"
	if !changed {
		status = "ignored"
	}
	s.logger.Debug("store edit", append([]any{"operation", operation, "status", status}, attrs...)...)
	if s.metrics != nil {
		s.metrics.RecordCounter(middleware.MetricStoreMutations, 1, map[string]string{
			"operation": operation,
			"status":    status,
		})
	}
	return changed
}

// SetJudgeCount resizes the panel. Counts below 1 are ignored.
func (s *Session) SetJudgeCount(n int) bool {
	next := s.sheet
	next.Panel = next.Panel.WithJudgeCount(n)
	return s.apply("set_judge_count", next, "count", n)
}

// UpdateField replaces creativity, quality or the weight flag of a judge.
func (s *Session) UpdateField(judgeID int, field domain.Field, value string) (bool, error) {
	panel, err := s.sheet.Panel.WithField(judgeID, field, value)
	if err != nil {
		return false, err
	}
	next := s.sheet
	next.Panel = panel
	return s.apply("update_field", next, "judge", judgeID, "field", string(field)), nil
}

// UpdateCriterion replaces one special criterion (0-based index).
func (s *Session) UpdateCriterion(judgeID, index int, value string) bool {
	next := s.sheet
	next.Panel = next.Panel.WithCriterion(judgeID, index, value)
	return s.apply("update_criterion", next, "judge", judgeID, "index", index)
}

// AddCriterion appends an empty special criterion to a judge.
func (s *Session) AddCriterion(judgeID int) bool {
	next := s.sheet
	next.Panel = next.Panel.WithAddedCriterion(judgeID)
	return s.apply("add_criterion", next, "judge", judgeID)
}

// RemoveCriterion removes a special criterion. It returns false when the
// removal was rejected, for example because it was the judge's last one.
func (s *Session) RemoveCriterion(judgeID, index int) bool {
	next := s.sheet
	next.Panel = next.Panel.WithoutCriterion(judgeID, index)
	return s.apply("remove_criterion", next, "judge", judgeID, "index", index)
}

// SetVoterCount replaces the raw voter count of an audience pool.
func (s *Session) SetVoterCount(tier domain.Tier, value string) (bool, error) {
	audience, err := s.sheet.Audience.WithVoterCount(tier, value)
	if err != nil {
		return false, err
	}
	next := s.sheet
	next.Audience = audience
	return s.apply("set_voter_count", next, "tier", string(tier)), nil
}

// SetTotalPoints replaces the raw points total of an audience pool.
func (s *Session) SetTotalPoints(tier domain.Tier, value string) (bool, error) {
	audience, err := s.sheet.Audience.WithTotalPoints(tier, value)
	if err != nil {
		return false, err
	}
	next := s.sheet
	next.Audience = audience
	return s.apply("set_total_points", next, "tier", string(tier)), nil
}

// Replace swaps in a whole sheet, for example one loaded from a file.
func (s *Session) Replace(sheet domain.Sheet) bool {
	return s.apply("replace", sheet, "judges", sheet.Panel.Len())
}

// Calculate scores the current sheet and keeps the result until the next
// call. Later edits do not change the stored result.
func (s *Session) Calculate(ctx context.Context) domain.CalculationResult {
	result := s.calc.Calculate(ctx, s.sheet)
	s.result = &result
	s.calculated = s.sheet

	s.logger.Info("score calculated",
		"judges", s.sheet.Panel.Len(),
		"final_score", result.FinalScore,
		"judges_score", result.JudgesScore,
		"audience_score", result.AudienceScore,
	)
	return result
}
