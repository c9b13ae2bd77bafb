// Package projector enumerates upcoming review candidates for a user
// inside a rolling future horizon.
package projector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-review-scheduling/internal/observability/metrics"
	"github.com/KasumiMercury/primind-review-scheduling/internal/service/interval"
	"github.com/KasumiMercury/primind-review-scheduling/internal/service/rule"
	"github.com/KasumiMercury/primind-review-scheduling/internal/service/window"
)

type Service struct {
	store           domain.LearnerStore
	scheduleRepo    domain.ScheduleRepository
	scheduleMetrics *metrics.ScheduleMetrics
}

func NewService(
	store domain.LearnerStore,
	scheduleRepo domain.ScheduleRepository,
	scheduleMetrics *metrics.ScheduleMetrics,
) *Service {
	return &Service{
		store:           store,
		scheduleRepo:    scheduleRepo,
		scheduleMetrics: scheduleMetrics,
	}
}

// Project computes every (study event x rule) review occurrence whose
// send time falls inside (now, now+horizon), window-adjusted, and
// replaces the user's upcoming snapshot with the survivors.
//
// A malformed rule poisons only itself: it is logged and skipped, and
// projection continues with the remaining rules. Store failures abort
// the projection as transient.
func (s *Service) Project(ctx context.Context, userID string, now time.Time, horizon time.Duration) ([]domain.ReviewCandidate, error) {
	events, err := s.store.StudyEventsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: study events for %s: %w", domain.ErrStoreUnavailable, userID, err)
	}
	rules, err := s.store.IntervalRulesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: interval rules for %s: %w", domain.ErrStoreUnavailable, userID, err)
	}
	windows, err := s.store.TimeWindowsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: time windows for %s: %w", domain.ErrStoreUnavailable, userID, err)
	}

	horizonEnd := now.Add(horizon)
	candidates := make([]domain.ReviewCandidate, 0, len(events)*len(rules))

	for i := range rules {
		r := &rules[i]
		if err := r.Validate(); err != nil {
			slog.WarnContext(ctx, "skipping malformed interval rule",
				slog.String("user_id", userID),
				slog.String("rule_id", r.ID),
				slog.Int("magnitude", r.Magnitude),
				slog.String("unit", r.Unit.String()),
				slog.String("error", err.Error()),
			)
			if s.scheduleMetrics != nil {
				s.scheduleMetrics.RecordRuleSkipped(ctx, r.Unit.String())
			}
			continue
		}

		for j := range events {
			candidates = append(candidates, s.projectPair(ctx, &events[j], r, windows, now, horizonEnd)...)
		}
	}

	if err := s.scheduleRepo.ReplaceUpcoming(ctx, userID, candidates); err != nil {
		return nil, fmt.Errorf("%w: upcoming snapshot for %s: %w", domain.ErrStoreUnavailable, userID, err)
	}

	slog.DebugContext(ctx, "projected review candidates",
		slog.String("user_id", userID),
		slog.Int("event_count", len(events)),
		slog.Int("rule_count", len(rules)),
		slog.Int("candidate_count", len(candidates)),
	)
	if s.scheduleMetrics != nil {
		s.scheduleMetrics.RecordCandidatesProjected(ctx, int64(len(candidates)))
	}

	return candidates, nil
}

func (s *Service) projectPair(
	ctx context.Context,
	event *domain.StudyEvent,
	r *domain.IntervalRule,
	windows []domain.TimeWindow,
	now, horizonEnd time.Time,
) []domain.ReviewCandidate {
	dueAt, err := rule.NextDue(event.OccurredAt, r, now)
	if err != nil {
		// Validate already passed, so this is unexpected; drop the
		// pair and keep going.
		slog.WarnContext(ctx, "failed to evaluate rule for study event",
			slog.String("event_id", event.ID),
			slog.String("rule_id", r.ID),
			slog.String("error", err.Error()),
		)
		return nil
	}

	var out []domain.ReviewCandidate
	for {
		if !dueAt.Before(horizonEnd) {
			break
		}
		if dueAt.After(now) {
			sendAt := window.Adjust(dueAt, windows)
			if sendAt.After(now) && sendAt.Before(horizonEnd) {
				out = append(out, domain.ReviewCandidate{
					UserID:      event.UserID,
					EventID:     event.ID,
					RuleID:      r.ID,
					Title:       event.Title,
					SubjectName: event.SubjectName,
					DueAt:       dueAt,
					SendAt:      sendAt,
				})
			}
		}

		if r.Mode != domain.ModeRecurring {
			break
		}

		next, err := interval.Add(dueAt, r.Magnitude, r.Unit)
		if err != nil || !next.After(dueAt) {
			slog.ErrorContext(ctx, "recurring rule failed to advance",
				slog.String("rule_id", r.ID),
				slog.Time("due_at", dueAt),
			)
			break
		}
		dueAt = next
	}
	return out
}
