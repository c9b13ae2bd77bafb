// Package scheduler orchestrates review recomputation: the
// event-driven trigger fired after data mutations and the periodic
// full sweep that acts as a safety net.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-review-scheduling/internal/observability/metrics"
	"github.com/KasumiMercury/primind-review-scheduling/internal/service/batch"
	"github.com/KasumiMercury/primind-review-scheduling/internal/service/dispatch"
	"github.com/KasumiMercury/primind-review-scheduling/internal/service/projector"
)

const (
	// DefaultHorizon covers a full day plus slack for window deferrals
	// past midnight.
	DefaultHorizon = 26 * time.Hour

	DefaultSweepParallelism = 4
)

type Options struct {
	Horizon          time.Duration
	MergeWindow      time.Duration
	SweepParallelism int
}

func (o *Options) withDefaults() Options {
	out := *o
	if out.Horizon <= 0 {
		out.Horizon = DefaultHorizon
	}
	if out.MergeWindow <= 0 {
		out.MergeWindow = batch.DefaultMergeWindow
	}
	if out.SweepParallelism <= 0 {
		out.SweepParallelism = DefaultSweepParallelism
	}
	return out
}

type Service struct {
	store           domain.LearnerStore
	projector       *projector.Service
	dispatcher      *dispatch.Service
	clock           Clock
	opts            Options
	locks           *userLocks
	scheduleMetrics *metrics.ScheduleMetrics
}

func NewService(
	store domain.LearnerStore,
	projectorService *projector.Service,
	dispatcher *dispatch.Service,
	clock Clock,
	opts Options,
	scheduleMetrics *metrics.ScheduleMetrics,
) *Service {
	if clock == nil {
		clock = SystemClock()
	}
	return &Service{
		store:           store,
		projector:       projectorService,
		dispatcher:      dispatcher,
		clock:           clock,
		opts:            opts.withDefaults(),
		locks:           newUserLocks(),
		scheduleMetrics: scheduleMetrics,
	}
}

// Recompute rebuilds one user's upcoming snapshot and pending dispatch
// jobs from scratch. CRUD services call this right after committing any
// mutation to the user's study events, rules, or time windows.
//
// The sequence is projection (including the snapshot swap), then cancel
// of every pending job inside the horizon, then fresh submissions.
// Projection failure aborts before any queue mutation. Running the same
// recompute twice with unchanged data lands on the same set of job keys
// and payloads.
func (s *Service) Recompute(ctx context.Context, userID string) error {
	return s.recompute(ctx, userID, "event")
}

func (s *Service) recompute(ctx context.Context, userID, trigger string) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	started := time.Now()
	now := s.clock.Now()
	horizonEnd := now.Add(s.opts.Horizon)

	candidates, err := s.projector.Project(ctx, userID, now, s.opts.Horizon)
	if err != nil {
		slog.ErrorContext(ctx, "recompute aborted before queue mutation",
			slog.String("user_id", userID),
			slog.String("trigger", trigger),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("projection for %s: %w", userID, err)
	}

	// Stale jobs must be gone (or at least their deletion attempted)
	// before fresh ones go in, so a superseded group cannot fire after
	// its replacement was computed.
	cancelled, err := s.dispatcher.CancelRange(ctx, userID, now, horizonEnd)
	if err != nil {
		return fmt.Errorf("cancel for %s: %w", userID, err)
	}

	groups := batch.Merge(candidates, s.opts.MergeWindow)

	var submitErrs []error
	for _, group := range groups {
		if err := s.dispatcher.Submit(ctx, group, now); err != nil {
			// Keep submitting the remaining groups; the daily sweep
			// repairs whatever is missing.
			slog.ErrorContext(ctx, "failed to submit notification group",
				slog.String("user_id", userID),
				slog.String("job_key", group.Key()),
				slog.String("error", err.Error()),
			)
			submitErrs = append(submitErrs, err)
		}
	}

	slog.InfoContext(ctx, "recompute finished",
		slog.String("user_id", userID),
		slog.String("trigger", trigger),
		slog.Int("candidate_count", len(candidates)),
		slog.Int("group_count", len(groups)),
		slog.Int("cancelled_count", cancelled),
		slog.Duration("elapsed", time.Since(started)),
	)
	if s.scheduleMetrics != nil {
		s.scheduleMetrics.RecordRecomputeDuration(ctx, time.Since(started).Seconds(), trigger)
	}

	return errors.Join(submitErrs...)
}

// SweepAll recomputes every active user with bounded parallelism. Users
// that fail are logged and skipped; the next sweep picks them up again.
func (s *Service) SweepAll(ctx context.Context) error {
	runID := uuid.NewString()
	started := time.Now()

	userIDs, err := s.store.ActiveUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("%w: listing users for sweep: %w", domain.ErrStoreUnavailable, err)
	}

	slog.InfoContext(ctx, "full sweep started",
		slog.String("run_id", runID),
		slog.Int("user_count", len(userIDs)),
	)

	var failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.SweepParallelism)
	for _, userID := range userIDs {
		g.Go(func() error {
			if err := s.recompute(gctx, userID, "sweep"); err != nil {
				slog.WarnContext(gctx, "sweep recompute failed for user",
					slog.String("run_id", runID),
					slog.String("user_id", userID),
					slog.String("error", err.Error()),
				)
				failed.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.InfoContext(ctx, "full sweep finished",
		slog.String("run_id", runID),
		slog.Int("user_count", len(userIDs)),
		slog.Int64("failed_count", failed.Load()),
		slog.Duration("elapsed", time.Since(started)),
	)

	return nil
}

// RunPeriodicSweep blocks, running SweepAll on the given interval until
// the context is cancelled. Intended to be started with go from main.
func (s *Service) RunPeriodicSweep(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	slog.Info("periodic sweep started", slog.Duration("interval", every))
	for {
		select {
		case <-ctx.Done():
			slog.Info("periodic sweep stopped")
			return
		case <-ticker.C:
			if err := s.SweepAll(ctx); err != nil {
				slog.Error("periodic sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}
