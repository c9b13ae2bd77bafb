// Package dispatch hands notification groups to the durable delayed
// task queue and keeps the per-user pending-job index that makes
// cancel-then-resubmit recomputes possible.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-review-scheduling/internal/infra/taskqueue"
	"github.com/KasumiMercury/primind-review-scheduling/internal/observability/metrics"
)

type Service struct {
	taskQueue       taskqueue.TaskQueue
	scheduleRepo    domain.ScheduleRepository
	scheduleMetrics *metrics.ScheduleMetrics
}

func NewService(
	taskQueue taskqueue.TaskQueue,
	scheduleRepo domain.ScheduleRepository,
	scheduleMetrics *metrics.ScheduleMetrics,
) *Service {
	return &Service{
		taskQueue:       taskQueue,
		scheduleRepo:    scheduleRepo,
		scheduleMetrics: scheduleMetrics,
	}
}

// Submit enqueues one notification group as a delayed job keyed by
// {userID}:{anchorMillis} and records it in the pending-job index.
//
// A group whose anchor is already in the past should have been filtered
// by horizon projection; it is dropped here loudly rather than fired
// immediately.
func (s *Service) Submit(ctx context.Context, group *domain.NotificationGroup, now time.Time) error {
	delay := group.AnchorSendAt.Sub(now)
	if delay < 0 {
		slog.ErrorContext(ctx, "dropping group with negative delay",
			slog.String("user_id", group.UserID),
			slog.String("job_key", group.Key()),
			slog.Time("anchor_send_at", group.AnchorSendAt),
			slog.Duration("delay", delay),
			slog.String("error", domain.ErrInvariantViolation.Error()),
		)
		if s.scheduleMetrics != nil {
			s.scheduleMetrics.RecordGroupDropped(ctx, "negative_delay")
		}
		return nil
	}

	task := &taskqueue.ReviewTask{
		JobKey:       group.Key(),
		UserID:       group.UserID,
		AnchorSendAt: group.AnchorSendAt,
		Items:        make([]taskqueue.ReviewItem, 0, len(group.Members)),
	}
	for _, m := range group.Members {
		task.Items = append(task.Items, taskqueue.ReviewItem{
			Title:        m.Title,
			SubjectName:  m.SubjectName,
			DueTimeOfDay: m.DueAt.Format("15:04"),
		})
	}

	resp, err := s.taskQueue.EnqueueReviewBatch(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue group %s: %w", group.Key(), err)
	}

	job := &domain.PendingJob{
		Key:          group.Key(),
		UserID:       group.UserID,
		AnchorSendAt: group.AnchorSendAt,
		TaskName:     resp.Name,
		MemberCount:  len(group.Members),
		SubmittedAt:  now,
	}
	if err := s.scheduleRepo.SavePendingJob(ctx, job); err != nil {
		// The job is queued either way; worst case a later recompute
		// cannot cancel it and a duplicate fires, which delivery
		// tolerates.
		slog.WarnContext(ctx, "failed to index pending job",
			slog.String("job_key", job.Key),
			slog.String("error", err.Error()),
		)
	}

	slog.InfoContext(ctx, "notification group submitted",
		slog.String("user_id", group.UserID),
		slog.String("job_key", group.Key()),
		slog.Int("member_count", len(group.Members)),
		slog.Duration("delay", delay),
	)
	if s.scheduleMetrics != nil {
		s.scheduleMetrics.RecordGroupsSubmitted(ctx, 1)
	}

	return nil
}

// CancelRange deletes every pending job for the user whose anchor falls
// inside [from, to], then clears them from the index. Jobs that already
// fired are skipped silently by the queue. Returns the number of jobs
// cancelled.
func (s *Service) CancelRange(ctx context.Context, userID string, from, to time.Time) (int, error) {
	jobs, err := s.scheduleRepo.PendingJobsInRange(ctx, userID, from, to)
	if err != nil {
		return 0, fmt.Errorf("%w: pending jobs for %s: %w", domain.ErrStoreUnavailable, userID, err)
	}
	if len(jobs) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(jobs))
	for _, job := range jobs {
		if err := s.taskQueue.DeleteTask(ctx, job.TaskName); err != nil {
			// The stale job may still fire; queue-level dedupe and
			// duplicate-tolerant delivery cover that case.
			slog.WarnContext(ctx, "failed to delete pending task",
				slog.String("job_key", job.Key),
				slog.String("task_name", job.TaskName),
				slog.String("error", err.Error()),
			)
		}
		keys = append(keys, job.Key)
	}

	if err := s.scheduleRepo.RemovePendingJobs(ctx, userID, keys); err != nil {
		return len(keys), fmt.Errorf("%w: clearing pending jobs for %s: %w", domain.ErrStoreUnavailable, userID, err)
	}

	slog.DebugContext(ctx, "cancelled pending jobs",
		slog.String("user_id", userID),
		slog.Int("cancelled_count", len(keys)),
		slog.Time("from", from),
		slog.Time("to", to),
	)
	if s.scheduleMetrics != nil {
		s.scheduleMetrics.RecordJobsCancelled(ctx, int64(len(keys)))
	}

	return len(keys), nil
}
