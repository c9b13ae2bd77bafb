package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=schedule_repository.go -destination=schedule_repository_mock.go -package=domain

// ScheduleRepository holds the scheduler's derived state: the per-user
// upcoming-reviews snapshot (a display read model, sorted by academic
// due time) and the per-user index of pending dispatch jobs.
type ScheduleRepository interface {
	// ReplaceUpcoming swaps the user's snapshot wholesale. Readers may
	// briefly observe an empty snapshot during the swap; the snapshot
	// is display-only so that is tolerated.
	ReplaceUpcoming(ctx context.Context, userID string, candidates []ReviewCandidate) error
	ListUpcoming(ctx context.Context, userID string, limit int) ([]ReviewCandidate, error)

	SavePendingJob(ctx context.Context, job *PendingJob) error
	PendingJobsInRange(ctx context.Context, userID string, from, to time.Time) ([]PendingJob, error)
	RemovePendingJobs(ctx context.Context, userID string, keys []string) error
}

// PendingJob records a dispatch job handed to the delayed task queue,
// so a later recompute can cancel everything inside its horizon.
type PendingJob struct {
	Key          string    `json:"key"`
	UserID       string    `json:"user_id"`
	AnchorSendAt time.Time `json:"anchor_send_at"`
	TaskName     string    `json:"task_name"`
	MemberCount  int       `json:"member_count"`
	SubmittedAt  time.Time `json:"submitted_at"`
}
