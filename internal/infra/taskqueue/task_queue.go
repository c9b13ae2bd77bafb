package taskqueue

import "context"

//go:generate mockgen -source=task_queue.go -destination=mock.go -package=taskqueue

// TaskQueue is the durable delayed-job collaborator. Execution is
// at-least-once: the queue POSTs the task payload back to the service
// at or after the schedule time, and retries on non-2xx.
type TaskQueue interface {
	EnqueueReviewBatch(ctx context.Context, task *ReviewTask) (*TaskResponse, error)

	// DeleteTask cancels a pending task. Deleting a task that already
	// fired (or never existed) is a no-op, not an error.
	DeleteTask(ctx context.Context, taskName string) error
}
