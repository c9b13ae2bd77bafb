package domain

import "context"

//go:generate mockgen -source=store.go -destination=store_mock.go -package=domain

// LearnerStore reads a user's study history and scheduling policies
// from the persistent store. The scheduler never writes through this
// interface.
type LearnerStore interface {
	StudyEventsByUser(ctx context.Context, userID string) ([]StudyEvent, error)
	IntervalRulesByUser(ctx context.Context, userID string) ([]IntervalRule, error)
	TimeWindowsByUser(ctx context.Context, userID string) ([]TimeWindow, error)

	// ActiveUserIDs lists users with at least one study event, for the
	// periodic full sweep.
	ActiveUserIDs(ctx context.Context) ([]string, error)
}
