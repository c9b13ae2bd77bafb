package domain

import (
	"context"
	"time"
)

// DispatchRecord is one fired notification group, kept for analytics.
type DispatchRecord struct {
	UserID       string
	JobKey       string
	AnchorSendAt time.Time
	FiredAt      time.Time
	MemberCount  int
}

// Lateness is how far past the anchor the group actually fired.
func (r *DispatchRecord) Lateness() time.Duration {
	return r.FiredAt.Sub(r.AnchorSendAt)
}

// DispatchRecorder persists dispatch records to an analytics backend.
// Failures are logged and never block delivery.
type DispatchRecorder interface {
	RecordDispatch(ctx context.Context, record *DispatchRecord) error
	Flush(ctx context.Context) error
	Close() error
}
