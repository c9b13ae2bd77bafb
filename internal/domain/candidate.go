package domain

import (
	"time"
)

// ReviewCandidate is a derived (study event x rule) occurrence inside
// the projection horizon. DueAt is the academic review moment; SendAt
// is DueAt shifted into the user's allowed time windows. Candidates are
// never persisted as rows, only materialized into the per-user upcoming
// snapshot and consumed by the batcher.
type ReviewCandidate struct {
	UserID      string    `json:"user_id"`
	EventID     string    `json:"event_id"`
	RuleID      string    `json:"rule_id"`
	Title       string    `json:"title"`
	SubjectName string    `json:"subject_name"`
	DueAt       time.Time `json:"due_at"`
	SendAt      time.Time `json:"send_at"`
}

// WasDeferred reports whether time-window adjustment moved the send
// moment away from the academic due moment.
func (c *ReviewCandidate) WasDeferred() bool {
	return !c.SendAt.Equal(c.DueAt)
}
