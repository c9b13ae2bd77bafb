package domain

import (
	"time"
)

// StudyEvent is one logged learner activity. The scheduler only ever
// reads these; mutation happens in the surrounding CRUD services, which
// trigger a recompute afterwards.
type StudyEvent struct {
	ID          string
	UserID      string
	SubjectID   string
	SubjectName string
	Title       string
	OccurredAt  time.Time
	Note        string
}
