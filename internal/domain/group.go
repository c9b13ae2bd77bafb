package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NotificationGroup is an ordered run of candidates collapsed into one
// outbound reminder. AnchorSendAt is the send time of the first member;
// every consecutive pair of members is within the merge window of each
// other (chained, not pairwise-bounded from the first element).
type NotificationGroup struct {
	UserID       string
	AnchorSendAt time.Time
	Members      []ReviewCandidate
}

func NewNotificationGroup(first ReviewCandidate) *NotificationGroup {
	return &NotificationGroup{
		UserID:       first.UserID,
		AnchorSendAt: first.SendAt,
		Members:      []ReviewCandidate{first},
	}
}

func (g *NotificationGroup) Add(c ReviewCandidate) {
	g.Members = append(g.Members, c)
}

// Key returns the stable dispatch-job key for this group.
func (g *NotificationGroup) Key() string {
	return JobKey(g.UserID, g.AnchorSendAt)
}

// JobKey builds the stable job identifier {userID}:{anchorMillis}.
// Resubmission under the same key replaces the queued job rather than
// duplicating it.
func JobKey(userID string, anchorSendAt time.Time) string {
	return userID + ":" + strconv.FormatInt(anchorSendAt.UTC().UnixMilli(), 10)
}

// ParseJobKey splits a job key back into user ID and anchor time.
func ParseJobKey(key string) (string, time.Time, error) {
	idx := strings.LastIndex(key, ":")
	if idx <= 0 || idx == len(key)-1 {
		return "", time.Time{}, fmt.Errorf("%w: %q", ErrInvalidJobKey, key)
	}
	millis, err := strconv.ParseInt(key[idx+1:], 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %q", ErrInvalidJobKey, key)
	}
	return key[:idx], time.UnixMilli(millis).UTC(), nil
}
