package domain

import (
	"fmt"
	"time"
)

// ClockTime is a wall-clock time of day (no date, no zone).
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "HH:mm".
func ParseClockTime(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MinutesOfDay returns minutes since midnight.
func (c ClockTime) MinutesOfDay() int {
	return c.Hour*60 + c.Minute
}

// OnDay anchors the clock time to the calendar date of t, in t's location.
func (c ClockTime) OnDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, t.Location())
}

// TimeWindow is an allowed daily send interval [Start, End], bounds
// inclusive, in the user's wall clock. Windows shift only the send time
// of a reminder, never the academic due time.
type TimeWindow struct {
	ID     string
	UserID string
	Start  ClockTime
	End    ClockTime
}

func (w TimeWindow) Validate() error {
	if w.Start.MinutesOfDay() >= w.End.MinutesOfDay() {
		return ErrInvalidTimeWindow
	}
	return nil
}
