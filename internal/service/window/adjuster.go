// Package window shifts candidate send times into a user's allowed
// daily time windows. The academic due time is never touched here.
package window

import (
	"sort"
	"time"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
)

// Adjust returns the earliest allowed send moment at or after candidate.
//
// With no windows the candidate passes through unchanged. A candidate
// already inside a window (inclusive of both bounds) also passes
// through. Otherwise the result is the start of the next window on the
// candidate's day, or the earliest window's start on the following day
// when all of today's windows are behind the candidate.
func Adjust(candidate time.Time, windows []domain.TimeWindow) time.Time {
	if len(windows) == 0 {
		return candidate
	}

	sorted := make([]domain.TimeWindow, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.MinutesOfDay() < sorted[j].Start.MinutesOfDay()
	})

	for _, w := range sorted {
		start := w.Start.OnDay(candidate)
		end := w.End.OnDay(candidate)
		if !candidate.Before(start) && !candidate.After(end) {
			return candidate
		}
	}

	for _, w := range sorted {
		start := w.Start.OnDay(candidate)
		if start.After(candidate) {
			return start
		}
	}

	// Past every window today: first window tomorrow.
	return sorted[0].Start.OnDay(candidate.AddDate(0, 0, 1))
}
