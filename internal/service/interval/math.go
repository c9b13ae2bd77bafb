// Package interval provides pure calendar arithmetic for review
// interval rules. No clocks, no side effects.
package interval

import (
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
)

// Add returns t advanced by magnitude units. Day addition is calendar
// addition (AddDate), so it survives DST transitions and month
// boundaries; minute and hour additions are fixed durations.
//
// An unrecognized unit returns t unchanged together with
// domain.ErrUnknownIntervalUnit. Callers log the warning and skip the
// rule; the error is never fatal.
func Add(t time.Time, magnitude int, unit domain.IntervalUnit) (time.Time, error) {
	if magnitude <= 0 {
		return t, fmt.Errorf("%w: %d", domain.ErrInvalidMagnitude, magnitude)
	}

	switch unit {
	case domain.UnitMinute:
		return t.Add(time.Duration(magnitude) * time.Minute), nil
	case domain.UnitHour:
		return t.Add(time.Duration(magnitude) * time.Hour), nil
	case domain.UnitDay:
		return t.AddDate(0, 0, magnitude), nil
	}

	return t, fmt.Errorf("%w: %q", domain.ErrUnknownIntervalUnit, unit)
}
