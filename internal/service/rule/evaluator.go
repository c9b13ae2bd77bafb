// Package rule computes the next due review moment for a study event
// under an interval rule.
package rule

import (
	"time"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-review-scheduling/internal/service/interval"
)

// NextDue returns the next academic review moment for a study event
// that occurred at occurredAt, evaluated against ref.
//
// One-shot rules yield occurredAt plus one interval, past or future;
// the caller decides relevance. Recurring rules yield the smallest
// occurrence of the series strictly after ref, computed arithmetically
// so that a rule idle for years costs the same as one reviewed an hour
// ago.
func NextDue(occurredAt time.Time, r *domain.IntervalRule, ref time.Time) (time.Time, error) {
	if err := r.Validate(); err != nil {
		return ref, err
	}

	first, err := interval.Add(occurredAt, r.Magnitude, r.Unit)
	if err != nil {
		return ref, err
	}

	if r.Mode == domain.ModeOneShot {
		return first, nil
	}

	if first.After(ref) {
		return first, nil
	}

	due, _ := catchUp(occurredAt, r, ref)
	return due, nil
}

// catchUp finds the smallest occurrence of a recurring series strictly
// after ref. The second return value counts correction steps and exists
// for tests guarding the O(1) bound.
func catchUp(occurredAt time.Time, r *domain.IntervalRule, ref time.Time) (time.Time, int) {
	if d, ok := r.FixedDuration(); ok {
		// Fixed-width interval: floor division lands on the last
		// occurrence at or before ref, one step forward passes it.
		elapsed := ref.Sub(occurredAt)
		steps := elapsed / d
		due := occurredAt.Add(steps * d)

		corrections := 0
		for !due.After(ref) {
			due = due.Add(d)
			corrections++
		}
		return due, corrections
	}

	// Calendar days have no fixed width (DST), so estimate the step
	// count from elapsed hours and correct by at most a step or two.
	stepDays := r.Magnitude
	est := int(ref.Sub(occurredAt).Hours() / 24 / float64(stepDays))
	if est < 0 {
		est = 0
	}

	corrections := 0
	due := occurredAt.AddDate(0, 0, est*stepDays)
	for est > 0 {
		prev := occurredAt.AddDate(0, 0, (est-1)*stepDays)
		if !prev.After(ref) {
			break
		}
		est--
		due = prev
		corrections++
	}
	for !due.After(ref) {
		est++
		due = occurredAt.AddDate(0, 0, est*stepDays)
		corrections++
	}
	return due, corrections
}
