package domain

import (
	"time"
)

// IntervalUnit is the granularity of an interval rule.
type IntervalUnit string

const (
	UnitMinute IntervalUnit = "minute"
	UnitHour   IntervalUnit = "hour"
	UnitDay    IntervalUnit = "day"
)

func (u IntervalUnit) String() string {
	return string(u)
}

// IsKnown reports whether the unit is one the evaluator understands.
// Anything else (including legacy "month" rules) goes down the
// configuration-warning path and is skipped.
func (u IntervalUnit) IsKnown() bool {
	switch u {
	case UnitMinute, UnitHour, UnitDay:
		return true
	}
	return false
}

// RuleMode distinguishes one-shot reviews from recurring ones.
type RuleMode string

const (
	ModeOneShot   RuleMode = "one_shot"
	ModeRecurring RuleMode = "recurring"
)

func (m RuleMode) String() string {
	return string(m)
}

// IntervalRule is a user-supplied spaced-repetition policy: review the
// material magnitude*unit after studying it, once or repeatedly.
type IntervalRule struct {
	ID        string
	UserID    string
	Magnitude int
	Unit      IntervalUnit
	Mode      RuleMode
	Note      string
}

func (r *IntervalRule) Validate() error {
	if r.Magnitude <= 0 {
		return ErrInvalidMagnitude
	}
	if !r.Unit.IsKnown() {
		return ErrUnknownIntervalUnit
	}
	if r.Mode != ModeOneShot && r.Mode != ModeRecurring {
		return ErrMalformedRule
	}
	return nil
}

// FixedDuration returns the rule's interval as a fixed duration.
// Only valid for minute and hour units; day intervals are calendar
// additions and have no fixed width.
func (r *IntervalRule) FixedDuration() (time.Duration, bool) {
	switch r.Unit {
	case UnitMinute:
		return time.Duration(r.Magnitude) * time.Minute, true
	case UnitHour:
		return time.Duration(r.Magnitude) * time.Hour, true
	}
	return 0, false
}
