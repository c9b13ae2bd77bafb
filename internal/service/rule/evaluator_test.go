package rule

import (
	"errors"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
)

func TestNextDueOneShot(t *testing.T) {
	occurred := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rule     domain.IntervalRule
		ref      time.Time
		expected time.Time
	}{
		{
			name:     "one hour after study",
			rule:     domain.IntervalRule{Magnitude: 1, Unit: domain.UnitHour, Mode: domain.ModeOneShot},
			ref:      occurred,
			expected: time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		},
		{
			name: "past occurrence is returned as-is",
			rule: domain.IntervalRule{Magnitude: 30, Unit: domain.UnitMinute, Mode: domain.ModeOneShot},
			// Reference long after the due moment; one-shot does not advance.
			ref:      occurred.AddDate(0, 0, 7),
			expected: time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "three days after study",
			rule:     domain.IntervalRule{Magnitude: 3, Unit: domain.UnitDay, Mode: domain.ModeOneShot},
			ref:      occurred,
			expected: time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDue(occurred, &tt.rule, tt.ref)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNextDueRecurring(t *testing.T) {
	occurred := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rule     domain.IntervalRule
		ref      time.Time
		expected time.Time
	}{
		{
			name:     "first occurrence still ahead",
			rule:     domain.IntervalRule{Magnitude: 1, Unit: domain.UnitDay, Mode: domain.ModeRecurring},
			ref:      occurred.Add(2 * time.Hour),
			expected: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "daily rule idle five days",
			rule: domain.IntervalRule{Magnitude: 1, Unit: domain.UnitDay, Mode: domain.ModeRecurring},
			// now = T + 5d + 3h; smallest day boundary strictly after is T + 6d.
			ref:      time.Date(2024, 1, 6, 13, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "occurrence exactly at reference advances one more",
			rule:     domain.IntervalRule{Magnitude: 1, Unit: domain.UnitHour, Mode: domain.ModeRecurring},
			ref:      time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
		},
		{
			name:     "minute rule idle a decade",
			rule:     domain.IntervalRule{Magnitude: 10, Unit: domain.UnitMinute, Mode: domain.ModeRecurring},
			ref:      time.Date(2034, 1, 1, 10, 3, 0, 0, time.UTC),
			expected: time.Date(2034, 1, 1, 10, 10, 0, 0, time.UTC),
		},
		{
			name:     "multi-day stride",
			rule:     domain.IntervalRule{Magnitude: 3, Unit: domain.UnitDay, Mode: domain.ModeRecurring},
			ref:      time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDue(occurred, &tt.rule, tt.ref)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// Catch-up must be arithmetic, not a walk over every missed occurrence.
func TestCatchUpIsConstantTime(t *testing.T) {
	occurred := time.Date(2014, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rule domain.IntervalRule
		ref  time.Time
	}{
		{
			name: "minute rule idle ten years",
			rule: domain.IntervalRule{Magnitude: 1, Unit: domain.UnitMinute, Mode: domain.ModeRecurring},
			ref:  time.Date(2024, 6, 15, 18, 30, 12, 0, time.UTC),
		},
		{
			name: "daily rule idle ten years",
			rule: domain.IntervalRule{Magnitude: 1, Unit: domain.UnitDay, Mode: domain.ModeRecurring},
			ref:  time.Date(2024, 6, 15, 18, 30, 12, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, corrections := catchUp(occurred, &tt.rule, tt.ref)
			if !due.After(tt.ref) {
				t.Errorf("due %v not after reference %v", due, tt.ref)
			}
			if corrections > 2 {
				t.Errorf("expected at most 2 correction steps, took %d", corrections)
			}
		})
	}
}

func TestNextDueMalformedRule(t *testing.T) {
	occurred := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	ref := occurred.Add(time.Hour)

	tests := []struct {
		name string
		rule domain.IntervalRule
		want error
	}{
		{
			name: "zero magnitude",
			rule: domain.IntervalRule{Magnitude: 0, Unit: domain.UnitHour, Mode: domain.ModeRecurring},
			want: domain.ErrInvalidMagnitude,
		},
		{
			name: "month unit is not part of the core",
			rule: domain.IntervalRule{Magnitude: 1, Unit: domain.IntervalUnit("month"), Mode: domain.ModeOneShot},
			want: domain.ErrUnknownIntervalUnit,
		},
		{
			name: "unknown mode",
			rule: domain.IntervalRule{Magnitude: 1, Unit: domain.UnitHour, Mode: domain.RuleMode("weekly")},
			want: domain.ErrMalformedRule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NextDue(occurred, &tt.rule, ref)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !domain.IsConfigurationWarning(err) {
				t.Errorf("expected a configuration warning class error, got %v", err)
			}
		})
	}
}
