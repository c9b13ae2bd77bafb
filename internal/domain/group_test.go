package domain

import (
	"errors"
	"testing"
	"time"
)

func TestJobKeyRoundTrip(t *testing.T) {
	anchor := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	key := JobKey("user-1", anchor)

	userID, parsed, err := ParseJobKey(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("user id: got %q, want %q", userID, "user-1")
	}
	if !parsed.Equal(anchor) {
		t.Errorf("anchor: got %v, want %v", parsed, anchor)
	}
}

func TestJobKeyUserIDWithColons(t *testing.T) {
	anchor := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	key := JobKey("tenant:user-1", anchor)

	userID, parsed, err := ParseJobKey(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "tenant:user-1" {
		t.Errorf("user id: got %q", userID)
	}
	if !parsed.Equal(anchor) {
		t.Errorf("anchor: got %v, want %v", parsed, anchor)
	}
}

func TestParseJobKeyRejectsMalformed(t *testing.T) {
	for _, key := range []string{"", "user-1", "user-1:", ":123", "user-1:not-a-number"} {
		if _, _, err := ParseJobKey(key); !errors.Is(err, ErrInvalidJobKey) {
			t.Errorf("ParseJobKey(%q): expected ErrInvalidJobKey, got %v", key, err)
		}
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		input   string
		hour    int
		minute  int
		wantErr bool
	}{
		{input: "09:00", hour: 9, minute: 0},
		{input: "23:59", hour: 23, minute: 59},
		{input: "00:00", hour: 0, minute: 0},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ct, err := ParseClockTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ct.Hour != tt.hour || ct.Minute != tt.minute {
				t.Errorf("got %02d:%02d, want %02d:%02d", ct.Hour, ct.Minute, tt.hour, tt.minute)
			}
		})
	}
}
