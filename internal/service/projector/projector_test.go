package projector

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
)

func TestProjectSingleOneShotRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := domain.NewMockLearnerStore(ctrl)
	mockRepo := domain.NewMockScheduleRepository(ctrl)

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	occurredAt := now.Add(-23 * time.Hour)

	mockStore.EXPECT().
		StudyEventsByUser(gomock.Any(), "user-1").
		Return([]domain.StudyEvent{
			{ID: "event-1", UserID: "user-1", SubjectID: "subj-1", SubjectName: "Algebra", Title: "Quadratics", OccurredAt: occurredAt},
		}, nil)
	mockStore.EXPECT().
		IntervalRulesByUser(gomock.Any(), "user-1").
		Return([]domain.IntervalRule{
			{ID: "rule-1", UserID: "user-1", Magnitude: 1, Unit: domain.UnitDay, Mode: domain.ModeOneShot},
		}, nil)
	mockStore.EXPECT().
		TimeWindowsByUser(gomock.Any(), "user-1").
		Return(nil, nil)

	var saved []domain.ReviewCandidate
	mockRepo.EXPECT().
		ReplaceUpcoming(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, candidates []domain.ReviewCandidate) error {
			saved = candidates
			return nil
		})

	svc := NewService(mockStore, mockRepo, nil)

	candidates, err := svc.Project(context.Background(), "user-1", now, 26*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}

	wantDue := occurredAt.AddDate(0, 0, 1)
	if !candidates[0].DueAt.Equal(wantDue) {
		t.Errorf("due_at: got %v, want %v", candidates[0].DueAt, wantDue)
	}
	if !candidates[0].SendAt.Equal(wantDue) {
		t.Errorf("send_at without windows should equal due_at: got %v", candidates[0].SendAt)
	}
	if candidates[0].EventID != "event-1" || candidates[0].RuleID != "rule-1" {
		t.Errorf("candidate identity wrong: %+v", candidates[0])
	}
	if len(saved) != 1 {
		t.Errorf("snapshot should hold the same candidates, got %d", len(saved))
	}
}

func TestProjectDefersSendIntoNextDayWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := domain.NewMockLearnerStore(ctrl)
	mockRepo := domain.NewMockScheduleRepository(ctrl)

	// Due lands at 23:30, outside the 09:00-12:00 window, so the send
	// rolls to 09:00 the following day.
	now := time.Date(2024, 5, 10, 22, 0, 0, 0, time.UTC)
	occurredAt := time.Date(2024, 5, 9, 23, 30, 0, 0, time.UTC)

	mockStore.EXPECT().
		StudyEventsByUser(gomock.Any(), "user-1").
		Return([]domain.StudyEvent{
			{ID: "event-1", UserID: "user-1", Title: "Verbs", SubjectName: "French", OccurredAt: occurredAt},
		}, nil)
	mockStore.EXPECT().
		IntervalRulesByUser(gomock.Any(), "user-1").
		Return([]domain.IntervalRule{
			{ID: "rule-1", UserID: "user-1", Magnitude: 1, Unit: domain.UnitDay, Mode: domain.ModeOneShot},
		}, nil)
	mockStore.EXPECT().
		TimeWindowsByUser(gomock.Any(), "user-1").
		Return([]domain.TimeWindow{
			{
				ID:     "win-1",
				UserID: "user-1",
				Start:  domain.ClockTime{Hour: 9},
				End:    domain.ClockTime{Hour: 12},
			},
		}, nil)
	mockRepo.EXPECT().
		ReplaceUpcoming(gomock.Any(), "user-1", gomock.Any()).
		Return(nil)

	svc := NewService(mockStore, mockRepo, nil)

	candidates, err := svc.Project(context.Background(), "user-1", now, 26*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}

	wantSend := time.Date(2024, 5, 11, 9, 0, 0, 0, time.UTC)
	if !candidates[0].SendAt.Equal(wantSend) {
		t.Errorf("send_at: got %v, want %v", candidates[0].SendAt, wantSend)
	}
	if !candidates[0].WasDeferred() {
		t.Error("candidate should report deferral")
	}
}

func TestProjectRecurringRuleEmitsEveryOccurrenceInHorizon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := domain.NewMockLearnerStore(ctrl)
	mockRepo := domain.NewMockScheduleRepository(ctrl)

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	occurredAt := now.Add(-30 * time.Minute)

	mockStore.EXPECT().
		StudyEventsByUser(gomock.Any(), "user-1").
		Return([]domain.StudyEvent{
			{ID: "event-1", UserID: "user-1", Title: "Kanji", SubjectName: "Japanese", OccurredAt: occurredAt},
		}, nil)
	mockStore.EXPECT().
		IntervalRulesByUser(gomock.Any(), "user-1").
		Return([]domain.IntervalRule{
			{ID: "rule-1", UserID: "user-1", Magnitude: 6, Unit: domain.UnitHour, Mode: domain.ModeRecurring},
		}, nil)
	mockStore.EXPECT().
		TimeWindowsByUser(gomock.Any(), "user-1").
		Return(nil, nil)
	mockRepo.EXPECT().
		ReplaceUpcoming(gomock.Any(), "user-1", gomock.Any()).
		Return(nil)

	svc := NewService(mockStore, mockRepo, nil)

	candidates, err := svc.Project(context.Background(), "user-1", now, 26*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Occurrences at +5h30m, +11h30m, +17h30m, +23h30m from now.
	if len(candidates) != 4 {
		t.Fatalf("expected 4 occurrences, got %d", len(candidates))
	}
	for i := 1; i < len(candidates); i++ {
		gap := candidates[i].DueAt.Sub(candidates[i-1].DueAt)
		if gap != 6*time.Hour {
			t.Errorf("gap between occurrence %d and %d: got %v, want 6h", i-1, i, gap)
		}
	}
}

func TestProjectSkipsMalformedRuleAndKeepsOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := domain.NewMockLearnerStore(ctrl)
	mockRepo := domain.NewMockScheduleRepository(ctrl)

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	mockStore.EXPECT().
		StudyEventsByUser(gomock.Any(), "user-1").
		Return([]domain.StudyEvent{
			{ID: "event-1", UserID: "user-1", Title: "Maps", SubjectName: "Geography", OccurredAt: now.Add(-time.Hour)},
		}, nil)
	mockStore.EXPECT().
		IntervalRulesByUser(gomock.Any(), "user-1").
		Return([]domain.IntervalRule{
			{ID: "rule-bad", UserID: "user-1", Magnitude: 1, Unit: domain.IntervalUnit("MONTH"), Mode: domain.ModeOneShot},
			{ID: "rule-good", UserID: "user-1", Magnitude: 2, Unit: domain.UnitHour, Mode: domain.ModeOneShot},
		}, nil)
	mockStore.EXPECT().
		TimeWindowsByUser(gomock.Any(), "user-1").
		Return(nil, nil)
	mockRepo.EXPECT().
		ReplaceUpcoming(gomock.Any(), "user-1", gomock.Any()).
		Return(nil)

	svc := NewService(mockStore, mockRepo, nil)

	candidates, err := svc.Project(context.Background(), "user-1", now, 26*time.Hour)
	if err != nil {
		t.Fatalf("a malformed rule must not fail the projection: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate from the valid rule, got %d", len(candidates))
	}
	if candidates[0].RuleID != "rule-good" {
		t.Errorf("candidate should come from the valid rule, got %q", candidates[0].RuleID)
	}
}

func TestProjectStoreFailureAbortsBeforeSnapshotSwap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := domain.NewMockLearnerStore(ctrl)
	mockRepo := domain.NewMockScheduleRepository(ctrl)

	mockStore.EXPECT().
		StudyEventsByUser(gomock.Any(), "user-1").
		Return(nil, errors.New("connection refused"))

	svc := NewService(mockStore, mockRepo, nil)

	_, err := svc.Project(context.Background(), "user-1", time.Now(), 26*time.Hour)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}
