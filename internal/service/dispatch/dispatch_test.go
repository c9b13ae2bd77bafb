package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-review-scheduling/internal/infra/taskqueue"
)

func testGroup(userID string, anchor time.Time) *domain.NotificationGroup {
	group := domain.NewNotificationGroup(domain.ReviewCandidate{
		UserID:      userID,
		EventID:     "event-1",
		RuleID:      "rule-1",
		Title:       "Fractions",
		SubjectName: "Math",
		DueAt:       anchor,
		SendAt:      anchor,
	})
	group.Add(domain.ReviewCandidate{
		UserID:      userID,
		EventID:     "event-2",
		RuleID:      "rule-1",
		Title:       "Decimals",
		SubjectName: "Math",
		DueAt:       anchor.Add(3 * time.Minute),
		SendAt:      anchor.Add(3 * time.Minute),
	})
	return group
}

func TestSubmitEnqueuesAndIndexesJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := taskqueue.NewMockTaskQueue(ctrl)
	mockRepo := domain.NewMockScheduleRepository(ctrl)

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	anchor := now.Add(2 * time.Hour)
	group := testGroup("user-1", anchor)

	mockQueue.EXPECT().
		EnqueueReviewBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task *taskqueue.ReviewTask) (*taskqueue.TaskResponse, error) {
			if task.JobKey != group.Key() {
				t.Errorf("job key: got %q, want %q", task.JobKey, group.Key())
			}
			if task.UserID != "user-1" {
				t.Errorf("user id: got %q", task.UserID)
			}
			if len(task.Items) != 2 {
				t.Errorf("expected 2 items, got %d", len(task.Items))
			}
			if task.Items[0].DueTimeOfDay != "14:00" {
				t.Errorf("due time of day: got %q, want %q", task.Items[0].DueTimeOfDay, "14:00")
			}
			return &taskqueue.TaskResponse{Name: "queues/default/tasks/abc"}, nil
		})

	mockRepo.EXPECT().
		SavePendingJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job *domain.PendingJob) error {
			if job.Key != group.Key() {
				t.Errorf("pending job key: got %q, want %q", job.Key, group.Key())
			}
			if job.TaskName != "queues/default/tasks/abc" {
				t.Errorf("task name: got %q", job.TaskName)
			}
			if job.MemberCount != 2 {
				t.Errorf("member count: got %d", job.MemberCount)
			}
			return nil
		})

	svc := NewService(mockQueue, mockRepo, nil)

	if err := svc.Submit(context.Background(), group, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubmitDropsGroupWithNegativeDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := taskqueue.NewMockTaskQueue(ctrl)
	mockRepo := domain.NewMockScheduleRepository(ctrl)

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	group := testGroup("user-1", now.Add(-time.Minute))

	// No queue or index calls expected.
	svc := NewService(mockQueue, mockRepo, nil)

	if err := svc.Submit(context.Background(), group, now); err != nil {
		t.Fatalf("a dropped group must not surface an error: %v", err)
	}
}

func TestSubmitIndexFailureDoesNotFailSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := taskqueue.NewMockTaskQueue(ctrl)
	mockRepo := domain.NewMockScheduleRepository(ctrl)

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	group := testGroup("user-1", now.Add(time.Hour))

	mockQueue.EXPECT().
		EnqueueReviewBatch(gomock.Any(), gomock.Any()).
		Return(&taskqueue.TaskResponse{Name: "queues/default/tasks/abc"}, nil)
	mockRepo.EXPECT().
		SavePendingJob(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	svc := NewService(mockQueue, mockRepo, nil)

	if err := svc.Submit(context.Background(), group, now); err != nil {
		t.Fatalf("index failure should only log: %v", err)
	}
}

func TestCancelRangeDeletesTasksAndClearsIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := taskqueue.NewMockTaskQueue(ctrl)
	mockRepo := domain.NewMockScheduleRepository(ctrl)

	from := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	to := from.Add(26 * time.Hour)

	jobs := []domain.PendingJob{
		{Key: "user-1:100", UserID: "user-1", TaskName: "queues/default/tasks/t1"},
		{Key: "user-1:200", UserID: "user-1", TaskName: "queues/default/tasks/t2"},
	}

	mockRepo.EXPECT().
		PendingJobsInRange(gomock.Any(), "user-1", from, to).
		Return(jobs, nil)
	mockQueue.EXPECT().DeleteTask(gomock.Any(), "queues/default/tasks/t1").Return(nil)
	mockQueue.EXPECT().DeleteTask(gomock.Any(), "queues/default/tasks/t2").Return(nil)
	mockRepo.EXPECT().
		RemovePendingJobs(gomock.Any(), "user-1", []string{"user-1:100", "user-1:200"}).
		Return(nil)

	svc := NewService(mockQueue, mockRepo, nil)

	cancelled, err := svc.CancelRange(context.Background(), "user-1", from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled != 2 {
		t.Errorf("cancelled: got %d, want 2", cancelled)
	}
}

func TestCancelRangeFiredTaskStillClearedFromIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := taskqueue.NewMockTaskQueue(ctrl)
	mockRepo := domain.NewMockScheduleRepository(ctrl)

	from := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	to := from.Add(26 * time.Hour)

	mockRepo.EXPECT().
		PendingJobsInRange(gomock.Any(), "user-1", from, to).
		Return([]domain.PendingJob{
			{Key: "user-1:100", UserID: "user-1", TaskName: "queues/default/tasks/t1"},
		}, nil)
	mockQueue.EXPECT().
		DeleteTask(gomock.Any(), "queues/default/tasks/t1").
		Return(errors.New("task already executed"))
	mockRepo.EXPECT().
		RemovePendingJobs(gomock.Any(), "user-1", []string{"user-1:100"}).
		Return(nil)

	svc := NewService(mockQueue, mockRepo, nil)

	cancelled, err := svc.CancelRange(context.Background(), "user-1", from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled != 1 {
		t.Errorf("cancelled: got %d, want 1", cancelled)
	}
}

func TestCancelRangeNoPendingJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := taskqueue.NewMockTaskQueue(ctrl)
	mockRepo := domain.NewMockScheduleRepository(ctrl)

	from := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	to := from.Add(26 * time.Hour)

	mockRepo.EXPECT().
		PendingJobsInRange(gomock.Any(), "user-1", from, to).
		Return(nil, nil)

	svc := NewService(mockQueue, mockRepo, nil)

	cancelled, err := svc.CancelRange(context.Background(), "user-1", from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled != 0 {
		t.Errorf("cancelled: got %d, want 0", cancelled)
	}
}
