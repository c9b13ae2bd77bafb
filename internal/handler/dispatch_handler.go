package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-review-scheduling/internal/infra/notifier"
	"github.com/KasumiMercury/primind-review-scheduling/internal/infra/taskqueue"
	"github.com/KasumiMercury/primind-review-scheduling/internal/observability/metrics"
)

type DispatchHandler struct {
	sink             notifier.Sink
	scheduleRepo     domain.ScheduleRepository
	dispatchRecorder domain.DispatchRecorder
	scheduleMetrics  *metrics.ScheduleMetrics
}

func NewDispatchHandler(
	sink notifier.Sink,
	scheduleRepo domain.ScheduleRepository,
	dispatchRecorder domain.DispatchRecorder,
	scheduleMetrics *metrics.ScheduleMetrics,
) *DispatchHandler {
	return &DispatchHandler{
		sink:             sink,
		scheduleRepo:     scheduleRepo,
		dispatchRecorder: dispatchRecorder,
		scheduleMetrics:  scheduleMetrics,
	}
}

// HandleDispatchExecute is the delayed task queue's callback target. The
// queue fires it once a group's anchor send time arrives; the handler
// forwards the batch to the notification sink and retires the pending
// job so a later recompute does not try to cancel an already-fired task.
func (h *DispatchHandler) HandleDispatchExecute(c *gin.Context) {
	ctx := c.Request.Context()
	firedAt := time.Now().UTC()

	var task taskqueue.ReviewTask
	if err := c.ShouldBindJSON(&task); err != nil {
		slog.WarnContext(ctx, "dispatch payload binding failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if task.UserID == "" || len(task.Items) == 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "user_id and items are required")
		return
	}

	if err := h.sink.SendReviewBatch(ctx, task.UserID, task.Items); err != nil {
		slog.ErrorContext(ctx, "failed to deliver review batch",
			slog.String("user_id", task.UserID),
			slog.String("job_key", task.JobKey),
			slog.String("error", err.Error()),
		)
		// Non-2xx makes the queue retry the task.
		respondError(c, http.StatusInternalServerError, "delivery_error", "failed to deliver review batch")
		return
	}

	if task.JobKey != "" {
		if err := h.scheduleRepo.RemovePendingJobs(ctx, task.UserID, []string{task.JobKey}); err != nil {
			slog.WarnContext(ctx, "failed to retire fired job from pending index",
				slog.String("user_id", task.UserID),
				slog.String("job_key", task.JobKey),
				slog.String("error", err.Error()),
			)
		}
	}

	record := &domain.DispatchRecord{
		UserID:       task.UserID,
		JobKey:       task.JobKey,
		AnchorSendAt: task.AnchorSendAt,
		FiredAt:      firedAt,
		MemberCount:  len(task.Items),
	}
	if h.dispatchRecorder != nil {
		if err := h.dispatchRecorder.RecordDispatch(ctx, record); err != nil {
			slog.WarnContext(ctx, "failed to record dispatch",
				slog.String("job_key", task.JobKey),
				slog.String("error", err.Error()),
			)
		}
	}
	if h.scheduleMetrics != nil {
		h.scheduleMetrics.RecordDispatchFired(ctx, record.Lateness().Seconds())
	}

	slog.InfoContext(ctx, "review batch dispatched",
		slog.String("user_id", task.UserID),
		slog.String("job_key", task.JobKey),
		slog.Int("item_count", len(task.Items)),
		slog.Duration("lateness", record.Lateness()),
	)

	respondOK(c, gin.H{"success": true})
}
