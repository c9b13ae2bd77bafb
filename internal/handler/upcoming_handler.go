package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
)

type UpcomingHandler struct {
	scheduleRepo domain.ScheduleRepository
	defaultLimit int
}

func NewUpcomingHandler(scheduleRepo domain.ScheduleRepository, defaultLimit int) *UpcomingHandler {
	return &UpcomingHandler{
		scheduleRepo: scheduleRepo,
		defaultLimit: defaultLimit,
	}
}

type upcomingResponse struct {
	UserID     string                   `json:"user_id"`
	Candidates []domain.ReviewCandidate `json:"candidates"`
}

// HandleUpcoming serves the user's upcoming-reviews snapshot, sorted by
// academic due time. The snapshot is a read model refreshed on every
// recompute; it may lag a just-committed mutation by one recompute.
func (h *UpcomingHandler) HandleUpcoming(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("user_id")
	if userID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "user_id is required")
		return
	}

	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(c, http.StatusBadRequest, "validation_error", "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	candidates, err := h.scheduleRepo.ListUpcoming(ctx, userID, limit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list upcoming reviews",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to load upcoming reviews")
		return
	}

	if candidates == nil {
		candidates = []domain.ReviewCandidate{}
	}

	respondOK(c, upcomingResponse{
		UserID:     userID,
		Candidates: candidates,
	})
}
