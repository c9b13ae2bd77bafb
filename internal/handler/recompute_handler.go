package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-review-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-review-scheduling/internal/service/scheduler"
)

type RecomputeHandler struct {
	schedulerService *scheduler.Service
}

func NewRecomputeHandler(schedulerService *scheduler.Service) *RecomputeHandler {
	return &RecomputeHandler{
		schedulerService: schedulerService,
	}
}

type recomputeRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type recomputeResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
}

// HandleRecompute rebuilds one user's review schedule. CRUD services
// call this right after committing a change to the user's study events,
// interval rules, or time windows.
func (h *RecomputeHandler) HandleRecompute(c *gin.Context) {
	ctx := c.Request.Context()

	var req recomputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "recompute request binding failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", "user_id is required")
		return
	}

	if err := h.schedulerService.Recompute(ctx, req.UserID); err != nil {
		slog.ErrorContext(ctx, "recompute failed",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		if errors.Is(err, domain.ErrStoreUnavailable) {
			respondError(c, http.StatusServiceUnavailable, "store_unavailable", "learner store is unreachable")
			return
		}
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to recompute schedule")
		return
	}

	respondOK(c, recomputeResponse{
		Success: true,
		UserID:  req.UserID,
	})
}
