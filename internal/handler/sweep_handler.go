package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-review-scheduling/internal/service/scheduler"
)

type SweepHandler struct {
	schedulerService *scheduler.Service
}

func NewSweepHandler(schedulerService *scheduler.Service) *SweepHandler {
	return &SweepHandler{
		schedulerService: schedulerService,
	}
}

// HandleSweep triggers a full recompute of every active user. Normally
// the periodic sweep covers this; the endpoint exists for operational
// repair after an incident.
func (h *SweepHandler) HandleSweep(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.schedulerService.SweepAll(ctx); err != nil {
		slog.ErrorContext(ctx, "manual sweep failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "sweep failed")
		return
	}

	respondOK(c, gin.H{"success": true})
}
