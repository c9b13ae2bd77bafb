// Stub server for load testing: stands in for the delayed task queue
// and the notification sink so the scheduler can be driven at volume
// without real downstreams.
package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-review-scheduling/loadtest/internal/stub"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}

	storage := stub.NewTaskStorage()
	handler := stub.NewHandler(storage)

	r := gin.Default()

	// Delayed task queue surface.
	r.POST("/tasks", handler.HandleEnqueueTask)
	r.POST("/tasks/:queue", handler.HandleEnqueueTask)
	r.DELETE("/tasks/:name", handler.HandleDeleteTask)

	// Notification sink surface.
	r.POST("/api/v1/notifications/review-batch", handler.HandleReviewBatch)

	// Inspection.
	r.GET("/api/v1/tasks", handler.HandleGetTasks)
	r.GET("/api/v1/stats", handler.HandleGetStats)
	r.POST("/api/v1/reset", handler.HandleReset)

	slog.Info("stub server starting", slog.String("port", port))
	if err := r.Run(":" + port); err != nil {
		slog.Error("stub server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
