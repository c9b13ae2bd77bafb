package stub

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler plays two downstream roles for load tests: the delayed task
// queue the scheduler enqueues into, and the notification sink the
// dispatch callback delivers to. Everything is recorded for later
// inspection.
type Handler struct {
	storage *TaskStorage
}

func NewHandler(storage *TaskStorage) *Handler {
	return &Handler{storage: storage}
}

func runID(c *gin.Context) string {
	if id := c.GetHeader("X-Run-ID"); id != "" {
		return id
	}
	return c.DefaultQuery("run_id", "default")
}

func (h *Handler) HandleReset(c *gin.Context) {
	id := runID(c)
	h.storage.Reset(id)

	slog.Info("reset data", slog.String("run_id", id))

	c.JSON(http.StatusOK, gin.H{
		"status": "reset complete",
		"run_id": id,
	})
}

// POST /tasks and /tasks/:queue
func (h *Handler) HandleEnqueueTask(c *gin.Context) {
	id := runID(c)

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raw, err := base64.StdEncoding.DecodeString(req.Task.HTTPRequest.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body is not valid base64"})
		return
	}

	var body ReviewTaskBody
	if err := json.Unmarshal(raw, &body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body is not a review task"})
		return
	}

	name := req.Task.Name
	if name == "" {
		name = uuid.NewString()
	}

	scheduleTime := nowUTC()
	if req.Task.ScheduleTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.Task.ScheduleTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scheduleTime"})
			return
		}
		scheduleTime = parsed
	}

	task := &QueuedTask{
		Name:         name,
		ScheduleTime: scheduleTime,
		CreateTime:   nowUTC(),
		Body:         body,
	}
	h.storage.PutTask(id, task)

	slog.Debug("task enqueued",
		slog.String("run_id", id),
		slog.String("name", name),
		slog.String("user_id", body.UserID),
		slog.Time("schedule_time", scheduleTime),
	)

	c.JSON(http.StatusCreated, gin.H{
		"name":         task.Name,
		"scheduleTime": task.ScheduleTime.Format(time.RFC3339),
		"createTime":   task.CreateTime.Format(time.RFC3339),
	})
}

// DELETE /tasks/:name
func (h *Handler) HandleDeleteTask(c *gin.Context) {
	id := runID(c)
	name := c.Param("name")

	if !h.storage.DeleteTask(id, name) {
		c.Status(http.StatusNotFound)
		return
	}

	slog.Debug("task deleted",
		slog.String("run_id", id),
		slog.String("name", name),
	)

	c.Status(http.StatusNoContent)
}

// POST /api/v1/notifications/review-batch
func (h *Handler) HandleReviewBatch(c *gin.Context) {
	id := runID(c)

	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.storage.AddBatch(id, ReceivedBatch{
		UserID:     req.UserID,
		Items:      req.Items,
		ReceivedAt: nowUTC(),
	})

	slog.Debug("batch delivered",
		slog.String("run_id", id),
		slog.String("user_id", req.UserID),
		slog.Int("item_count", len(req.Items)),
	)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/v1/tasks
func (h *Handler) HandleGetTasks(c *gin.Context) {
	id := runID(c)
	tasks := h.storage.PendingTasks(id)

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"count": len(tasks),
	})
}

// GET /api/v1/stats
func (h *Handler) HandleGetStats(c *gin.Context) {
	id := runID(c)
	c.JSON(http.StatusOK, h.storage.StatsFor(id))
}
