package taskqueue

import "time"

// ReviewItem is one review inside a batched reminder, shaped for the
// notification sink.
type ReviewItem struct {
	Title        string `json:"title"`
	SubjectName  string `json:"subject_name"`
	DueTimeOfDay string `json:"due_time_of_day"` // HH:mm of the academic due moment
}

// ReviewTask is a delayed dispatch job for one notification group.
// JobKey doubles as the task name, so resubmitting the same group
// replaces the queued task instead of duplicating it.
type ReviewTask struct {
	JobKey       string    `json:"job_key"`
	UserID       string    `json:"user_id"`
	AnchorSendAt time.Time `json:"anchor_send_at"`

	Items []ReviewItem `json:"items"`
}

type TaskResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

type primindTaskRequest struct {
	Task primindTask `json:"task"`
}

type primindTask struct {
	Name         string             `json:"name,omitempty"`
	HTTPRequest  primindHTTPRequest `json:"httpRequest"`
	ScheduleTime string             `json:"scheduleTime,omitempty"`
}

type primindHTTPRequest struct {
	URL     string            `json:"url"`
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type primindTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}
