package stub

import "time"

type ReviewItem struct {
	Title        string `json:"title"`
	SubjectName  string `json:"subject_name"`
	DueTimeOfDay string `json:"due_time_of_day"`
}

type ReviewTaskBody struct {
	JobKey       string       `json:"job_key"`
	UserID       string       `json:"user_id"`
	AnchorSendAt time.Time    `json:"anchor_send_at"`
	Items        []ReviewItem `json:"items"`
}

type QueuedTask struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
	Body         ReviewTaskBody
}

type ReceivedBatch struct {
	UserID     string       `json:"user_id"`
	Items      []ReviewItem `json:"items"`
	ReceivedAt time.Time    `json:"received_at"`
}

type taskRequest struct {
	Task taskSpec `json:"task"`
}

type taskSpec struct {
	Name         string          `json:"name,omitempty"`
	HTTPRequest  httpRequestSpec `json:"httpRequest"`
	ScheduleTime string          `json:"scheduleTime,omitempty"`
}

type httpRequestSpec struct {
	URL     string            `json:"url"`
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type batchRequest struct {
	UserID string       `json:"user_id"`
	Items  []ReviewItem `json:"items"`
}
