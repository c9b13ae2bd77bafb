package stub

import (
	"sync"
	"time"
)

// TaskStorage holds everything the stub queue and stub sink have seen,
// keyed by run ID so parallel load runs stay isolated.
type TaskStorage struct {
	mu      sync.RWMutex
	tasks   map[string]map[string]*QueuedTask // runID -> task name -> task
	deleted map[string][]string               // runID -> deleted task names
	batches map[string][]ReceivedBatch        // runID -> delivered batches
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		tasks:   make(map[string]map[string]*QueuedTask),
		deleted: make(map[string][]string),
		batches: make(map[string][]ReceivedBatch),
	}
}

func (s *TaskStorage) Reset(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, runID)
	delete(s.deleted, runID)
	delete(s.batches, runID)
}

func (s *TaskStorage) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make(map[string]map[string]*QueuedTask)
	s.deleted = make(map[string][]string)
	s.batches = make(map[string][]ReceivedBatch)
}

// PutTask stores a queued task. Re-enqueueing under the same name
// replaces the previous task, matching real queue semantics.
func (s *TaskStorage) PutTask(runID string, task *QueuedTask) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tasks[runID] == nil {
		s.tasks[runID] = make(map[string]*QueuedTask)
	}
	s.tasks[runID][task.Name] = task
}

// DeleteTask removes a queued task. Returns false when the task is
// unknown, which the stub maps to 404.
func (s *TaskStorage) DeleteTask(runID, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := s.tasks[runID]
	if _, ok := tasks[name]; !ok {
		return false
	}
	delete(tasks, name)
	s.deleted[runID] = append(s.deleted[runID], name)
	return true
}

func (s *TaskStorage) PendingTasks(runID string) []*QueuedTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*QueuedTask, 0, len(s.tasks[runID]))
	for _, t := range s.tasks[runID] {
		out = append(out, t)
	}
	return out
}

func (s *TaskStorage) DeletedTaskNames(runID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.deleted[runID]...)
}

func (s *TaskStorage) AddBatch(runID string, batch ReceivedBatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[runID] = append(s.batches[runID], batch)
}

func (s *TaskStorage) Batches(runID string) []ReceivedBatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ReceivedBatch(nil), s.batches[runID]...)
}

// Stats summarizes one run for assertion at the end of a load test.
type Stats struct {
	PendingCount   int `json:"pending_count"`
	DeletedCount   int `json:"deleted_count"`
	DeliveredCount int `json:"delivered_count"`
	DeliveredItems int `json:"delivered_items"`
}

func (s *TaskStorage) StatsFor(runID string) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		PendingCount: len(s.tasks[runID]),
		DeletedCount: len(s.deleted[runID]),
	}
	for _, b := range s.batches[runID] {
		stats.DeliveredCount++
		stats.DeliveredItems += len(b.Items)
	}
	return stats
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
