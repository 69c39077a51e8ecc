package delay

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Task is one paused traversal awaiting its wait period. NodeID is the delay
// node whose outgoing edge is followed when the task fires.
type Task struct {
	ID     string
	UserID string
	NodeID string
	FireAt time.Time
}

type entry struct {
	task  Task
	timer *time.Timer
}

// Scheduler holds pending delay tasks. Tasks are causally independent: no
// ordering is guaranteed between tasks, and each fires exactly once.
type Scheduler struct {
	mu      sync.Mutex
	pending map[string]*entry
	closed  bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[string]*entry)}
}

// Schedule registers task to fire after d, invoking fn(task) once from the
// timer goroutine, and returns the task id. A zero or negative d fires
// almost immediately. Scheduling on a closed scheduler is a no-op and
// returns the empty string.
func (s *Scheduler) Schedule(task Task, d time.Duration, fn func(Task)) string {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	task.FireAt = time.Now().Add(d)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ""
	}

	id := task.ID
	e := &entry{task: task}
	e.timer = time.AfterFunc(d, func() {
		if t, ok := s.take(id); ok {
			fn(t)
		}
	})
	s.pending[id] = e
	return id
}

// take removes a pending entry, reporting whether it was still registered.
// It is the single gate between firing, Cancel, and Close, so each task runs
// its continuation at most once.
func (s *Scheduler) take(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.pending[id]
	if !ok {
		return Task{}, false
	}
	delete(s.pending, id)
	return e.task, true
}

// Cancel stops a pending task before it fires. It reports whether the task
// was still pending. The traversal engine never calls this today; it exists
// so the registry has a real cancellation handle.
func (s *Scheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	e.timer.Stop()
	return true
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Close cancels every pending task and rejects future scheduling. Pending
// continuations that have not fired yet will not run.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, e := range s.pending {
		delete(s.pending, id)
		e.timer.Stop()
	}
}
