// Package toast implements the transient notification queue. Toasts are
// additive (several may be visible at once), never deduplicated, and carry a
// unique ID so a scheduled expiry can be matched against the queue: expiry
// for a toast the user already dismissed is a no-op, not a race.
package toast

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a toast stays visible unless dismissed early.
const DefaultTTL = 3 * time.Second

// Severity classifies a toast for styling and iconography.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityError
	SeverityWarning
)

// Toast is one transient message.
type Toast struct {
	ID       string
	Message  string
	Severity Severity
	PushedAt time.Time
}

// Queue holds the currently visible toasts in push order.
type Queue struct {
	ttl    time.Duration
	toasts []Toast
}

// NewQueue creates an empty queue. ttl <= 0 selects DefaultTTL.
func NewQueue(ttl time.Duration) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{ttl: ttl}
}

// TTL returns the auto-dismiss duration for scheduling expiry events.
func (q *Queue) TTL() time.Duration {
	return q.ttl
}

// Push appends a toast and returns it; the caller schedules the expiry
// event against the returned ID.
func (q *Queue) Push(message string, severity Severity) Toast {
	t := Toast{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: severity,
		PushedAt: time.Now(),
	}
	q.toasts = append(q.toasts, t)
	return t
}

// Dismiss removes the toast with the given ID. Returns false if it is no
// longer in the queue, which callers treat as a no-op.
func (q *Queue) Dismiss(id string) bool {
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// Active returns the visible toasts in push order.
func (q *Queue) Active() []Toast {
	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

// Len returns the number of visible toasts.
func (q *Queue) Len() int {
	return len(q.toasts)
}
