// Package queue defines message payloads exchanged over the message broker
// and the background consumer that drains them.
package queue

// Event types published to the task.events queue.
const (
	EventUserRegistered = "user.registered"
	EventTaskCreated    = "task.created"
	EventTaskUpdated    = "task.updated"
	EventTaskDeleted    = "task.deleted"
)

// ActivityEvent is published after a successful registration or task
// mutation. It carries enough information for downstream consumers to log
// or trigger notifications without querying the primary database.
type ActivityEvent struct {
	Type       string `json:"type"`
	UserID     string `json:"user_id"`
	TaskID     string `json:"task_id,omitempty"`
	Title      string `json:"title,omitempty"`
	Status     string `json:"status,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
