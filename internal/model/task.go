package model

import "time"

// Task statuses form a closed set. StatusPending is the default applied when
// a task is created without an explicit status.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ValidStatus reports whether s is one of the allowed task statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task mirrors the `tasks` table. Every query that reads or mutates a task
// is scoped by OwnerID; a task is never visible to anyone but its owner.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	OwnerID   string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
