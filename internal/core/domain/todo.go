package domain

import (
	"errors"
	"time"
)

// TodoStatus represents the lifecycle state of a todo item.
type TodoStatus string

// StatusPending is the initial status. No transition out of it exists in the
// current scope; there is no completion endpoint.
const StatusPending TodoStatus = "pending"

var ErrEmptyTask = errors.New("task description is required")

// Todo is a single entry in the shared task list. Entries are append-only:
// never mutated, never deleted, gone on process restart.
type Todo struct {
	ID        int64      `json:"id"`
	Task      string     `json:"task"`
	Status    TodoStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}
