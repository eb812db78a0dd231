package task

import (
	"context"
	"time"
)

// CreateTaskRequest is the request for creating a task. The validation
// boundary (api module) has already checked field presence and formats;
// the service re-checks the domain invariants before persisting. Deadline
// is a pointer so a missing deadline stays distinguishable from the zero
// timestamp, which is a legal value.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline"`
}

// TaskResponse is the fully populated task record as persisted, including
// the storage-generated ID and CreatedAt.
type TaskResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	Deadline    time.Time `json:"deadline"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskPort defines the interface for task operations (hexagonal port).
// Driving adapters (the HTTP API) use it to reach the core domain.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
}
