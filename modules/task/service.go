package task

import (
	"context"
	"fmt"
	"log"

	domain "github.com/example/task-service/domain/task"
	"github.com/example/task-service/events"
	"github.com/go-monolith/mono"
)

// createTask handles the create service request. It inserts exactly one row
// and reloads it by generated key so the response carries the
// storage-assigned id and created_at.
func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	// Re-check domain invariants; transports may differ in what they validate
	if req.Title == "" {
		return TaskResponse{}, fmt.Errorf("title is required")
	}
	if len(req.Title) > domain.MaxTitleLength {
		return TaskResponse{}, fmt.Errorf("title must be at most %d characters", domain.MaxTitleLength)
	}
	status := domain.Status(req.Status)
	if !status.Valid() {
		return TaskResponse{}, fmt.Errorf("invalid status: %q", req.Status)
	}
	if req.Deadline == nil {
		return TaskResponse{}, fmt.Errorf("deadline is required")
	}

	newTask := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Deadline:    *req.Deadline,
	}

	if err := m.repo.Create(ctx, newTask); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to save task: %w", err)
	}

	// Reload to pick up exactly what storage committed (id, created_at)
	created, err := m.repo.FindByID(ctx, newTask.ID)
	if err != nil {
		return TaskResponse{}, fmt.Errorf("failed to reload created task: %w", err)
	}

	// Event publishing is best-effort; log but don't fail the operation
	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:    created.ID,
			Title:     created.Title,
			Status:    string(created.Status),
			Deadline:  created.Deadline,
			CreatedAt: created.CreatedAt,
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskCreated event for task %d: %v", created.ID, err)
		}
	}

	return toTaskResponse(created), nil
}

// toTaskResponse converts a domain Task to a TaskResponse.
func toTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Deadline:    t.Deadline,
		CreatedAt:   t.CreatedAt,
	}
}
