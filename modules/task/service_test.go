package task

import (
	"context"
	"strings"
	"testing"
	"time"

	domain "github.com/example/task-service/domain/task"
)

// newTestModule builds a TaskModule backed by an in-memory database,
// bypassing Start. The event bus stays nil; publishing is best-effort and
// skipped without one.
func newTestModule(t *testing.T) *TaskModule {
	t.Helper()

	db := setupTestDB(t)
	return &TaskModule{
		db:   db,
		repo: NewRepository(db),
	}
}

func deadlinePtr(t time.Time) *time.Time {
	return &t
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()
	m := newTestModule(t)

	desc := "Q3 summary"
	deadline := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	resp, err := m.createTask(ctx, CreateTaskRequest{
		Title:       "Write report",
		Description: &desc,
		Status:      "pending",
		Deadline:    &deadline,
	}, nil)
	if err != nil {
		t.Fatalf("createTask() error = %v", err)
	}

	if resp.ID == 0 {
		t.Error("expected positive generated ID")
	}
	if resp.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	// Round-trip fidelity of submitted values
	if resp.Title != "Write report" {
		t.Errorf("Title = %q, want %q", resp.Title, "Write report")
	}
	if resp.Description == nil || *resp.Description != desc {
		t.Errorf("Description = %v, want %q", resp.Description, desc)
	}
	if resp.Status != "pending" {
		t.Errorf("Status = %q, want %q", resp.Status, "pending")
	}
	if !resp.Deadline.Equal(deadline) {
		t.Errorf("Deadline = %v, want %v", resp.Deadline, deadline)
	}
}

func TestCreateTask_NilDescription(t *testing.T) {
	ctx := context.Background()
	m := newTestModule(t)

	resp, err := m.createTask(ctx, CreateTaskRequest{
		Title:    "No description",
		Status:   "in_progress",
		Deadline: deadlinePtr(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)),
	}, nil)
	if err != nil {
		t.Fatalf("createTask() error = %v", err)
	}
	if resp.Description != nil {
		t.Errorf("Description = %q, want nil", *resp.Description)
	}
}

func TestCreateTask_ZeroDeadline(t *testing.T) {
	ctx := context.Background()
	m := newTestModule(t)

	// The zero timestamp is a present, parseable value and must not be
	// confused with a missing deadline.
	resp, err := m.createTask(ctx, CreateTaskRequest{
		Title:    "Zero deadline",
		Status:   "pending",
		Deadline: deadlinePtr(time.Time{}),
	}, nil)
	if err != nil {
		t.Fatalf("createTask() error = %v", err)
	}
	if !resp.Deadline.IsZero() {
		t.Errorf("Deadline = %v, want the zero timestamp", resp.Deadline)
	}
}

func TestCreateTask_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	m := newTestModule(t)

	seen := make(map[uint]bool)
	for i := 0; i < 5; i++ {
		resp, err := m.createTask(ctx, CreateTaskRequest{
			Title:    "Task",
			Status:   "pending",
			Deadline: deadlinePtr(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)),
		}, nil)
		if err != nil {
			t.Fatalf("createTask() error = %v", err)
		}
		if seen[resp.ID] {
			t.Fatalf("duplicate ID %d returned", resp.ID)
		}
		seen[resp.ID] = true
	}
}

func TestCreateTask_Validation(t *testing.T) {
	ctx := context.Background()
	deadline := deadlinePtr(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name     string
		req      CreateTaskRequest
		errorMsg string
	}{
		{
			name:     "missing title",
			req:      CreateTaskRequest{Status: "pending", Deadline: deadline},
			errorMsg: "title is required",
		},
		{
			name: "title too long",
			req: CreateTaskRequest{
				Title:    strings.Repeat("x", domain.MaxTitleLength+1),
				Status:   "pending",
				Deadline: deadline,
			},
			errorMsg: "at most",
		},
		{
			name:     "invalid status",
			req:      CreateTaskRequest{Title: "Bad task", Status: "archived", Deadline: deadline},
			errorMsg: "invalid status",
		},
		{
			name:     "missing status",
			req:      CreateTaskRequest{Title: "Bad task", Deadline: deadline},
			errorMsg: "invalid status",
		},
		{
			name:     "missing deadline",
			req:      CreateTaskRequest{Title: "Bad task", Status: "pending"},
			errorMsg: "deadline is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModule(t)

			_, err := m.createTask(ctx, tt.req, nil)
			if err == nil {
				t.Fatalf("createTask() expected error containing %q, got nil", tt.errorMsg)
			}
			if !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("createTask() error = %q, want error containing %q", err.Error(), tt.errorMsg)
			}

			// Nothing may be persisted on a validation failure
			var count int64
			if dbErr := m.db.Model(&domain.Task{}).Count(&count).Error; dbErr != nil {
				t.Fatalf("failed to count tasks: %v", dbErr)
			}
			if count != 0 {
				t.Errorf("expected 0 persisted rows after validation failure, got %d", count)
			}
		})
	}
}

func TestCreateTask_StorageError(t *testing.T) {
	ctx := context.Background()
	m := newTestModule(t)

	// Simulate an unreachable database
	sqlDB, err := m.db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}

	_, err = m.createTask(ctx, CreateTaskRequest{
		Title:    "Unreachable",
		Status:   "pending",
		Deadline: deadlinePtr(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)),
	}, nil)
	if err == nil {
		t.Fatal("createTask() expected error when database is closed")
	}
	if !strings.Contains(err.Error(), "failed to save task") {
		t.Errorf("createTask() error = %q, want error containing 'failed to save task'", err.Error())
	}
}
