package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domain "github.com/example/task-service/domain/task"
	"github.com/example/task-service/modules/task"
	"github.com/gofiber/fiber/v2"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	taskAdapter task.TaskPort
}

// NewHandlers creates the API handlers.
func NewHandlers(taskAdapter task.TaskPort) *Handlers {
	return &Handlers{taskAdapter: taskAdapter}
}

// Health handles GET /health.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   3000,
		},
	})
}

// CreateTask handles POST /. It validates the inbound JSON before any
// service logic runs; a validation failure returns 422 with every offending
// field listed and persists nothing.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		// A wrong-typed field is a validation failure on that field; only a
		// body that is not valid JSON gets the generic 400.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(ValidationErrorResponse{
				Error:   "validation_error",
				Message: "Request validation failed",
				Fields: []FieldError{{
					Field:   typeErr.Field,
					Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
				}},
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	fields, deadline := validateCreateTask(&req)
	if len(fields) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ValidationErrorResponse{
			Error:   "validation_error",
			Message: "Request validation failed",
			Fields:  fields,
		})
	}

	resp, err := h.taskAdapter.CreateTask(c.Context(), &task.CreateTaskRequest{
		Title:       *req.Title,
		Description: req.Description,
		Status:      *req.Status,
		Deadline:    &deadline,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "create_failed",
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(TaskResponse{
		ID:          resp.ID,
		Title:       resp.Title,
		Description: resp.Description,
		Status:      resp.Status,
		Deadline:    resp.Deadline,
		CreatedAt:   resp.CreatedAt,
	})
}

// validateCreateTask checks every field and returns the full list of
// failures plus the parsed deadline.
func validateCreateTask(req *CreateTaskRequest) ([]FieldError, time.Time) {
	var fields []FieldError
	var deadline time.Time

	switch {
	case req.Title == nil:
		fields = append(fields, FieldError{Field: "title", Message: "title is required"})
	case *req.Title == "":
		fields = append(fields, FieldError{Field: "title", Message: "title must not be empty"})
	case len(*req.Title) > domain.MaxTitleLength:
		fields = append(fields, FieldError{Field: "title", Message: fmt.Sprintf("title must be at most %d characters", domain.MaxTitleLength)})
	}

	switch {
	case req.Status == nil:
		fields = append(fields, FieldError{Field: "status", Message: "status is required"})
	case !domain.Status(*req.Status).Valid():
		fields = append(fields, FieldError{Field: "status", Message: "status must be one of: pending, in_progress, completed"})
	}

	switch {
	case req.Deadline == nil:
		fields = append(fields, FieldError{Field: "deadline", Message: "deadline is required"})
	default:
		parsed, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			fields = append(fields, FieldError{Field: "deadline", Message: "deadline must be a valid RFC 3339 timestamp"})
		} else {
			deadline = parsed
		}
	}

	return fields, deadline
}
