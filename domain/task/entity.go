package task

import "time"

// Status represents the state of a task. It is the single definition of the
// status enumeration; both the validation boundary and the storage schema
// reference it.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the defined status values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// MaxTitleLength bounds the title column.
const MaxTitleLength = 255

// Task is the core domain entity: a unit of work with a title, status and
// deadline. ID and CreatedAt are assigned by the storage layer on insert.
type Task struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `json:"description"`
	Status      Status    `gorm:"size:20;not null" json:"status"`
	Deadline    time.Time `gorm:"not null" json:"deadline"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}
