package task

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

const DefaultPriority = "medium"

// Task is the single record type tracked by the service. CreatedAt and
// DueDate travel as plain timestamp strings; DueDate is never parsed, it is
// stored exactly as the client sent it.
type Task struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	CreatedAt   string  `json:"created_at"`
	DueDate     *string `json:"due_date,omitempty"`
}

// NewID returns a fresh task identifier: "task-" plus the first eight hex
// characters of a random UUID.
func NewID() string {
	return "task-" + uuid.NewString()[:8]
}

func NewTask(title, description, priority string, dueDate *string) Task {
	if priority == "" {
		priority = DefaultPriority
	}

	return Task{
		ID:          NewID(),
		Title:       title,
		Description: description,
		Status:      StatusPending,
		Priority:    priority,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		DueDate:     dueDate,
	}
}

// Patch carries the fields an update may overwrite. Nil means "leave alone".
// ID and CreatedAt are deliberately absent: they are immutable once assigned.
type Patch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
}

func (t *Task) Apply(p Patch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
}
