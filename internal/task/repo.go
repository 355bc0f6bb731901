package task

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("task not found")

type Repo interface {
	List(ctx context.Context) ([]Task, error)
	Get(ctx context.Context, id string) (Task, error)
	Create(ctx context.Context, title, description, priority string, dueDate *string) (Task, error)
	Update(ctx context.Context, id string, p Patch) (Task, error)
	// Delete removes the task and returns the removed record.
	Delete(ctx context.Context, id string) (Task, error)
	Seed(ctx context.Context, tasks []Task) error
}
