package task

import (
	"context"
)

// TaskRepository - data access for the task collection.
type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)

	// List returns tasks matching the filter, newest first.
	List(ctx context.Context, filter TaskFilter) ([]Task, error)

	Update(ctx context.Context, t Task) error
	Delete(ctx context.Context, id string) error
}
