package memory

import (
	"context"
	"sort"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/task"
)

type taskRepository struct {
	s *Store
}

func NewTaskRepository(s *Store) task.TaskRepository {
	return &taskRepository{s: s}
}

// Create implements task.TaskRepository.
func (r *taskRepository) Create(ctx context.Context, t task.Task) (task.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.ID = newID()
	t.CreatedAt = now()
	t.UpdatedAt = t.CreatedAt

	r.s.tasks = append(r.s.tasks, t)
	return t, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepository) GetByID(ctx context.Context, id string) (task.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, t := range r.s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return task.Task{}, task.ErrTaskNotFound
}

// List implements task.TaskRepository.
func (r *taskRepository) List(ctx context.Context, filter task.TaskFilter) ([]task.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]task.Task, 0, len(r.s.tasks))
	for _, t := range r.s.tasks {
		if filter.AssigneeID != nil && t.AssigneeID != *filter.AssigneeID {
			continue
		}
		if filter.Status != nil && string(t.Status) != *filter.Status {
			continue
		}
		result = append(result, t)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Update implements task.TaskRepository.
func (r *taskRepository) Update(ctx context.Context, t task.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.tasks {
		if existing.ID == t.ID {
			t.CreatedAt = existing.CreatedAt
			t.UpdatedAt = now()
			r.s.tasks[i] = t
			return nil
		}
	}
	return task.ErrTaskNotFound
}

// Delete implements task.TaskRepository.
func (r *taskRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.tasks {
		if existing.ID == id {
			r.s.tasks = append(r.s.tasks[:i], r.s.tasks[i+1:]...)
			return nil
		}
	}
	return task.ErrTaskNotFound
}
