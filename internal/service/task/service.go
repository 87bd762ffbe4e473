package task

import (
	"context"
	"fmt"
	"time"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/employee"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/task"
)

type TaskServiceImpl struct {
	task.TaskRepository
	employee.EmployeeRepository
}

func NewTaskService(
	taskRepo task.TaskRepository,
	employeeRepo employee.EmployeeRepository,
) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository:     taskRepo,
		EmployeeRepository: employeeRepo,
	}
}

// Assign implements task.TaskService. New tasks always start in todo.
func (s *TaskServiceImpl) Assign(ctx context.Context, req task.AssignTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.AssigneeID); err != nil {
		return task.TaskResponse{}, err
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return task.TaskResponse{}, fmt.Errorf("failed to parse due_date: %w", err)
		}
		dueDate = &parsed
	}

	created, err := s.TaskRepository.Create(ctx, task.Task{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		AssignerID:  req.AssignerID,
		DueDate:     dueDate,
		Priority:    task.Priority(req.Priority),
		Status:      task.StatusTodo,
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	return created.ToResponse(), nil
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context, filter task.TaskFilter) ([]task.TaskResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	tasks, err := s.TaskRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, t.ToResponse())
	}
	return responses, nil
}

// Get implements task.TaskService.
func (s *TaskServiceImpl) Get(ctx context.Context, id string) (task.TaskResponse, error) {
	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return t.ToResponse(), nil
}

// Update implements task.TaskService.
func (s *TaskServiceImpl) Update(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.AssigneeID != nil && *req.AssigneeID != t.AssigneeID {
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.AssigneeID); err != nil {
			return task.TaskResponse{}, err
		}
		t.AssigneeID = *req.AssigneeID
	}
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return task.TaskResponse{}, fmt.Errorf("failed to parse due_date: %w", err)
		}
		t.DueDate = &parsed
	}
	if req.Priority != nil {
		t.Priority = task.Priority(*req.Priority)
	}

	if err := s.TaskRepository.Update(ctx, t); err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to update task: %w", err)
	}

	updated, err := s.TaskRepository.GetByID(ctx, t.ID)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to reload task: %w", err)
	}

	return updated.ToResponse(), nil
}

// UpdateStatus implements task.TaskService. Any transition between the three
// states is allowed.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, req task.UpdateTaskStatusRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	t.Status = task.Status(req.Status)

	if err := s.TaskRepository.Update(ctx, t); err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to update task status: %w", err)
	}

	updated, err := s.TaskRepository.GetByID(ctx, t.ID)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to reload task: %w", err)
	}

	return updated.ToResponse(), nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	return s.TaskRepository.Delete(ctx, id)
}
