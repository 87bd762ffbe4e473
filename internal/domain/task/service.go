package task

import (
	"context"
)

type TaskService interface {
	Assign(ctx context.Context, req AssignTaskRequest) (TaskResponse, error)
	List(ctx context.Context, filter TaskFilter) ([]TaskResponse, error)
	Get(ctx context.Context, id string) (TaskResponse, error)
	Update(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)
	UpdateStatus(ctx context.Context, req UpdateTaskStatusRequest) (TaskResponse, error)
	Delete(ctx context.Context, id string) error
}
