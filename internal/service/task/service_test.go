package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/employee"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/task"
	"github.com/arcadia-hr/hr-portal-go/internal/repository/memory"
)

func newTaskTestService(t *testing.T) (task.TaskService, employee.EmployeeRepository) {
	t.Helper()
	store := memory.NewStore()
	taskRepo := memory.NewTaskRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)
	return NewTaskService(taskRepo, employeeRepo), employeeRepo
}

func createTaskTestEmployee(t *testing.T, ctx context.Context, repo employee.EmployeeRepository, code string, email string) employee.Employee {
	t.Helper()
	emp, err := repo.Create(ctx, employee.Employee{
		EmployeeCode: code,
		FullName:     "Task Tester " + code,
		Email:        email,
		Role:         employee.RoleEmployee,
		Status:       employee.StatusActive,
		HireDate:     time.Date(2023, 4, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return emp
}

func TestTaskService_Assign_StartsInTodo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTaskTestService(t)
	assigner := createTaskTestEmployee(t, ctx, employeeRepo, "6001-0001", "assigner@example.com")
	assignee := createTaskTestEmployee(t, ctx, employeeRepo, "6001-0002", "assignee@example.com")

	due := "2026-04-10"
	resp, err := svc.Assign(ctx, task.AssignTaskRequest{
		AssignerID: assigner.ID,
		Title:      "Prepare quarterly report",
		AssigneeID: assignee.ID,
		DueDate:    &due,
		Priority:   string(task.PriorityHigh),
	})

	require.NoError(t, err)
	assert.Equal(t, string(task.StatusTodo), resp.Status)
	assert.Equal(t, assignee.ID, resp.AssigneeID)
	require.NotNil(t, resp.DueDate)
	assert.Equal(t, due, *resp.DueDate)
}

func TestTaskService_Assign_UnknownAssignee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTaskTestService(t)
	assigner := createTaskTestEmployee(t, ctx, employeeRepo, "6001-0003", "lonely@example.com")

	_, err := svc.Assign(ctx, task.AssignTaskRequest{
		AssignerID: assigner.ID,
		Title:      "Impossible handoff",
		AssigneeID: "missing",
		Priority:   string(task.PriorityLow),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestTaskService_UpdateStatus_AnyTransition(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTaskTestService(t)
	emp := createTaskTestEmployee(t, ctx, employeeRepo, "6001-0004", "board@example.com")

	created, err := svc.Assign(ctx, task.AssignTaskRequest{
		AssignerID: emp.ID,
		Title:      "Board shuffle",
		AssigneeID: emp.ID,
		Priority:   string(task.PriorityMedium),
	})
	require.NoError(t, err)

	for _, status := range []string{
		string(task.StatusDone),
		string(task.StatusInProgress),
		string(task.StatusTodo),
	} {
		updated, err := svc.UpdateStatus(ctx, task.UpdateTaskStatusRequest{ID: created.ID, Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestTaskService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTaskTestService(t)
	emp := createTaskTestEmployee(t, ctx, employeeRepo, "6001-0005", "badstatus@example.com")

	created, err := svc.Assign(ctx, task.AssignTaskRequest{
		AssignerID: emp.ID,
		Title:      "Status check",
		AssigneeID: emp.ID,
		Priority:   string(task.PriorityMedium),
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, task.UpdateTaskStatusRequest{ID: created.ID, Status: "blocked"})
	assert.Error(t, err)
}

func TestTaskService_List_FiltersByAssigneeAndStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTaskTestService(t)
	first := createTaskTestEmployee(t, ctx, employeeRepo, "6001-0006", "first@example.com")
	second := createTaskTestEmployee(t, ctx, employeeRepo, "6001-0007", "second@example.com")

	a, err := svc.Assign(ctx, task.AssignTaskRequest{
		AssignerID: first.ID, Title: "A", AssigneeID: first.ID, Priority: string(task.PriorityLow),
	})
	require.NoError(t, err)
	_, err = svc.Assign(ctx, task.AssignTaskRequest{
		AssignerID: first.ID, Title: "B", AssigneeID: first.ID, Priority: string(task.PriorityLow),
	})
	require.NoError(t, err)
	_, err = svc.Assign(ctx, task.AssignTaskRequest{
		AssignerID: first.ID, Title: "C", AssigneeID: second.ID, Priority: string(task.PriorityLow),
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, task.UpdateTaskStatusRequest{ID: a.ID, Status: string(task.StatusDone)})
	require.NoError(t, err)

	done := string(task.StatusDone)
	tasks, err := svc.List(ctx, task.TaskFilter{AssigneeID: &first.ID, Status: &done})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "A", tasks[0].Title)
}

func TestTaskService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newTaskTestService(t)
	emp := createTaskTestEmployee(t, ctx, employeeRepo, "6001-0008", "cleanup@example.com")

	created, err := svc.Assign(ctx, task.AssignTaskRequest{
		AssignerID: emp.ID,
		Title:      "Temporary",
		AssigneeID: emp.ID,
		Priority:   string(task.PriorityLow),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}
