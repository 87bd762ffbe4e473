// Package fixtures loads a small sample organization into the store so the
// portal is usable right after startup.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/department"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/employee"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/leave"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/memo"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/task"
)

type Repositories struct {
	Employees   employee.EmployeeRepository
	Departments department.DepartmentRepository
	Memos       memo.MemoRepository
	Tasks       task.TaskRepository
}

// Seed populates an empty store. Running it against a non-empty store fails
// on the first duplicate rather than half-applying.
func Seed(ctx context.Context, repos Repositories) error {
	engineering, err := repos.Departments.Create(ctx, department.Department{
		Name:        "Engineering",
		Description: strPtr("Product development and platform teams"),
	})
	if err != nil {
		return fmt.Errorf("failed to seed departments: %w", err)
	}

	people, err := repos.Departments.Create(ctx, department.Department{
		Name:        "People Operations",
		Description: strPtr("HR, recruiting and facilities"),
	})
	if err != nil {
		return fmt.Errorf("failed to seed departments: %w", err)
	}

	admin, err := repos.Employees.Create(ctx, employee.Employee{
		EmployeeCode:  "1000-0001",
		FullName:      "Maya Santoso",
		Email:         "maya.santoso@arcadia.example",
		PhoneNumber:   "+62-811-0001",
		DepartmentID:  people.ID,
		Position:      "Head of People",
		Role:          employee.RoleAdmin,
		Status:        employee.StatusActive,
		HireDate:      time.Date(2019, 2, 4, 0, 0, 0, 0, time.UTC),
		LeaveBalances: leave.DefaultBalances(),
	})
	if err != nil {
		return fmt.Errorf("failed to seed employees: %w", err)
	}

	manager, err := repos.Employees.Create(ctx, employee.Employee{
		EmployeeCode:  "1000-0002",
		FullName:      "Dimas Wirawan",
		Email:         "dimas.wirawan@arcadia.example",
		PhoneNumber:   "+62-811-0002",
		DepartmentID:  engineering.ID,
		Position:      "Engineering Manager",
		Role:          employee.RoleManager,
		Status:        employee.StatusActive,
		HireDate:      time.Date(2020, 7, 13, 0, 0, 0, 0, time.UTC),
		LeaveBalances: leave.DefaultBalances(),
	})
	if err != nil {
		return fmt.Errorf("failed to seed employees: %w", err)
	}

	staff, err := repos.Employees.Create(ctx, employee.Employee{
		EmployeeCode:  "1000-0003",
		FullName:      "Rani Kusuma",
		Email:         "rani.kusuma@arcadia.example",
		PhoneNumber:   "+62-811-0003",
		DepartmentID:  engineering.ID,
		Position:      "Software Engineer",
		Role:          employee.RoleEmployee,
		Status:        employee.StatusActive,
		HireDate:      time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
		LeaveBalances: leave.DefaultBalances(),
	})
	if err != nil {
		return fmt.Errorf("failed to seed employees: %w", err)
	}

	if _, err := repos.Memos.Create(ctx, memo.Memo{
		Title:    "Welcome to the employee portal",
		Body:     "Clock in before 08:30, submit leave requests ahead of time, and check this board for announcements.",
		AuthorID: admin.ID,
		Priority: memo.PriorityImportant,
		Audience: memo.AudienceAll,
	}); err != nil {
		return fmt.Errorf("failed to seed memos: %w", err)
	}

	if _, err := repos.Memos.Create(ctx, memo.Memo{
		Title:    "Sprint review moved to Thursday",
		Body:     "This week only; the demo room is booked on Friday.",
		AuthorID: manager.ID,
		Priority: memo.PriorityNormal,
		Audience: engineering.ID,
	}); err != nil {
		return fmt.Errorf("failed to seed memos: %w", err)
	}

	dueDate := time.Now().AddDate(0, 0, 7)
	if _, err := repos.Tasks.Create(ctx, task.Task{
		Title:       "Update onboarding checklist",
		Description: strPtr("Fold the new security training into the first-week checklist."),
		AssigneeID:  staff.ID,
		AssignerID:  manager.ID,
		DueDate:     &dueDate,
		Priority:    task.PriorityMedium,
		Status:      task.StatusTodo,
	}); err != nil {
		return fmt.Errorf("failed to seed tasks: %w", err)
	}

	return nil
}

func strPtr(s string) *string {
	return &s
}
