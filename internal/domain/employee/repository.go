package employee

import (
	"context"
)

// EmployeeRepository - data access for the employee collection.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error

	// Delete removes the employee record only. Dependent attendance, leave
	// and task records are deliberately left in place.
	Delete(ctx context.Context, id string) error

	// CountActive returns the number of employees with active status.
	CountActive(ctx context.Context) (int, error)
}
