package employee

import (
	"context"
)

// EmployeeService defines directory operations over the employee collection.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error

	// SetLeaveBalance overwrites the remaining days for one leave type.
	SetLeaveBalance(ctx context.Context, req SetLeaveBalanceRequest) (EmployeeResponse, error)
}
