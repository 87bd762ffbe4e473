package memory

import (
	"context"
	"strings"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/employee"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/leave"
)

type employeeRepository struct {
	s *Store
}

func NewEmployeeRepository(s *Store) employee.EmployeeRepository {
	return &employeeRepository{s: s}
}

// cloneEmployee copies the record, including the balances map, so callers
// never share store internals.
func cloneEmployee(e employee.Employee) employee.Employee {
	clone := e
	clone.LeaveBalances = make(map[leave.Type]int, len(e.LeaveBalances))
	for lt, days := range e.LeaveBalances {
		clone.LeaveBalances[lt] = days
	}
	return clone
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.employees {
		if strings.EqualFold(existing.Email, emp.Email) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		if existing.EmployeeCode == emp.EmployeeCode {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
	}

	emp.ID = newID()
	emp.CreatedAt = now()
	emp.UpdatedAt = emp.CreatedAt
	if emp.LeaveBalances == nil {
		emp.LeaveBalances = make(map[leave.Type]int)
	}

	r.s.employees = append(r.s.employees, cloneEmployee(emp))
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, emp := range r.s.employees {
		if emp.ID == id {
			return cloneEmployee(emp), nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, emp := range r.s.employees {
		if strings.EqualFold(emp.Email, email) {
			return cloneEmployee(emp), nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]employee.Employee, 0, len(r.s.employees))
	for _, emp := range r.s.employees {
		if filter.DepartmentID != nil && emp.DepartmentID != *filter.DepartmentID {
			continue
		}
		if filter.Status != nil && string(emp.Status) != *filter.Status {
			continue
		}
		if filter.Search != nil {
			needle := strings.ToLower(*filter.Search)
			if !strings.Contains(strings.ToLower(emp.FullName), needle) &&
				!strings.Contains(strings.ToLower(emp.EmployeeCode), needle) {
				continue
			}
		}
		result = append(result, cloneEmployee(emp))
	}
	return result, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.employees {
		if existing.ID == emp.ID {
			emp.CreatedAt = existing.CreatedAt
			emp.UpdatedAt = now()
			r.s.employees[i] = cloneEmployee(emp)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

// Delete implements employee.EmployeeRepository. Dependent attendance, leave
// and task records are left untouched.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.employees {
		if existing.ID == id {
			r.s.employees = append(r.s.employees[:i], r.s.employees[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

// CountActive implements employee.EmployeeRepository.
func (r *employeeRepository) CountActive(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, emp := range r.s.employees {
		if emp.Status == employee.StatusActive {
			count++
		}
	}
	return count, nil
}
