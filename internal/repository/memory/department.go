package memory

import (
	"context"
	"strings"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/department"
)

type departmentRepository struct {
	s *Store
}

func NewDepartmentRepository(s *Store) department.DepartmentRepository {
	return &departmentRepository{s: s}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepository) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.departments {
		if strings.EqualFold(existing.Name, dept.Name) {
			return department.Department{}, department.ErrDepartmentNameExists
		}
	}

	dept.ID = newID()
	dept.CreatedAt = now()
	dept.UpdatedAt = dept.CreatedAt

	r.s.departments = append(r.s.departments, dept)
	return dept, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, dept := range r.s.departments {
		if dept.ID == id {
			return dept, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

// List implements department.DepartmentRepository.
func (r *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]department.Department, len(r.s.departments))
	copy(result, r.s.departments)
	return result, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepository) Update(ctx context.Context, dept department.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.departments {
		if existing.ID == dept.ID {
			dept.CreatedAt = existing.CreatedAt
			dept.UpdatedAt = now()
			r.s.departments[i] = dept
			return nil
		}
	}
	return department.ErrDepartmentNotFound
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.departments {
		if existing.ID == id {
			r.s.departments = append(r.s.departments[:i], r.s.departments[i+1:]...)
			return nil
		}
	}
	return department.ErrDepartmentNotFound
}
