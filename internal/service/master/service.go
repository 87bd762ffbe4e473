package master

import (
	"context"
	"fmt"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/department"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/employee"
)

// MasterService manages the organization reference data (departments).
type MasterService interface {
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	employeeRepo employee.EmployeeRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.HeadEmployeeID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.HeadEmployeeID); err != nil {
			return department.DepartmentResponse{}, err
		}
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:           req.Name,
		HeadEmployeeID: req.HeadEmployeeID,
		Description:    req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return s.toResponse(ctx, created)
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return s.toResponse(ctx, dept)
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		resp, err := s.toResponse(ctx, dept)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.HeadEmployeeID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.HeadEmployeeID); err != nil {
			return department.DepartmentResponse{}, err
		}
		dept.HeadEmployeeID = req.HeadEmployeeID
	}
	if req.Description != nil {
		dept.Description = req.Description
	}

	if err := s.departmentRepo.Update(ctx, dept); err != nil {
		return department.DepartmentResponse{}, err
	}

	return s.toResponse(ctx, dept)
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}

// toResponse computes the member count from the employee collection; the
// department record never stores it.
func (s *masterServiceImpl) toResponse(ctx context.Context, dept department.Department) (department.DepartmentResponse, error) {
	members, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{DepartmentID: &dept.ID})
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to count department members: %w", err)
	}

	return department.DepartmentResponse{
		ID:             dept.ID,
		Name:           dept.Name,
		HeadEmployeeID: dept.HeadEmployeeID,
		Description:    dept.Description,
		TotalEmployees: len(members),
	}, nil
}
