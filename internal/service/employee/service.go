package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/department"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/employee"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/leave"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	department.DepartmentRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository:   employeeRepo,
		DepartmentRepository: departmentRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DepartmentID != "" {
		if _, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire_date: %w", err)
	}

	balances := leave.DefaultBalances()
	for lt, days := range req.LeaveBalances {
		balances[leave.Type(lt)] = days
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		EmployeeCode:  req.EmployeeCode,
		FullName:      req.FullName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		DepartmentID:  req.DepartmentID,
		Position:      req.Position,
		Role:          employee.Role(req.Role),
		Status:        employee.StatusActive,
		HireDate:      hireDate,
		AvatarURL:     req.AvatarURL,
		LeaveBalances: balances,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return created.ToResponse(), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return emp.ToResponse(), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, emp.ToResponse())
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != nil && *req.Email != emp.Email {
		other, err := s.EmployeeRepository.GetByEmail(ctx, *req.Email)
		if err == nil && other.ID != emp.ID {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		emp.Email = *req.Email
	}

	if req.DepartmentID != nil && *req.DepartmentID != emp.DepartmentID {
		if _, err := s.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.DepartmentID = *req.DepartmentID
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = *req.PhoneNumber
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.Status != nil {
		emp.Status = employee.EmploymentStatus(*req.Status)
	}
	if req.AvatarURL != nil {
		emp.AvatarURL = req.AvatarURL
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, emp.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to reload employee: %w", err)
	}

	return updated.ToResponse(), nil
}

// Delete implements employee.EmployeeService. Attendance, leave and task
// records belonging to the employee are kept.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

// SetLeaveBalance implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetLeaveBalance(ctx context.Context, req employee.SetLeaveBalanceRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if emp.LeaveBalances == nil {
		emp.LeaveBalances = make(map[leave.Type]int)
	}
	emp.LeaveBalances[leave.Type(req.LeaveType)] = req.Days

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, emp.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to reload employee: %w", err)
	}

	return updated.ToResponse(), nil
}
