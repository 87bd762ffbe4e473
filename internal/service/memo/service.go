package memo

import (
	"context"
	"fmt"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/department"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/employee"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/memo"
)

type MemoServiceImpl struct {
	memo.MemoRepository
	employee.EmployeeRepository
	department.DepartmentRepository
}

func NewMemoService(
	memoRepo memo.MemoRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) memo.MemoService {
	return &MemoServiceImpl{
		MemoRepository:       memoRepo,
		EmployeeRepository:   employeeRepo,
		DepartmentRepository: departmentRepo,
	}
}

// Publish implements memo.MemoService.
func (s *MemoServiceImpl) Publish(ctx context.Context, req memo.PublishMemoRequest) (memo.MemoResponse, error) {
	if err := req.Validate(); err != nil {
		return memo.MemoResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.AuthorID); err != nil {
		return memo.MemoResponse{}, err
	}

	if req.Audience != memo.AudienceAll {
		if _, err := s.DepartmentRepository.GetByID(ctx, req.Audience); err != nil {
			return memo.MemoResponse{}, err
		}
	}

	created, err := s.MemoRepository.Create(ctx, memo.Memo{
		Title:    req.Title,
		Body:     req.Body,
		AuthorID: req.AuthorID,
		Priority: memo.Priority(req.Priority),
		Audience: req.Audience,
	})
	if err != nil {
		return memo.MemoResponse{}, fmt.Errorf("failed to create memo: %w", err)
	}

	return created.ToResponse(), nil
}

// List implements memo.MemoService.
func (s *MemoServiceImpl) List(ctx context.Context, filter memo.MemoFilter) ([]memo.MemoResponse, error) {
	memos, err := s.MemoRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list memos: %w", err)
	}

	responses := make([]memo.MemoResponse, 0, len(memos))
	for _, m := range memos {
		responses = append(responses, m.ToResponse())
	}
	return responses, nil
}

// Get implements memo.MemoService.
func (s *MemoServiceImpl) Get(ctx context.Context, id string) (memo.MemoResponse, error) {
	m, err := s.MemoRepository.GetByID(ctx, id)
	if err != nil {
		return memo.MemoResponse{}, err
	}
	return m.ToResponse(), nil
}

// Delete implements memo.MemoService.
func (s *MemoServiceImpl) Delete(ctx context.Context, id string) error {
	return s.MemoRepository.Delete(ctx, id)
}
