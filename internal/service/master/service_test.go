package master

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/department"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/employee"
	"github.com/arcadia-hr/hr-portal-go/internal/repository/memory"
)

func newMasterTestService(t *testing.T) (MasterService, employee.EmployeeRepository) {
	t.Helper()
	store := memory.NewStore()
	departmentRepo := memory.NewDepartmentRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)
	return NewMasterService(departmentRepo, employeeRepo), employeeRepo
}

func TestMasterService_CreateDepartment_DuplicateName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newMasterTestService(t)

	_, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Finance"})
	require.NoError(t, err)

	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "finance"})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)
}

func TestMasterService_GetDepartment_CountsMembers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newMasterTestService(t)

	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)
	assert.Equal(t, 0, created.TotalEmployees)

	for i, email := range []string{"one@example.com", "two@example.com"} {
		_, err := employeeRepo.Create(ctx, employee.Employee{
			EmployeeCode: fmt.Sprintf("4001-000%d", i+1),
			FullName:     "Member",
			Email:        email,
			DepartmentID: created.ID,
			Role:         employee.RoleEmployee,
			Status:       employee.StatusActive,
			HireDate:     time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	got, err := svc.GetDepartment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalEmployees)
}

func TestMasterService_UpdateDepartment_Rename(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newMasterTestService(t)

	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Ops"})
	require.NoError(t, err)

	name := "People Operations"
	updated, err := svc.UpdateDepartment(ctx, department.UpdateDepartmentRequest{ID: created.ID, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
}

func TestMasterService_DeleteDepartment_KeepsEmployees(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newMasterTestService(t)

	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Support"})
	require.NoError(t, err)

	emp, err := employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode: "4002-0001",
		FullName:     "Orphan",
		Email:        "orphan@example.com",
		DepartmentID: created.ID,
		Role:         employee.RoleEmployee,
		Status:       employee.StatusActive,
		HireDate:     time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDepartment(ctx, created.ID))

	_, err = svc.GetDepartment(ctx, created.ID)
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)

	// The member record survives with a dangling department reference.
	reloaded, err := employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, reloaded.DepartmentID)
}
