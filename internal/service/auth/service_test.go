package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/auth"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/employee"
	"github.com/arcadia-hr/hr-portal-go/internal/pkg/jwt"
	"github.com/arcadia-hr/hr-portal-go/internal/repository/memory"
)

func newAuthTestService(t *testing.T) (auth.AuthService, employee.EmployeeRepository) {
	t.Helper()
	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	jwtService := jwt.NewJWTService("test-secret", "1h")
	return NewAuthService(employeeRepo, jwtService), employeeRepo
}

func TestAuthService_Login_IssuesToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newAuthTestService(t)

	emp, err := employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode: "7001-0001",
		FullName:     "Login Tester",
		Email:        "login@example.com",
		Role:         employee.RoleManager,
		Status:       employee.StatusActive,
		HireDate:     time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "login@example.com"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
	assert.Equal(t, emp.ID, resp.Employee.ID)
	assert.Equal(t, string(employee.RoleManager), resp.Employee.Role)
}

func TestAuthService_Login_CaseInsensitiveEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newAuthTestService(t)

	_, err := employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode: "7001-0002",
		FullName:     "Mixed Case",
		Email:        "Mixed.Case@example.com",
		Role:         employee.RoleEmployee,
		Status:       employee.StatusActive,
		HireDate:     time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "mixed.case@example.com"})
	assert.NoError(t, err)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAuthTestService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "ghost@example.com"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAuthService_Login_ResignedEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newAuthTestService(t)

	_, err := employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode: "7001-0003",
		FullName:     "Former",
		Email:        "former@example.com",
		Role:         employee.RoleEmployee,
		Status:       employee.StatusResigned,
		HireDate:     time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "former@example.com"})
	assert.ErrorIs(t, err, auth.ErrInactiveEmployee)
}
