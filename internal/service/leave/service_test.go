package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/employee"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/leave"
	"github.com/arcadia-hr/hr-portal-go/internal/repository/memory"
)

func newLeaveTestService(t *testing.T) (leave.LeaveService, employee.EmployeeRepository) {
	t.Helper()
	store := memory.NewStore()
	leaveRepo := memory.NewLeaveRequestRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)
	return NewLeaveService(leaveRepo, employeeRepo), employeeRepo
}

func createLeaveTestEmployee(t *testing.T, ctx context.Context, repo employee.EmployeeRepository, email string, vacationDays int) employee.Employee {
	t.Helper()
	balances := leave.DefaultBalances()
	balances[leave.TypeVacation] = vacationDays

	emp, err := repo.Create(ctx, employee.Employee{
		EmployeeCode:  "2001-0001",
		FullName:      "Leave Tester",
		Email:         email,
		Role:          employee.RoleEmployee,
		Status:        employee.StatusActive,
		HireDate:      time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
		LeaveBalances: balances,
	})
	require.NoError(t, err)
	return emp
}

func TestLeaveService_Submit_CountsInclusiveDays(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newLeaveTestService(t)
	emp := createLeaveTestEmployee(t, ctx, employeeRepo, "days@example.com", 10)

	resp, err := svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
		EmployeeID: emp.ID,
		LeaveType:  string(leave.TypeVacation),
		StartDate:  "2026-01-20",
		EndDate:    "2026-01-25",
		Reason:     "family trip",
	})

	require.NoError(t, err)
	assert.Equal(t, 6, resp.Days)
	assert.Equal(t, string(leave.RequestStatusPending), resp.Status)
	assert.Nil(t, resp.ApprovedBy)
}

func TestLeaveService_Submit_SingleDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newLeaveTestService(t)
	emp := createLeaveTestEmployee(t, ctx, employeeRepo, "single@example.com", 10)

	resp, err := svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
		EmployeeID: emp.ID,
		LeaveType:  string(leave.TypeVacation),
		StartDate:  "2026-01-20",
		EndDate:    "2026-01-20",
		Reason:     "errand",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Days)
}

func TestLeaveService_Submit_InsufficientBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newLeaveTestService(t)
	emp := createLeaveTestEmployee(t, ctx, employeeRepo, "broke@example.com", 5)

	_, err := svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
		EmployeeID: emp.ID,
		LeaveType:  string(leave.TypeVacation),
		StartDate:  "2026-01-20",
		EndDate:    "2026-01-25",
		Reason:     "long trip",
	})

	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestLeaveService_Submit_ExactBalanceAllowed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newLeaveTestService(t)
	emp := createLeaveTestEmployee(t, ctx, employeeRepo, "exact@example.com", 6)

	resp, err := svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
		EmployeeID: emp.ID,
		LeaveType:  string(leave.TypeVacation),
		StartDate:  "2026-01-20",
		EndDate:    "2026-01-25",
		Reason:     "uses the whole balance",
	})

	require.NoError(t, err)
	assert.Equal(t, 6, resp.Days)
}

func TestLeaveService_Submit_EndBeforeStart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newLeaveTestService(t)
	emp := createLeaveTestEmployee(t, ctx, employeeRepo, "range@example.com", 10)

	_, err := svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
		EmployeeID: emp.ID,
		LeaveType:  string(leave.TypeVacation),
		StartDate:  "2026-01-25",
		EndDate:    "2026-01-20",
		Reason:     "backwards",
	})

	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestLeaveService_Submit_UnknownLeaveType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newLeaveTestService(t)
	emp := createLeaveTestEmployee(t, ctx, employeeRepo, "type@example.com", 10)

	_, err := svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
		EmployeeID: emp.ID,
		LeaveType:  "sabbatical",
		StartDate:  "2026-01-20",
		EndDate:    "2026-01-21",
		Reason:     "unknown type",
	})

	assert.ErrorIs(t, err, leave.ErrInvalidLeaveType)
}

func TestLeaveService_Decide_ApproveStampsApprover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newLeaveTestService(t)
	emp := createLeaveTestEmployee(t, ctx, employeeRepo, "approve@example.com", 10)

	manager, err := employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode: "2001-0002",
		FullName:     "Manager",
		Email:        "manager@example.com",
		Role:         employee.RoleManager,
		Status:       employee.StatusActive,
		HireDate:     time.Date(2020, 5, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	submitted, err := svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
		EmployeeID: emp.ID,
		LeaveType:  string(leave.TypeVacation),
		StartDate:  "2026-01-20",
		EndDate:    "2026-01-22",
		Reason:     "trip",
	})
	require.NoError(t, err)

	comments := "enjoy"
	decided, err := svc.Decide(ctx, leave.DecideLeaveRequestRequest{
		ID:         submitted.ID,
		ApproverID: manager.ID,
		Decision:   string(leave.RequestStatusApproved),
		Comments:   &comments,
	})

	require.NoError(t, err)
	assert.Equal(t, string(leave.RequestStatusApproved), decided.Status)
	require.NotNil(t, decided.ApprovedBy)
	assert.Equal(t, manager.ID, *decided.ApprovedBy)
	assert.NotNil(t, decided.ApprovedAt)
	require.NotNil(t, decided.Comments)
	assert.Equal(t, comments, *decided.Comments)
}

func TestLeaveService_Decide_TwiceIsConflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newLeaveTestService(t)
	emp := createLeaveTestEmployee(t, ctx, employeeRepo, "twice@example.com", 10)

	submitted, err := svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
		EmployeeID: emp.ID,
		LeaveType:  string(leave.TypeVacation),
		StartDate:  "2026-01-20",
		EndDate:    "2026-01-21",
		Reason:     "trip",
	})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, leave.DecideLeaveRequestRequest{
		ID:         submitted.ID,
		ApproverID: emp.ID,
		Decision:   string(leave.RequestStatusRejected),
	})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, leave.DecideLeaveRequestRequest{
		ID:         submitted.ID,
		ApproverID: emp.ID,
		Decision:   string(leave.RequestStatusApproved),
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestLeaveService_Decide_ApprovalKeepsBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newLeaveTestService(t)
	emp := createLeaveTestEmployee(t, ctx, employeeRepo, "balance@example.com", 5)

	submitted, err := svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
		EmployeeID: emp.ID,
		LeaveType:  string(leave.TypeVacation),
		StartDate:  "2026-01-20",
		EndDate:    "2026-01-22",
		Reason:     "trip",
	})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, leave.DecideLeaveRequestRequest{
		ID:         submitted.ID,
		ApproverID: emp.ID,
		Decision:   string(leave.RequestStatusApproved),
	})
	require.NoError(t, err)

	reloaded, err := employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.LeaveBalances[leave.TypeVacation])
}

func TestLeaveService_List_NewestSubmissionFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newLeaveTestService(t)
	emp := createLeaveTestEmployee(t, ctx, employeeRepo, "order@example.com", 30)

	for _, dates := range [][2]string{
		{"2026-01-05", "2026-01-06"},
		{"2026-02-09", "2026-02-10"},
		{"2026-03-02", "2026-03-03"},
	} {
		_, err := svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
			EmployeeID: emp.ID,
			LeaveType:  string(leave.TypeVacation),
			StartDate:  dates[0],
			EndDate:    dates[1],
			Reason:     "trip",
		})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	requests, err := svc.List(ctx, leave.LeaveRequestFilter{})
	require.NoError(t, err)
	require.Len(t, requests, 3)
	assert.Equal(t, "2026-03-02", requests[0].StartDate)
	assert.Equal(t, "2026-01-05", requests[2].StartDate)
}

func TestLeaveService_List_RepeatableWithoutMutation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newLeaveTestService(t)
	emp := createLeaveTestEmployee(t, ctx, employeeRepo, "repeat@example.com", 30)

	for _, dates := range [][2]string{
		{"2026-01-05", "2026-01-06"},
		{"2026-02-09", "2026-02-10"},
	} {
		_, err := svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
			EmployeeID: emp.ID,
			LeaveType:  string(leave.TypeVacation),
			StartDate:  dates[0],
			EndDate:    dates[1],
			Reason:     "trip",
		})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	pending := string(leave.RequestStatusPending)
	filter := leave.LeaveRequestFilter{Status: &pending}

	first, err := svc.List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := svc.List(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLeaveService_List_FiltersByStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, employeeRepo := newLeaveTestService(t)
	emp := createLeaveTestEmployee(t, ctx, employeeRepo, "filter@example.com", 30)

	first, err := svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
		EmployeeID: emp.ID,
		LeaveType:  string(leave.TypeVacation),
		StartDate:  "2026-01-05",
		EndDate:    "2026-01-06",
		Reason:     "trip",
	})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, leave.SubmitLeaveRequestRequest{
		EmployeeID: emp.ID,
		LeaveType:  string(leave.TypeSick),
		StartDate:  "2026-02-09",
		EndDate:    "2026-02-09",
		Reason:     "flu",
	})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, leave.DecideLeaveRequestRequest{
		ID:         first.ID,
		ApproverID: emp.ID,
		Decision:   string(leave.RequestStatusApproved),
	})
	require.NoError(t, err)

	pending := string(leave.RequestStatusPending)
	requests, err := svc.List(ctx, leave.LeaveRequestFilter{Status: &pending})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, string(leave.TypeSick), requests[0].LeaveType)
}
