package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/attendance"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/employee"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/leave"
)

func newStoreTestEmployee(code string, email string) employee.Employee {
	return employee.Employee{
		EmployeeCode: code,
		FullName:     "Store Tester",
		Email:        email,
		Role:         employee.RoleEmployee,
		Status:       employee.StatusActive,
		HireDate:     time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestEmployeeRepository_Create_AssignsIDAndTimestamps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewEmployeeRepository(NewStore())

	created, err := repo.Create(ctx, newStoreTestEmployee("8001-0001", "fresh@example.com"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.NotNil(t, created.LeaveBalances)
}

func TestEmployeeRepository_Create_UniqueEmailAndCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewEmployeeRepository(NewStore())

	_, err := repo.Create(ctx, newStoreTestEmployee("8001-0002", "unique@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newStoreTestEmployee("8001-0003", "UNIQUE@example.com"))
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	_, err = repo.Create(ctx, newStoreTestEmployee("8001-0002", "other@example.com"))
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestEmployeeRepository_Update_RefreshesUpdatedAt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewEmployeeRepository(NewStore())

	created, err := repo.Create(ctx, newStoreTestEmployee("8001-0004", "touch@example.com"))
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	created.Position = "Senior Tester"
	require.NoError(t, repo.Update(ctx, created))

	reloaded, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Tester", reloaded.Position)
	assert.Equal(t, created.CreatedAt, reloaded.CreatedAt)
	assert.True(t, reloaded.UpdatedAt.After(reloaded.CreatedAt))
}

func TestEmployeeRepository_GetByID_ReturnsCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewEmployeeRepository(NewStore())

	emp := newStoreTestEmployee("8001-0005", "copy@example.com")
	emp.LeaveBalances = map[leave.Type]int{leave.TypeVacation: 12}
	created, err := repo.Create(ctx, emp)
	require.NoError(t, err)

	first, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	first.LeaveBalances[leave.TypeVacation] = 0

	second, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, second.LeaveBalances[leave.TypeVacation])
}

func TestEmployeeRepository_Delete_LeavesAttendanceOrphaned(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore()
	employeeRepo := NewEmployeeRepository(store)
	attendanceRepo := NewAttendanceRepository(store)

	created, err := employeeRepo.Create(ctx, newStoreTestEmployee("8001-0006", "orphan@example.com"))
	require.NoError(t, err)

	timeIn := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	record, err := attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: created.ID,
		Date:       "2026-03-02",
		TimeIn:     &timeIn,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	require.NoError(t, employeeRepo.Delete(ctx, created.ID))

	_, err = employeeRepo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	kept, err := attendanceRepo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, kept.EmployeeID)
}

func TestAttendanceRepository_GetByEmployeeAndDate_MissingIsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewAttendanceRepository(NewStore())

	_, err := repo.GetByEmployeeAndDate(ctx, "nobody", "2026-03-02")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceRepository_Create_RejectsSecondRecordForWorkday(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewAttendanceRepository(NewStore())

	timeIn := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		TimeIn:     &timeIn,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		TimeIn:     &timeIn,
		Status:     attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)

	records, err := repo.List(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// A different workday for the same employee is still fine.
	_, err = repo.Create(ctx, attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       "2026-03-03",
		TimeIn:     &timeIn,
		Status:     attendance.StatusPresent,
	})
	assert.NoError(t, err)
}

func TestAttendanceRepository_Create_ConcurrentClockInsInsertOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewAttendanceRepository(NewStore())

	timeIn := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	const workers = 50
	var wg sync.WaitGroup
	var inserted atomic.Int64
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, attendance.Attendance{
				EmployeeID: "emp-1",
				Date:       "2026-03-02",
				TimeIn:     &timeIn,
				Status:     attendance.StatusPresent,
			})
			if err == nil {
				inserted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), inserted.Load())

	records, err := repo.List(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestLeaveRequestRepository_UpdateIfPending_KeepsFirstDecision(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewLeaveRequestRepository(NewStore())

	created, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeVacation,
		StartDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
		Days:       3,
		Reason:     "trip",
		Status:     leave.RequestStatusPending,
	})
	require.NoError(t, err)

	firstApprover := "mgr-1"
	approved := created
	approved.Status = leave.RequestStatusApproved
	approved.ApprovedBy = &firstApprover
	require.NoError(t, repo.UpdateIfPending(ctx, approved))

	secondApprover := "mgr-2"
	rejected := created
	rejected.Status = leave.RequestStatusRejected
	rejected.ApprovedBy = &secondApprover
	err = repo.UpdateIfPending(ctx, rejected)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	reloaded, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.RequestStatusApproved, reloaded.Status)
	require.NotNil(t, reloaded.ApprovedBy)
	assert.Equal(t, firstApprover, *reloaded.ApprovedBy)
}

func TestLeaveRequestRepository_List_SortsBySubmission(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewLeaveRequestRepository(NewStore())

	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, leave.LeaveRequest{
			EmployeeID:  "emp-1",
			LeaveType:   leave.TypeVacation,
			StartDate:   base.AddDate(0, 0, i*7),
			EndDate:     base.AddDate(0, 0, i*7+1),
			Days:        2,
			Reason:      "trip",
			Status:      leave.RequestStatusPending,
			SubmittedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	requests, err := repo.List(ctx, leave.LeaveRequestFilter{})
	require.NoError(t, err)
	require.Len(t, requests, 3)
	assert.True(t, requests[0].SubmittedAt.After(requests[1].SubmittedAt))
	assert.True(t, requests[1].SubmittedAt.After(requests[2].SubmittedAt))
}
