// Package memory implements the record store over process-local collections.
// It mirrors the repository interfaces of the domain packages; every
// operation takes the store lock, so the one-record-per-day check at
// clock-in and the pending-state check at leave approval are effectively
// check-and-set.
package memory

import (
	"sync"
	"time"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/attendance"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/department"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/employee"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/leave"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/memo"
	"github.com/arcadia-hr/hr-portal-go/internal/domain/task"
	"github.com/google/uuid"
)

// Store holds every entity collection behind a single RWMutex. Repositories
// share one *Store; construct one per process (or per test) and inject it.
type Store struct {
	mu sync.RWMutex

	employees     []employee.Employee
	departments   []department.Department
	attendances   []attendance.Attendance
	leaveRequests []leave.LeaveRequest
	memos         []memo.Memo
	tasks         []task.Task
}

func NewStore() *Store {
	return &Store{}
}

// newID returns a UUIDv7 so ids sort by creation time.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func now() time.Time {
	return time.Now().UTC()
}
