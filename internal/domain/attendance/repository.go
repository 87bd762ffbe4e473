package attendance

import (
	"context"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts the record. One record per (employee, date): a second
	// insert for the same pair returns ErrAlreadyClockedIn. The check and
	// the insert happen under the same store lock.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns the record for one employee on one
	// workday, or ErrAttendanceNotFound when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (Attendance, error)

	Update(ctx context.Context, att Attendance) error
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
	ListByDate(ctx context.Context, date string) ([]Attendance, error)
	Delete(ctx context.Context, id string) error
}
