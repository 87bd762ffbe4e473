package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
	StatusOnLeave Status = "on_leave"
)

// ValidStatuses lists every attendance status as strings for filter checks.
func ValidStatuses() []string {
	return []string{
		string(StatusPresent),
		string(StatusAbsent),
		string(StatusLate),
		string(StatusHalfDay),
		string(StatusOnLeave),
	}
}

// Attendance is one record per employee per workday. Status is fixed at
// clock-in by the late cutoff rule; clock-out never changes it. on_leave and
// half_day are only ever set by manual edits, never derived from times.
type Attendance struct {
	ID         string
	EmployeeID string

	// Date is the workday in YYYY-MM-DD, derived from the clock-in time's
	// local calendar day.
	Date string

	TimeIn  *time.Time
	TimeOut *time.Time

	Status        Status
	Location      *string
	OvertimeHours float64
	Remarks       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
