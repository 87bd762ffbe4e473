package leave

import (
	"time"
)

// Type enumerates the leave entitlements tracked per employee.
type Type string

const (
	TypeVacation    Type = "vacation"
	TypeSick        Type = "sick"
	TypeEmergency   Type = "emergency"
	TypeMaternity   Type = "maternity"
	TypePaternity   Type = "paternity"
	TypeStudy       Type = "study"
	TypeBereavement Type = "bereavement"
)

// AllTypes returns every leave type in a stable order.
func AllTypes() []Type {
	return []Type{
		TypeVacation,
		TypeSick,
		TypeEmergency,
		TypeMaternity,
		TypePaternity,
		TypeStudy,
		TypeBereavement,
	}
}

// DefaultBalances returns the standard yearly entitlement in days, applied
// when a new employee record does not name its own balances.
func DefaultBalances() map[Type]int {
	return map[Type]int{
		TypeVacation:    12,
		TypeSick:        10,
		TypeEmergency:   5,
		TypeMaternity:   90,
		TypePaternity:   7,
		TypeStudy:       5,
		TypeBereavement: 3,
	}
}

// IsValidType reports whether t is a known leave type.
func IsValidType(t Type) bool {
	for _, known := range AllTypes() {
		if t == known {
			return true
		}
	}
	return false
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// LeaveRequest entity. A request is created pending and transitions exactly
// once to approved or rejected; terminal states are never left.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  Type

	StartDate time.Time
	EndDate   time.Time
	Days      int

	Reason string

	Status     RequestStatus
	ApprovedBy *string
	ApprovedAt *time.Time
	Comments   *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InclusiveDays counts whole days from start to end, both endpoints included:
// 2024-01-20..2024-01-25 is 6 days. Times of day are ignored.
func InclusiveDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}
