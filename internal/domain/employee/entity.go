package employee

import (
	"time"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/leave"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	PhoneNumber  string
	DepartmentID string
	Position     string
	Role         Role
	Status       EmploymentStatus
	HireDate     time.Time
	AvatarURL    *string

	// LeaveBalances maps leave type to remaining entitlement in days.
	// Kept >= 0 by convention; the leave service checks it at submission
	// but approval does not debit it.
	LeaveBalances map[leave.Type]int

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

func IsValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleEmployee
}

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "active"
	StatusResigned EmploymentStatus = "resigned"
)
