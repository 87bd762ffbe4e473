package employee

import (
	"time"

	"github.com/arcadia-hr/hr-portal-go/internal/domain/leave"
	"github.com/arcadia-hr/hr-portal-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string         `json:"employee_code"`
	FullName     string         `json:"full_name"`
	Email        string         `json:"email"`
	PhoneNumber  string         `json:"phone_number"`
	DepartmentID string         `json:"department_id"`
	Position     string         `json:"position"`
	Role         string         `json:"role"`
	HireDate     string         `json:"hire_date"` // YYYY-MM-DD
	AvatarURL    *string        `json:"avatar_url,omitempty"`
	// Optional; defaults are applied when omitted.
	LeaveBalances map[string]int `json:"leave_balances,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must match NNNN-NNNN",
		})
	}

	if !IsValidRole(Role(r.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, manager, employee",
		})
	}

	if _, valid := validator.IsValidDate(r.HireDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	for lt := range r.LeaveBalances {
		if !leave.IsValidType(leave.Type(lt)) {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_balances",
				Message: "unknown leave type: " + lt,
			})
		}
		if r.LeaveBalances[lt] < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_balances",
				Message: "balance for " + lt + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	FullName     *string `json:"full_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	Position     *string `json:"position,omitempty"`
	Role         *string `json:"role,omitempty"`
	Status       *string `json:"status,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Role != nil && !IsValidRole(Role(*r.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, manager, employee",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusResigned)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, resigned",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SetLeaveBalanceRequest sets the remaining days for a single leave type.
type SetLeaveBalanceRequest struct {
	ID        string `json:"-"`
	LeaveType string `json:"leave_type"`
	Days      int    `json:"days"`
}

func (r *SetLeaveBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !leave.IsValidType(leave.Type(r.LeaveType)) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "unknown leave type",
		})
	}

	if r.Days < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	DepartmentID *string `json:"department_id,omitempty"`
	Status       *string `json:"status,omitempty"`
	Search       *string `json:"search,omitempty"` // matches name or employee code
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{string(StatusActive), string(StatusResigned)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, resigned",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID            string         `json:"id"`
	EmployeeCode  string         `json:"employee_code"`
	FullName      string         `json:"full_name"`
	Email         string         `json:"email"`
	PhoneNumber   string         `json:"phone_number,omitempty"`
	DepartmentID  string         `json:"department_id,omitempty"`
	Position      string         `json:"position,omitempty"`
	Role          string         `json:"role"`
	Status        string         `json:"status"`
	HireDate      string         `json:"hire_date"`
	AvatarURL     *string        `json:"avatar_url,omitempty"`
	LeaveBalances map[string]int `json:"leave_balances"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
}

func (e Employee) ToResponse() EmployeeResponse {
	balances := make(map[string]int, len(e.LeaveBalances))
	for lt, days := range e.LeaveBalances {
		balances[string(lt)] = days
	}

	return EmployeeResponse{
		ID:            e.ID,
		EmployeeCode:  e.EmployeeCode,
		FullName:      e.FullName,
		Email:         e.Email,
		PhoneNumber:   e.PhoneNumber,
		DepartmentID:  e.DepartmentID,
		Position:      e.Position,
		Role:          string(e.Role),
		Status:        string(e.Status),
		HireDate:      e.HireDate.Format("2006-01-02"),
		AvatarURL:     e.AvatarURL,
		LeaveBalances: balances,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.Format(time.RFC3339),
	}
}
