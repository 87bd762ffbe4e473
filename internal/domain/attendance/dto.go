package attendance

import (
	"time"

	"github.com/arcadia-hr/hr-portal-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID string  `json:"-"`
	Location   *string `json:"location,omitempty"`

	// At is the clock event time, supplied by the caller (the handler uses
	// the current time). The workday and the late cutoff are evaluated in
	// At's location.
	At time.Time `json:"-"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.At.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "at",
			Message: "clock event time is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	EmployeeID string `json:"-"`

	// Date optionally names the workday to close; defaults to At's calendar
	// day when empty.
	Date string `json:"date,omitempty"`

	At time.Time `json:"-"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Date != "" {
		if _, valid := validator.IsValidDate(r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.At.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "at",
			Message: "clock event time is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAttendanceRequest lets admins fix records and set the out-of-band
// statuses (on_leave, half_day) the clock never produces.
type UpdateAttendanceRequest struct {
	ID            string   `json:"-"`
	Status        *string  `json:"status,omitempty"`
	TimeIn        *string  `json:"time_in,omitempty"`  // HH:MM:SS
	TimeOut       *string  `json:"time_out,omitempty"` // HH:MM:SS
	Location      *string  `json:"location,omitempty"`
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
	Remarks       *string  `json:"remarks,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, half_day, on_leave",
		})
	}

	if r.TimeIn != nil {
		if _, err := time.Parse("15:04:05", *r.TimeIn); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "time_in",
				Message: "time_in must be in HH:MM:SS format",
			})
		}
	}

	if r.TimeOut != nil {
		if _, err := time.Parse("15:04:05", *r.TimeOut); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "time_out",
				Message: "time_out must be in HH:MM:SS format",
			})
		}
	}

	if r.OvertimeHours != nil && *r.OvertimeHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_hours",
			Message: "overtime_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, half_day, on_leave",
		})
	}

	for field, value := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDate(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	TimeIn        *string `json:"time_in,omitempty"`
	TimeOut       *string `json:"time_out,omitempty"`
	Status        string  `json:"status"`
	Location      *string `json:"location,omitempty"`
	OvertimeHours float64 `json:"overtime_hours"`
	Remarks       *string `json:"remarks,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func (a Attendance) ToResponse() AttendanceResponse {
	clock := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format("15:04:05")
		return &s
	}

	return AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		Date:          a.Date,
		TimeIn:        clock(a.TimeIn),
		TimeOut:       clock(a.TimeOut),
		Status:        string(a.Status),
		Location:      a.Location,
		OvertimeHours: a.OvertimeHours,
		Remarks:       a.Remarks,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
}

// StatsResponse aggregates one workday. Absent covers active employees with
// no record for the day as well as records explicitly marked absent.
type StatsResponse struct {
	Date           string  `json:"date"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Late           int     `json:"late"`
	OnLeave        int     `json:"on_leave"`
	TotalEmployees int     `json:"total_employees"`
	AttendanceRate float64 `json:"attendance_rate"`
}
