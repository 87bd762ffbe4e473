package department

import (
	"github.com/arcadia-hr/hr-portal-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name           string  `json:"name"`
	HeadEmployeeID *string `json:"head_employee_id,omitempty"`
	Description    *string `json:"description,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateDepartmentRequest struct {
	ID             string  `json:"-"`
	Name           *string `json:"name,omitempty"`
	HeadEmployeeID *string `json:"head_employee_id,omitempty"`
	Description    *string `json:"description,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DepartmentResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	HeadEmployeeID *string `json:"head_employee_id,omitempty"`
	Description    *string `json:"description,omitempty"`

	// TotalEmployees is computed from the employee collection at read time,
	// never stored.
	TotalEmployees int `json:"total_employees"`
}
