package auth

import (
	"github.com/arcadia-hr/hr-portal-go/internal/domain/employee"
	"github.com/arcadia-hr/hr-portal-go/internal/pkg/validator"
)

// LoginRequest identifies an employee by email. The portal session is
// identity-only: the lookup selects the employee and no credential is
// checked.
type LoginRequest struct {
	Email string `json:"email"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken string                    `json:"access_token"`
	ExpiresAt   int64                     `json:"expires_at"`
	Employee    employee.EmployeeResponse `json:"employee"`
}
