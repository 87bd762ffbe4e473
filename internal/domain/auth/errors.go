package auth

import "errors"

var (
	ErrInvalidToken          = errors.New("invalid or missing token")
	ErrInactiveEmployee      = errors.New("employee is not active")
	ErrManagerAccessRequired = errors.New("manager access required")
	ErrAdminAccessRequired   = errors.New("admin access required")
)
