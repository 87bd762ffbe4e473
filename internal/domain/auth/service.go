package auth

import (
	"context"
)

// AuthService issues identity tokens for the portal session.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
