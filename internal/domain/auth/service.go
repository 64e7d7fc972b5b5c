package auth

import (
	"context"
)

// AuthService authenticates the single admin principal.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
