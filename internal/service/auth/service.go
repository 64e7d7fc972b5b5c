package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/scanpoint/attendance-backend-go/internal/domain/auth"
	"github.com/scanpoint/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	jwtService        jwt.Service
	adminPasswordHash string
}

func NewAuthService(jwtService jwt.Service, adminPasswordHash string) auth.AuthService {
	return &AuthServiceImpl{
		jwtService:        jwtService,
		adminPasswordHash: adminPasswordHash,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.adminPasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken()
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
