package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, expiresAt, err := svc.GenerateAccessToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	role, _ := decoded.Get("role")
	assert.Equal(t, "admin", role)
	typ, _ := decoded.Get("type")
	assert.Equal(t, "access", typ)
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration")

	_, _, err := svc.GenerateAccessToken()
	assert.Error(t, err)
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")
	token, _, err := svc.GenerateAccessToken()
	require.NoError(t, err)

	other := NewJWTService("a-different-secret", "1h")
	_, err = jwtauth.VerifyToken(other.JWTAuth(), token)
	assert.Error(t, err)
}
