package jwt

import (
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestJWTService_GenerateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, expiresAt, err := svc.GenerateAccessToken(AccessClaims{
		EmployeeID: "EMP001",
		Name:       "Budi Santoso",
		Department: "Engineering",
		IsAdmin:    true,
	})
	require.NoError(t, err)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims := decoded.PrivateClaims()
	assert.Equal(t, "EMP001", claims["employee_id"])
	assert.Equal(t, "Budi Santoso", claims["name"])
	assert.Equal(t, "Engineering", claims["department"])
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, TokenTypeAccess, claims["type"])
}

func TestJWTService_GenerateRefreshToken_Unique(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	first, _, err := svc.GenerateRefreshToken("EMP001")
	require.NoError(t, err)
	second, _, err := svc.GenerateRefreshToken("EMP001")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_InvalidDuration(t *testing.T) {
	svc := NewJWTService(testSecret, "forever", "24h")

	_, _, err := svc.GenerateAccessToken(AccessClaims{EmployeeID: "EMP001"})

	assert.Error(t, err)
}

func TestJWTService_SSEToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, expiresIn, err := svc.GenerateSSEToken("EMP001")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	employeeID, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "EMP001", employeeID)
}

func TestJWTService_ValidateSSEToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")
	access, _, err := svc.GenerateAccessToken(AccessClaims{EmployeeID: "EMP001"})
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(access)
	assert.Error(t, err)

	_, err = svc.ValidateSSEToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_ValidateSSEToken_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("other-secret", "1h", "24h").GenerateSSEToken("EMP001")
	require.NoError(t, err)

	_, err = NewJWTService(testSecret, "1h", "24h").ValidateSSEToken(token)
	assert.Error(t, err)
}
