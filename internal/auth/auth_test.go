package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateAccessToken(7, "donor@example.com", RoleMaintainer, testSecret)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "donor@example.com", claims.Email)
	assert.Equal(t, RoleMaintainer, claims.Role)
	assert.Equal(t, "access", claims.TokenType)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(1, "a@b.c", RoleMember, testSecret)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	now := time.Now().Add(-2 * time.Hour)
	claims := &JWTClaims{
		UserID:    1,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtIssuer,
			Audience:  []string{jwtAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ValidateToken(tokenStr, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestEmptySecret(t *testing.T) {
	_, err := GenerateAccessToken(1, "a@b.c", RoleMember, "")
	assert.ErrorIs(t, err, ErrEmptyJWTSecret)

	_, err = ValidateToken("whatever", "")
	assert.ErrorIs(t, err, ErrEmptyJWTSecret)
}

func TestRefreshAccessToken(t *testing.T) {
	refresh, err := GenerateRefreshToken(3, "m@n.o", RoleStaff, testSecret)
	require.NoError(t, err)

	access, claims, err := RefreshAccessToken(refresh, testSecret, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)

	got, err := ValidateToken(access, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "access", got.TokenType)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	access, err := GenerateAccessToken(3, "m@n.o", RoleStaff, testSecret)
	require.NoError(t, err)

	_, _, err = RefreshAccessToken(access, testSecret, testSecret)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}
