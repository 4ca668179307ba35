package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelfswap/config"
	"shelfswap/internal/domain/service"
)

func newTestJWTService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	userID := uuid.New()
	access, refresh, err := svc.GenerateTokens(userID, "reader@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_ValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	svc := newTestJWTService(t)

	_, refresh, err := svc.GenerateTokens(uuid.New(), "reader@example.com")
	require.NoError(t, err)

	// Refresh tokens are signed with a different secret, so validation must fail.
	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestJWTService_ValidateAccessToken_Malformed(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_ValidateAccessToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "access",
	})
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(signed)
	assert.Error(t, err)
}

func TestJWTService_ValidateAccessToken_Expired(t *testing.T) {
	svc := newTestJWTService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
		"type": "access",
	})
	signed, err := token.SignedString([]byte("test-access-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(signed)
	assert.Error(t, err)
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	svc := newTestJWTService(t)
	assert.Equal(t, 24*time.Hour, svc.AccessTokenDuration())
}
