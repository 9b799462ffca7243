//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"tripstack/internal/domain/user"
	"tripstack/internal/pkg/clock"
	"tripstack/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-signing"

func TestGenerateAndValidateToken(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	svc := jwt.NewService(testSecret, 15*time.Minute, clk)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	// Issue the token well in the past so its expiry has already passed.
	clk := clock.NewMockClock(time.Now().Add(-48 * time.Hour))
	svc := jwt.NewService(testSecret, 15*time.Minute, clk)

	token, err := svc.GenerateToken(uuid.New(), user.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	issuer := jwt.NewService(testSecret, 15*time.Minute, clk)
	verifier := jwt.NewService("a-different-secret", 15*time.Minute, clk)

	token, err := issuer.GenerateToken(uuid.New(), user.RoleUser)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	svc := jwt.NewService(testSecret, 15*time.Minute, clock.NewMockClock(time.Now()))

	_, err := svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
