package auth_test

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SohamMhatre7788/insurai/internal/auth"
)

func signJWT(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)
	return signed
}

func TestInspectTokenReadsClaimsWithoutVerification(t *testing.T) {
	expiry := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := signJWT(t, jwt.MapClaims{
		"sub": "client@example.com",
		"iat": expiry.Add(-3 * time.Hour).Unix(),
		"exp": expiry.Unix(),
	})

	info, err := auth.InspectToken(token)
	require.NoError(t, err)
	assert.Equal(t, "client@example.com", info.Subject)
	require.NotNil(t, info.ExpiresAt)
	assert.True(t, expiry.Equal(*info.ExpiresAt))
	assert.False(t, info.Expired(time.Now()))
	assert.True(t, info.Expired(expiry.Add(time.Minute)))
}

func TestTokenExpired(t *testing.T) {
	past := signJWT(t, jwt.MapClaims{"sub": "x", "exp": time.Now().Add(-time.Hour).Unix()})
	future := signJWT(t, jwt.MapClaims{"sub": "x", "exp": time.Now().Add(time.Hour).Unix()})
	noExpiry := signJWT(t, jwt.MapClaims{"sub": "x"})

	now := time.Now()
	assert.True(t, auth.TokenExpired(past, now))
	assert.False(t, auth.TokenExpired(future, now))
	assert.False(t, auth.TokenExpired(noExpiry, now), "tokens without exp never expire client-side")
	assert.False(t, auth.TokenExpired("opaque-session-id", now), "uninspectable tokens are kept")
}
