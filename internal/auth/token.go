package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenInfo holds claims read from a bearer token without verifying its
// signature. The client never validates tokens; the backend does. Inspection
// only serves expiry display and discarding stale persisted sessions.
type TokenInfo struct {
	Subject   string
	IssuedAt  *time.Time
	ExpiresAt *time.Time
}

// InspectToken parses a JWT without signature verification. Opaque tokens
// return an error and should simply be treated as uninspectable.
func InspectToken(tokenStr string) (*TokenInfo, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return nil, err
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = &iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = &exp.Time
	}
	if info.ExpiresAt == nil && info.IssuedAt == nil && info.Subject == "" {
		return nil, errors.New("token carries no readable claims")
	}
	return info, nil
}

// Expired reports whether the token's expiry claim, if any, is in the past.
// Tokens without an expiry claim are never considered expired client-side.
func (t *TokenInfo) Expired(now time.Time) bool {
	return t != nil && t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}

// TokenExpired reports whether tokenStr is an inspectable JWT that has
// already expired. Uninspectable tokens yield false.
func TokenExpired(tokenStr string, now time.Time) bool {
	info, err := InspectToken(tokenStr)
	if err != nil {
		return false
	}
	return info.Expired(now)
}
