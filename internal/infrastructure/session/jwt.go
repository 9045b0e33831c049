package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotAToken indicates the session token is not a parseable JWT.
var ErrNotAToken = errors.New("session: token is not a JWT")

// TokenInfo is the claim summary of a session token. Signature
// verification is the backend's job; this exists so consumers can observe
// expiry instead of guessing from rejected requests. An expired token is
// deliberately NOT auto-cleared — forcing logout is the caller's decision.
type TokenInfo struct {
	Subject   string
	Issuer    string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Expired reports whether the token's expiry has passed. Tokens without an
// exp claim never report expired.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// Inspect parses JWT claims without verifying the signature.
func Inspect(token string) (*TokenInfo, error) {
	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAToken, err)
	}
	info := &TokenInfo{
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	return info, nil
}

// InspectCurrent inspects the manager's active token.
func (m *Manager) InspectCurrent() (*TokenInfo, error) {
	token := m.Token()
	if token == "" {
		return nil, ErrNotAToken
	}
	return Inspect(token)
}
