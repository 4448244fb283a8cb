package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPreviewLength is how many token characters Preview keeps.
const TokenPreviewLength = 20

// ExpiresAt returns the exp claim of the session token.
//
// The signature is not verified; the backend remains the authority on
// whether a token is accepted. Returns ErrNotJWT for opaque tokens.
func (s *Session) ExpiresAt() (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(s.Token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// Expired reports whether the token's exp claim is before now.
// Tokens without a readable expiry are never reported as expired.
func (s *Session) Expired(now time.Time) bool {
	exp, err := s.ExpiresAt()
	if err != nil {
		return false
	}
	return now.After(exp)
}

// Preview returns the first TokenPreviewLength characters of the token
// followed by "...".
func (s *Session) Preview() string {
	token := s.Token
	if len(token) > TokenPreviewLength {
		token = token[:TokenPreviewLength]
	}
	return token + "..."
}
