package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the lifetime of an access token unless the
// service is configured otherwise. Tokens cannot be revoked, so keep it short.
const DefaultAccessTokenTTL = 2 * time.Minute

// Claims are the access-token claims: the subject (username) and the expiry.
// Nothing else is carried; the subject is re-resolved on every request.
type Claims struct {
	jwt.RegisteredClaims
}

// NewAccessClaims builds claims for subject expiring ttl after now.
func NewAccessClaims(subject string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// Expiry returns the exp claim, or the zero time if absent.
func (c Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// ValidateSubject ensures the token names someone.
func (c Claims) ValidateSubject() error {
	if c.Subject == "" {
		return ErrMissingSubject
	}
	return nil
}

// ValidateExpiry requires exp to be strictly after now. A token whose exp
// equals now is already expired.
func (c Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrMissingExpiry
	}
	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}
