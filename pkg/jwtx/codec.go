package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrDecode is the single error kind callers see for a token that cannot
	// be trusted. The wrapped cause is for server-side logs only.
	ErrDecode = errors.New("jwtx: invalid token")

	ErrEmptySecret    = errors.New("jwtx: empty signing secret")
	ErrEmptySubject   = errors.New("jwtx: empty subject")
	ErrMissingSubject = errors.New("jwtx: missing sub claim")
	ErrMissingExpiry  = errors.New("jwtx: missing exp claim")
	ErrExpired        = errors.New("jwtx: token expired")
)

// Config holds what a Codec needs. The secret is copied at construction.
type Config struct {
	// Secret is the HMAC key shared by every token the process issues.
	Secret []byte

	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// Codec issues and decodes HS256 access tokens. It is immutable and safe for
// concurrent use.
type Codec struct {
	secret []byte
	now    func() time.Time
	parser *jwt.Parser
}

// New returns a Codec for cfg.
func New(cfg Config) (*Codec, error) {
	if len(cfg.Secret) == 0 {
		return nil, ErrEmptySecret
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	c := &Codec{
		secret: append([]byte(nil), cfg.Secret...),
		now:    func() time.Time { return now().UTC() },
	}

	// The library checks exp as well; ValidateExpiry below is what we rely on.
	c.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	return c, nil
}

// Alg is always HS256.
func (c *Codec) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Issue signs {sub, exp = now + ttl}.
func (c *Codec) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}

	claims := NewAccessClaims(subject, ttl, c.now())
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return token, nil
}

// Decode verifies the signature and claims of token. Every failure wraps
// ErrDecode.
func (c *Codec) Decode(token string) (Claims, error) {
	var claims Claims
	parsed, err := c.parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		// WithValidMethods already rejected every other alg
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if !parsed.Valid {
		return Claims{}, ErrDecode
	}

	if err := claims.ValidateSubject(); err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := claims.ValidateExpiry(c.now()); err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return claims, nil
}

// checkSubject is the subject of the tokens minted by Check.
const checkSubject = "readiness-check"

// Check signs a short-lived token and decodes it again. Readiness probes
// use it to confirm the codec can still mint tokens it accepts.
func (c *Codec) Check() error {
	token, err := c.Issue(checkSubject, time.Minute)
	if err != nil {
		return err
	}

	claims, err := c.Decode(token)
	if err != nil {
		return err
	}
	if claims.Subject != checkSubject {
		return fmt.Errorf("jwtx: check decoded subject %q", claims.Subject)
	}
	return nil
}
