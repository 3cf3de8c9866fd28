package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/internal/movies/store"
	"github.com/aussiebroadwan/movies/pkg/cryptox"
	"github.com/aussiebroadwan/movies/pkg/jwtx"
	"github.com/aussiebroadwan/movies/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrAccountDisabled    = errors.New("account_disabled")
)

// TokenCodec issues and decodes access tokens. *jwtx.Codec implements it.
type TokenCodec interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Decode(token string) (jwtx.Claims, error)
}

// AuthService is the gate in front of protected routes: it turns credentials
// into tokens and tokens back into users.
type AuthService struct {
	Users     store.Users
	Codec     TokenCodec
	AccessTTL time.Duration
}

// Login checks username and password and mints an access token. An unknown
// user and a wrong password give the same error. Disabled accounts can still
// log in; they are refused by Authorize.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.AccessToken, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			cryptox.BurnPasswordCheck(password)
			l.Info("login failed", slog.String("reason", "unknown_user"))
			return domain.AccessToken{}, ErrInvalidCredentials
		}
		return domain.AccessToken{}, fmt.Errorf("find user: %w", err)
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash) {
		l.Info("login failed", slog.String("reason", "bad_password"), slog.String("username", username))
		return domain.AccessToken{}, ErrInvalidCredentials
	}

	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	token, err := s.Codec.Issue(user.Username, ttl)
	if err != nil {
		return domain.AccessToken{}, fmt.Errorf("issue token: %w", err)
	}

	l.Info("login succeeded", slog.String("username", user.Username))
	return domain.AccessToken{AccessToken: token, TokenType: domain.TokenTypeBearer}, nil
}

// Authorize validates a bearer token and returns the user it names. The user
// is looked up again on every call so a deleted or disabled account loses
// access before its token expires.
func (s *AuthService) Authorize(ctx context.Context, token string) (domain.PublicUser, error) {
	l := slogx.FromContext(ctx)

	claims, err := s.Codec.Decode(token)
	if err != nil {
		l.Warn("bearer token rejected",
			slog.String("token_fp", cryptox.FingerprintToken(token)),
			slog.Any("error", err),
		)
		return domain.PublicUser{}, ErrUnauthenticated
	}

	user, err := s.Users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Warn("token subject no longer exists", slog.String("username", claims.Subject))
			return domain.PublicUser{}, ErrUnauthenticated
		}
		return domain.PublicUser{}, fmt.Errorf("find user: %w", err)
	}

	if user.Disabled {
		return domain.PublicUser{}, ErrAccountDisabled
	}
	return user.Public(), nil
}
