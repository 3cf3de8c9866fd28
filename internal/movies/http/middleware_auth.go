package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/internal/movies/metrics"
	"github.com/aussiebroadwan/movies/internal/movies/service"
	"github.com/aussiebroadwan/movies/pkg/httpx"
	"github.com/aussiebroadwan/movies/pkg/slogx"
)

type currentUserKey struct{}

// CurrentUser returns the user authenticated by RequireUser.
func CurrentUser(ctx context.Context) (domain.PublicUser, bool) {
	u, ok := ctx.Value(currentUserKey{}).(domain.PublicUser)
	return u, ok
}

// Authorizer is the part of AuthService the middleware needs.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (domain.PublicUser, error)
}

// RequireUser rejects the request unless it carries a valid bearer token for
// an enabled account. m may be nil.
func RequireUser(auth Authorizer, m *metrics.Metrics) httpx.Middleware {
	observe := func(outcome string) {
		if m != nil {
			m.ObserveAuthorization(outcome)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := httpx.BearerToken(r)
			if err != nil {
				slogx.FromContext(ctx).Info("bearer token missing", slog.Any("error", err))
				observe(metrics.AuthUnauthenticated)
				writeUnauthorized(w, msgCouldNotValidate)
				return
			}

			user, err := auth.Authorize(ctx, token)
			switch {
			case err == nil:
			case errors.Is(err, service.ErrUnauthenticated):
				observe(metrics.AuthUnauthenticated)
				writeUnauthorized(w, msgCouldNotValidate)
				return
			case errors.Is(err, service.ErrAccountDisabled):
				observe(metrics.AuthDisabled)
				httpx.WriteDetail(w, http.StatusBadRequest, msgUserDisabled)
				return
			default:
				observe(metrics.AuthError)
				writeInternal(w, r, err)
				return
			}

			observe(metrics.AuthAllowed)
			ctx = context.WithValue(ctx, currentUserKey{}, user)
			ctx = httpx.WithUsername(ctx, user.Username)
			ctx = slogx.With(ctx, slog.String("username", user.Username))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
