package httpx

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrMissingBearer   = errors.New("httpx: missing bearer token")
	ErrMalformedBearer = errors.New("httpx: malformed authorization header")
)

// BearerToken pulls the token out of "Authorization: Bearer <token>". The
// scheme is matched case-insensitively per RFC 6750.
func BearerToken(r *http.Request) (string, error) {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	if authz == "" {
		return "", ErrMissingBearer
	}

	scheme, token, ok := strings.Cut(authz, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMalformedBearer
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrMalformedBearer
	}
	return token, nil
}

// WriteBearerChallenge sets the WWW-Authenticate header clients use to know
// they should retry with a bearer token.
func WriteBearerChallenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
}
