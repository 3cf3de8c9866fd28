package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/internal/movies/metrics"
	"github.com/aussiebroadwan/movies/internal/movies/service"
	"github.com/aussiebroadwan/movies/pkg/httpx"
	"github.com/aussiebroadwan/movies/pkg/slogx"
)

// maxFormBytes caps the login body.
const maxFormBytes = 1 << 14

type LoginHandler struct {
	AuthService *service.AuthService
	Metrics     *metrics.Metrics
}

// ServeHTTP exchanges a username and password for an access token.
//
//	@Summary		Log in
//	@Description	Exchanges form-encoded credentials for a short-lived HS256 bearer token.
//	@Description	Unknown usernames and wrong passwords get the same answer.
//	@Tags			Login
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string								true	"Username"
//	@Param			password	formData	string								true	"Password"
//	@Success		200			{object}	moviesdk.TokenResponse				"access_token, token_type"
//	@Failure		400			{object}	moviesdk.ErrorResponse				"Malformed form body"
//	@Failure		401			{object}	moviesdk.ErrorResponse				"Incorrect username or password"
//	@Failure		422			{object}	moviesdk.ValidationErrorResponse	"Missing username or password"
//	@Failure		429			{object}	moviesdk.ErrorResponse				"Too many attempts"
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := parseLoginForm(r); err != nil {
		log.Info("login form rejected", "error", err)
		httpx.WriteDetail(w, http.StatusBadRequest, msgInvalidForm)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	var verr domain.ValidationError
	if username == "" {
		verr.Add(domain.MissingField("body", "username"))
	}
	if password == "" {
		verr.Add(domain.MissingField("body", "password"))
	}
	if len(verr.Issues) > 0 {
		writeValidation(w, &verr)
		return
	}

	tok, err := h.AuthService.Login(ctx, username, password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidCredentials):
		h.observe(metrics.LoginRejected)
		writeUnauthorized(w, msgIncorrectCredentials)
		return
	default:
		h.observe(metrics.LoginError)
		writeInternal(w, r, err)
		return
	}

	h.observe(metrics.LoginSucceeded)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tok)
}

func (h *LoginHandler) observe(outcome string) {
	if h.Metrics != nil {
		h.Metrics.ObserveLogin(outcome)
	}
}

// parseLoginForm accepts urlencoded and multipart bodies, like an OAuth2
// password form.
func parseLoginForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxFormBytes)
	}
	return r.ParseForm()
}
