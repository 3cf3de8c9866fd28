package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/movies/pkg/httpx"
)

// MeHandler godoc
//
//	@Summary		Current user
//	@Description	Returns the profile of the user the bearer token was issued to.
//	@Tags			Login
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	moviesdk.User			"username, full_name, email, disabled"
//	@Failure		400	{object}	moviesdk.ErrorResponse	"User is disabled"
//	@Failure		401	{object}	moviesdk.ErrorResponse	"Could not validate credentials"
//	@Router			/movies/me [get].
func MeHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		writeInternal(w, r, errors.New("me: route is missing RequireUser"))
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, user)
}
