package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/pkg/httpx"
	"github.com/aussiebroadwan/movies/pkg/moviesdk"
	"github.com/aussiebroadwan/movies/pkg/slogx"
)

// Client-facing messages.
const (
	msgIncorrectCredentials = "Incorrect username or password"
	msgCouldNotValidate     = "Could not validate credentials"
	msgUserDisabled         = "User is disabled"
	msgInternal             = "Internal server error"
	msgInvalidForm          = "Invalid form body"

	msgMovieExists        = "Movie already exists"
	msgMovieNotFound      = "Movie not found"
	msgCategoriesNotFound = "Categories not found"
	msgCouldNotUpdate     = "The movie could not be updated"
	msgCouldNotDelete     = "The movie could not be deleted"
)

// writeUnauthorized answers 401 with the bearer challenge.
func writeUnauthorized(w http.ResponseWriter, detail string) {
	httpx.WriteBearerChallenge(w)
	httpx.WriteDetail(w, http.StatusUnauthorized, detail)
}

// writeNotFound answers 404 {"detail": {"error": msg}}.
func writeNotFound(w http.ResponseWriter, msg string) {
	httpx.WriteDetail(w, http.StatusNotFound, moviesdk.ErrorDetail{Error: msg})
}

// writeValidation answers 422 with the issue list.
func writeValidation(w http.ResponseWriter, verr *domain.ValidationError) {
	httpx.WriteDetail(w, http.StatusUnprocessableEntity, verr.Issues)
}

func writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	slogx.FromContext(r.Context()).Error("request failed", "error", err)
	httpx.WriteDetail(w, http.StatusInternalServerError, msgInternal)
}

// asValidation reports whether err is a *domain.ValidationError.
func asValidation(err error) (*domain.ValidationError, bool) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
