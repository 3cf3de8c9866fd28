package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/internal/movies/service"
	"github.com/aussiebroadwan/movies/pkg/httpx"
	"github.com/aussiebroadwan/movies/pkg/moviesdk"
)

// maxMovieBytes caps a movie JSON body.
const maxMovieBytes = 1 << 16

// MoviesHandler serves the catalog routes.
type MoviesHandler struct {
	CatalogService *service.CatalogService
}

// HandleList handles GET /movies
//
//	@Summary		List movies
//	@Description	Lists every movie, or only those whose category matches exactly when category is set.
//	@Tags			Movies
//	@Produce		json
//	@Param			category	query		string								false	"Category filter (3 to 22 characters)"
//	@Success		200			{array}		domain.Movie						"Movies"
//	@Failure		404			{object}	moviesdk.NotFoundResponse			"Categories not found"
//	@Failure		422			{object}	moviesdk.ValidationErrorResponse	"Invalid category"
//	@Router			/movies [get].
func (h *MoviesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		movies []domain.Movie
		err    error
	)
	if q := r.URL.Query(); q.Has("category") {
		movies, err = h.CatalogService.ByCategory(ctx, q.Get("category"))
	} else {
		movies, err = h.CatalogService.List(ctx)
	}

	if verr, ok := asValidation(err); ok {
		writeValidation(w, verr)
		return
	}
	switch {
	case err == nil:
	case errors.Is(err, service.ErrMovieNotFound):
		writeNotFound(w, msgCategoriesNotFound)
		return
	default:
		writeInternal(w, r, err)
		return
	}

	if movies == nil {
		movies = []domain.Movie{}
	}
	httpx.WriteJSON(w, http.StatusOK, movies)
}

// HandleGet handles GET /movies/{id}
//
//	@Summary	Get a movie
//	@Tags		Movies
//	@Produce	json
//	@Param		id	path		int									true	"Movie ID (1 to 2000)"
//	@Success	200	{object}	domain.Movie						"Movie"
//	@Failure	404	{object}	moviesdk.NotFoundResponse			"Movie not found"
//	@Failure	422	{object}	moviesdk.ValidationErrorResponse	"Invalid id"
//	@Router		/movies/{id} [get].
func (h *MoviesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	m, err := h.CatalogService.Get(r.Context(), id)
	if verr, ok := asValidation(err); ok {
		writeValidation(w, verr)
		return
	}
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, m)
	case errors.Is(err, service.ErrMovieNotFound):
		writeNotFound(w, msgMovieNotFound)
	default:
		writeInternal(w, r, err)
	}
}

// HandleCreate handles POST /movies
//
//	@Summary	Create a movie
//	@Tags		Movies
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		movie	body		domain.Movie						true	"Movie"
//	@Success	201		{object}	domain.Movie						"Created movie"
//	@Failure	400		{object}	moviesdk.ErrorResponse				"User is disabled"
//	@Failure	401		{object}	moviesdk.ErrorResponse				"Could not validate credentials"
//	@Failure	409		{object}	moviesdk.NotFoundResponse			"Movie already exists"
//	@Failure	422		{object}	moviesdk.ValidationErrorResponse	"Invalid movie"
//	@Router		/movies [post].
func (h *MoviesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	m, ok := decodeMovie(w, r)
	if !ok {
		return
	}

	created, err := h.CatalogService.Create(r.Context(), m)
	if verr, ok := asValidation(err); ok {
		writeValidation(w, verr)
		return
	}
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusCreated, created)
	case errors.Is(err, service.ErrMovieExists):
		httpx.WriteDetail(w, http.StatusConflict, moviesdk.ErrorDetail{Error: msgMovieExists})
	default:
		writeInternal(w, r, err)
	}
}

// HandleUpdate handles PUT /movies/{id}
//
//	@Summary		Replace a movie
//	@Description	Replaces the movie stored under id. The stored movie keeps id whatever the body says.
//	@Tags			Movies
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int									true	"Movie ID"
//	@Param			movie	body		domain.Movie						true	"Movie"
//	@Success		200		{object}	domain.Movie						"Updated movie"
//	@Failure		400		{object}	moviesdk.ErrorResponse				"User is disabled"
//	@Failure		401		{object}	moviesdk.ErrorResponse				"Could not validate credentials"
//	@Failure		404		{object}	moviesdk.NotFoundResponse			"The movie could not be updated"
//	@Failure		422		{object}	moviesdk.ValidationErrorResponse	"Invalid movie"
//	@Router			/movies/{id} [put].
func (h *MoviesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	m, ok := decodeMovie(w, r)
	if !ok {
		return
	}

	updated, err := h.CatalogService.Update(r.Context(), id, m)
	if verr, ok := asValidation(err); ok {
		writeValidation(w, verr)
		return
	}
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, updated)
	case errors.Is(err, service.ErrMovieNotFound):
		writeNotFound(w, msgCouldNotUpdate)
	default:
		writeInternal(w, r, err)
	}
}

// HandleDelete handles DELETE /movies/{id}
//
//	@Summary	Delete a movie
//	@Tags		Movies
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int									true	"Movie ID (1 to 2000)"
//	@Success	200	{object}	moviesdk.DeleteResponse				"Confirmation message"
//	@Failure	400	{object}	moviesdk.ErrorResponse				"User is disabled"
//	@Failure	401	{object}	moviesdk.ErrorResponse				"Could not validate credentials"
//	@Failure	404	{object}	moviesdk.NotFoundResponse			"The movie could not be deleted"
//	@Failure	422	{object}	moviesdk.ValidationErrorResponse	"Invalid id"
//	@Router		/movies/{id} [delete].
func (h *MoviesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := h.CatalogService.Delete(r.Context(), id)
	if verr, ok := asValidation(err); ok {
		writeValidation(w, verr)
		return
	}
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, moviesdk.DeleteResponse{
			Message: fmt.Sprintf("The movie with the id '%d', has been successfully deleted", id),
		})
	case errors.Is(err, service.ErrMovieNotFound):
		writeNotFound(w, msgCouldNotDelete)
	default:
		writeInternal(w, r, err)
	}
}

// pathID parses {id}. Range checks are left to the service.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeValidation(w, intParsing("id"))
		return 0, false
	}
	return id, true
}

func intParsing(field string) *domain.ValidationError {
	return &domain.ValidationError{Issues: []domain.FieldIssue{{
		Location: []string{"path", field},
		Message:  "Input should be a valid integer, unable to parse string as an integer",
		Type:     "int_parsing",
	}}}
}

// decodeMovie reads a movie body. Absent fields and malformed JSON are
// answered with 422 here.
func decodeMovie(w http.ResponseWriter, r *http.Request) (domain.Movie, bool) {
	var draft domain.MovieDraft

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMovieBytes))
	if err := dec.Decode(&draft); err != nil {
		writeValidation(w, &domain.ValidationError{Issues: []domain.FieldIssue{{
			Location: []string{"body"},
			Message:  "JSON decode error: " + err.Error(),
			Type:     "json_invalid",
		}}})
		return domain.Movie{}, false
	}

	m, err := draft.Movie()
	if verr, ok := asValidation(err); ok {
		writeValidation(w, verr)
		return domain.Movie{}, false
	}
	return m, true
}
