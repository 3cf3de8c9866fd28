package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/internal/movies/store"
	"github.com/aussiebroadwan/movies/pkg/slogx"
)

var (
	ErrMovieNotFound = errors.New("movie_not_found")
	ErrMovieExists   = errors.New("movie_exists")
)

// CatalogService owns the movie list. Inputs are validated here so every
// caller gets the same rules; validation failures are *domain.ValidationError.
type CatalogService struct {
	Movies store.Movies
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Movie, error) {
	return s.Movies.List(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id int) (domain.Movie, error) {
	if err := domain.ValidateMovieID(id); err != nil {
		return domain.Movie{}, err
	}

	m, err := s.Movies.Get(ctx, id)
	if err != nil {
		return domain.Movie{}, mapMovieErr(err)
	}
	return m, nil
}

// ByCategory returns every movie in category. An empty result is
// ErrMovieNotFound.
func (s *CatalogService) ByCategory(ctx context.Context, category string) ([]domain.Movie, error) {
	if err := domain.ValidateCategoryQuery(category); err != nil {
		return nil, err
	}

	movies, err := s.Movies.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, ErrMovieNotFound
	}
	return movies, nil
}

func (s *CatalogService) Create(ctx context.Context, m domain.Movie) (domain.Movie, error) {
	if err := m.Validate(); err != nil {
		return domain.Movie{}, err
	}

	if err := s.Movies.Create(ctx, m); err != nil {
		return domain.Movie{}, mapMovieErr(err)
	}

	slogx.FromContext(ctx).Info("movie created", slog.Int("movie_id", m.ID))
	return m, nil
}

// Update replaces the movie at id. The stored movie keeps id whatever the
// body says.
func (s *CatalogService) Update(ctx context.Context, id int, m domain.Movie) (domain.Movie, error) {
	if err := m.Validate(); err != nil {
		return domain.Movie{}, err
	}

	if err := s.Movies.Replace(ctx, id, m); err != nil {
		return domain.Movie{}, mapMovieErr(err)
	}

	m.ID = id
	slogx.FromContext(ctx).Info("movie updated", slog.Int("movie_id", id))
	return m, nil
}

func (s *CatalogService) Delete(ctx context.Context, id int) error {
	if err := domain.ValidateMovieID(id); err != nil {
		return err
	}

	if err := s.Movies.Delete(ctx, id); err != nil {
		return mapMovieErr(err)
	}

	slogx.FromContext(ctx).Info("movie deleted", slog.Int("movie_id", id))
	return nil
}

func mapMovieErr(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrMovieNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrMovieExists
	default:
		return fmt.Errorf("movie store: %w", err)
	}
}
