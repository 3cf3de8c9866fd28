package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/internal/movies/store"
)

type moviesRepo struct {
	mu     sync.RWMutex
	movies []domain.Movie
}

func newMoviesRepo(movies []domain.Movie) *moviesRepo {
	r := &moviesRepo{movies: make([]domain.Movie, 0, len(movies))}
	for _, m := range movies {
		r.movies = append(r.movies, cloneMovie(m))
	}
	return r
}

func (r *moviesRepo) List(ctx context.Context) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		out = append(out, cloneMovie(m))
	}
	return out, nil
}

func (r *moviesRepo) Get(ctx context.Context, id int) (domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return domain.Movie{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Movie{}, store.ErrNotFound
	}
	return cloneMovie(r.movies[i]), nil
}

func (r *moviesRepo) ListByCategory(ctx context.Context, category string) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Movie
	for _, m := range r.movies {
		if m.Category == category {
			out = append(out, cloneMovie(m))
		}
	}
	return out, nil
}

func (r *moviesRepo) Create(ctx context.Context, m domain.Movie) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(m.ID) >= 0 {
		return store.ErrAlreadyExists
	}
	r.movies = append(r.movies, cloneMovie(m))
	return nil
}

func (r *moviesRepo) Replace(ctx context.Context, id int, m domain.Movie) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return store.ErrNotFound
	}
	m.ID = id
	r.movies[i] = cloneMovie(m)
	return nil
}

func (r *moviesRepo) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return store.ErrNotFound
	}
	r.movies = slices.Delete(r.movies, i, i+1)
	return nil
}

// indexOf must be called with mu held.
func (r *moviesRepo) indexOf(id int) int {
	return slices.IndexFunc(r.movies, func(m domain.Movie) bool { return m.ID == id })
}

func cloneMovie(m domain.Movie) domain.Movie {
	if m.Rating != nil {
		rating := *m.Rating
		m.Rating = &rating
	}
	return m
}
