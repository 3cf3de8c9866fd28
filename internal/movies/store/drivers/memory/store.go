// Package memory is an in-process Store. Nothing survives a restart.
package memory

import (
	"context"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/internal/movies/store"
)

type Store struct {
	users  *usersRepo
	movies *moviesRepo
}

var _ store.Store = (*Store)(nil)

// NewStore seeds a store. The inputs are copied, so later changes by the
// caller are not observed.
func NewStore(users []domain.User, movies []domain.Movie) *Store {
	return &Store{
		users:  newUsersRepo(users),
		movies: newMoviesRepo(movies),
	}
}

func (s *Store) Users() store.Users   { return s.users }
func (s *Store) Movies() store.Movies { return s.movies }

// Ping always succeeds unless the context is already done.
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Close() error { return nil }
