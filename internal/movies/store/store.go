package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Drivers expose sub-repositories
// so services can depend on only the part they use.
type Store interface {
	Users() Users
	Movies() Movies

	// Ping reports whether the store can serve requests.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

// Users is the credential store. It is read-only once seeded.
type Users interface {
	// FindByUsername returns ErrNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}

type Movies interface {
	// List returns every movie in insertion order.
	List(ctx context.Context) ([]domain.Movie, error)

	// Get returns ErrNotFound when no movie has that id.
	Get(ctx context.Context, id int) (domain.Movie, error)

	// ListByCategory returns the movies whose category matches exactly.
	ListByCategory(ctx context.Context, category string) ([]domain.Movie, error)

	// Create returns ErrAlreadyExists if the id is taken.
	Create(ctx context.Context, m domain.Movie) error

	// Replace overwrites the movie with the given id. ErrNotFound if absent.
	Replace(ctx context.Context, id int, m domain.Movie) error

	// Delete removes the movie with the given id. ErrNotFound if absent.
	Delete(ctx context.Context, id int) error
}
