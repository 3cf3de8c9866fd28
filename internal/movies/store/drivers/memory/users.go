package memory

import (
	"context"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/aussiebroadwan/movies/internal/movies/store"
)

// usersRepo needs no lock: the map is written once in the constructor.
type usersRepo struct {
	byUsername map[string]domain.User
}

func newUsersRepo(users []domain.User) *usersRepo {
	m := make(map[string]domain.User, len(users))
	for _, u := range users {
		m[u.Username] = u
	}
	return &usersRepo{byUsername: m}
}

func (r *usersRepo) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	u, ok := r.byUsername[username]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}
