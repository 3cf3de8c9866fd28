package app

import "github.com/aussiebroadwan/movies/internal/movies/domain"

// SeedUsers is the fixed account table. The hashes are bcrypt of
// "marco123" and "santiago456".
func SeedUsers() []domain.User {
	return []domain.User{
		{
			Username:     "marco",
			FullName:     "Marco Dias",
			Email:        "marco@gmail.com",
			Disabled:     false,
			PasswordHash: "$2a$10$rsgwENASp964ZO7EbFhW5.1JJmjeG4U6KdUwKUVEl7jF3g0Gj/Dw6",
		},
		{
			Username:     "santiago",
			FullName:     "Santiago C",
			Email:        "santi@gmail.com",
			Disabled:     true,
			PasswordHash: "$2a$10$a17tFfM7E2kc2x5DEQy18.9tWgACQonT9ScJE1DPJw3yk0ZJQ/AsO",
		},
	}
}

// SeedMovies is the catalog every process starts with.
func SeedMovies() []domain.Movie {
	rating := func(v float64) *float64 { return &v }

	return []domain.Movie{
		{
			ID:       1,
			Title:    "The Godfather: Part II",
			Overview: "The aging patriarch of an organized crime family becomes an insistent conscripter in order to control the family through the use of dream-sharing technology.",
			Year:     1972,
			Rating:   rating(8.9),
			Category: "Drama",
		},
		{
			ID:       2,
			Title:    "Star Wars",
			Overview: "A space opera set “a long time ago in a galaxy far, far away,”  the film centres on Luke Skywalker (played by the then relatively unknown Mark Hamill), a young man who finds himself embroiled in an interplanetary war between an authoritarian empire and rebel forces.",
			Year:     1977,
			Rating:   rating(8.9),
			Category: "Action",
		},
	}
}
