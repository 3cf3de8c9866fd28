package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/aussiebroadwan/movies/internal/movies/domain"
	"github.com/stretchr/testify/require"
)

func validMovie() domain.Movie {
	rating := 8.9
	return domain.Movie{
		ID:       3,
		Title:    "Inception",
		Overview: "A thief who steals corporate secrets.",
		Year:     2010,
		Rating:   &rating,
		Category: "Sci-Fi",
	}
}

func TestMovieValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.Movie)
		wantField string
		wantType  string
	}{
		{"valid", func(*domain.Movie) {}, "", ""},
		{"nil rating is fine", func(m *domain.Movie) { m.Rating = nil }, "", ""},
		{"title too short", func(m *domain.Movie) { m.Title = "Jaws" }, "title", "string_too_short"},
		{"title too long", func(m *domain.Movie) { m.Title = strings.Repeat("x", 26) }, "title", "string_too_long"},
		{"title at max", func(m *domain.Movie) { m.Title = strings.Repeat("x", 25) }, "", ""},
		{"title counts characters", func(m *domain.Movie) { m.Title = "Amélie" }, "", ""},
		{"overview too short", func(m *domain.Movie) { m.Overview = "short" }, "overview", "string_too_short"},
		{"year too early", func(m *domain.Movie) { m.Year = 1899 }, "year", "greater_than_equal"},
		{"year at minimum", func(m *domain.Movie) { m.Year = 1900 }, "", ""},
		{"category too short", func(m *domain.Movie) { m.Category = "D" }, "category", "string_too_short"},
		{"category too long", func(m *domain.Movie) { m.Category = strings.Repeat("c", 56) }, "category", "string_too_long"},
		{"id zero", func(m *domain.Movie) { m.ID = 0 }, "id", "greater_than_equal"},
		{"id above range", func(m *domain.Movie) { m.ID = 2001 }, "id", "less_than_equal"},
		{"id at max", func(m *domain.Movie) { m.ID = 2000 }, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMovie()
			tt.mutate(&m)

			err := m.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			require.Len(t, verr.Issues, 1)
			require.Equal(t, []string{"body", tt.wantField}, verr.Issues[0].Location)
			require.Equal(t, tt.wantType, verr.Issues[0].Type)
		})
	}
}

func TestMovieValidateReportsEveryField(t *testing.T) {
	err := domain.Movie{}.Validate()

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Issues, 5)
	require.Contains(t, err.Error(), "body.id")
	require.Contains(t, err.Error(), "body.title")
	require.Contains(t, err.Error(), "body.category")
}

func TestMovieDraftComplete(t *testing.T) {
	id, year := 3, 2010
	title, overview, category := "Inception", "Dreams within dreams.", "Sci-Fi"

	m, err := domain.MovieDraft{ID: &id, Title: &title, Overview: &overview, Year: &year, Category: &category}.Movie()
	require.NoError(t, err)
	require.Equal(t, domain.Movie{ID: 3, Title: "Inception", Overview: "Dreams within dreams.", Year: 2010, Category: "Sci-Fi"}, m)
}

func TestMovieDraftReportsMissingFields(t *testing.T) {
	title, overview := "Inception", "short"

	_, err := domain.MovieDraft{Title: &title, Overview: &overview}.Movie()

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []domain.FieldIssue{
		domain.MissingField("body", "id"),
		{Location: []string{"body", "overview"}, Message: "String should have at least 6 characters", Type: "string_too_short"},
		domain.MissingField("body", "year"),
		domain.MissingField("body", "category"),
	}, verr.Issues)
}

func TestMovieDraftEmptyBody(t *testing.T) {
	_, err := domain.MovieDraft{}.Movie()

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Issues, 5)
	for _, issue := range verr.Issues {
		require.Equal(t, "missing", issue.Type)
		require.Equal(t, "Field required", issue.Message)
	}
}

func TestValidateMovieID(t *testing.T) {
	require.NoError(t, domain.ValidateMovieID(1))
	require.NoError(t, domain.ValidateMovieID(2000))
	require.Error(t, domain.ValidateMovieID(0))
	require.Error(t, domain.ValidateMovieID(2001))
}

func TestValidateCategoryQuery(t *testing.T) {
	require.NoError(t, domain.ValidateCategoryQuery("Drama"))
	require.Error(t, domain.ValidateCategoryQuery("Dr"))
	require.Error(t, domain.ValidateCategoryQuery(strings.Repeat("a", 23)))
}

func TestUserPublicDropsHash(t *testing.T) {
	u := domain.User{Username: "marco", FullName: "Marco Dias", Email: "marco@gmail.com", PasswordHash: "$2a$10$x"}
	require.Equal(t, domain.PublicUser{Username: "marco", FullName: "Marco Dias", Email: "marco@gmail.com"}, u.Public())
}
