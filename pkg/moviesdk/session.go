package moviesdk

import (
	"context"
	"net/http"
	"strconv"
)

// Session carries one access token. It does not refresh; once the token
// expires every call fails with a 401 APIError.
type Session struct {
	client      *SDKClient
	accessToken string
}

// AccessToken returns the bearer token this session sends.
func (s *Session) AccessToken() string { return s.accessToken }

// Me returns the authenticated user. A disabled account gets a 400 APIError.
func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/movies/me", s.accessToken, nil, nil)
	if err != nil {
		return nil, err
	}

	var u User
	if err := decodeJSON(resp, &u, http.StatusOK); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Session) CreateMovie(ctx context.Context, m Movie) (*Movie, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/movies", s.accessToken, m)
	if err != nil {
		return nil, err
	}

	var created Movie
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Session) UpdateMovie(ctx context.Context, id int, m Movie) (*Movie, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPut, "/movies/"+strconv.Itoa(id), s.accessToken, m)
	if err != nil {
		return nil, err
	}

	var updated Movie
	if err := decodeJSON(resp, &updated, http.StatusOK); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteMovie returns the server's confirmation message.
func (s *Session) DeleteMovie(ctx context.Context, id int) (string, error) {
	resp, err := s.client.doRequest(ctx, http.MethodDelete, "/movies/"+strconv.Itoa(id), s.accessToken, nil, nil)
	if err != nil {
		return "", err
	}

	var out DeleteResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Message, nil
}
