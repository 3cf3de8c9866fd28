package moviesdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SDKClient talks to the public endpoints and creates Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// RequestToken posts the login form and returns the raw token response.
func (c *SDKClient) RequestToken(ctx context.Context, username, password string) (*TokenResponse, error) {
	form := url.Values{
		"username": {username},
		"password": {password},
	}
	resp, err := c.doRequest(ctx, http.MethodPost, "/login", "", strings.NewReader(form.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Login authenticates and returns a Session bound to the issued token.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	tok, err := c.RequestToken(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return c.NewSession(tok.AccessToken), nil
}

// NewSession wraps an existing access token.
func (c *SDKClient) NewSession(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// Ping calls GET / and returns the HTML body.
func (c *SDKClient) Ping(ctx context.Context) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/", "", nil, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", parseErrorResponse(resp, body)
	}
	return string(body), nil
}

func (c *SDKClient) ListMovies(ctx context.Context) ([]Movie, error) {
	return c.listMovies(ctx, "/movies")
}

// ListMoviesByCategory returns a 404 APIError when nothing matches.
func (c *SDKClient) ListMoviesByCategory(ctx context.Context, category string) ([]Movie, error) {
	return c.listMovies(ctx, "/movies?"+url.Values{"category": {category}}.Encode())
}

func (c *SDKClient) listMovies(ctx context.Context, path string) ([]Movie, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, "", nil, nil)
	if err != nil {
		return nil, err
	}

	var movies []Movie
	if err := decodeJSON(resp, &movies, http.StatusOK); err != nil {
		return nil, err
	}
	return movies, nil
}

func (c *SDKClient) GetMovie(ctx context.Context, id int) (*Movie, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/movies/"+strconv.Itoa(id), "", nil, nil)
	if err != nil {
		return nil, err
	}

	var m Movie
	if err := decodeJSON(resp, &m, http.StatusOK); err != nil {
		return nil, err
	}
	return &m, nil
}
