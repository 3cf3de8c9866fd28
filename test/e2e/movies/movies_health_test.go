package movies_test

import (
	"testing"

	"github.com/aussiebroadwan/movies/pkg/moviesdk"
	"github.com/stretchr/testify/require"
)

func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupMoviesContainer(t)
	defer cleanup()

	client := moviesdk.NewSDKClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupMoviesContainer(t)
	defer cleanup()

	client := moviesdk.NewSDKClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Store)
	require.Equal(t, "ok", health.Checks.Signer)
}

func TestHomeEndpoint(t *testing.T) {
	baseURL, cleanup := setupMoviesContainer(t)
	defer cleanup()

	body, err := moviesdk.NewSDKClient(baseURL).Ping(t.Context())
	require.NoError(t, err)
	require.Contains(t, body, "Pong")
}
