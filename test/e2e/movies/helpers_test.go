package movies_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/movies/pkg/moviesdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Shared container setup and assertions for the movies end-to-end tests.
 */

const (
	testImageName = "movies-test:latest"
	secretKey     = "e2e-secret-key-0123456789abcdef"

	marcoPassword    = "marco123"
	santiagoPassword = "santiago456"
)

// TestMain builds the image once for the whole package. The suite needs a
// docker daemon and is skipped with -short.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		fmt.Fprintln(os.Stdout, "skipping movies e2e tests in short mode")
		os.Exit(0)
	}

	fmt.Fprintf(os.Stdout, "Building Movies Service Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Movies Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/movies/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run()
}

// setupMoviesContainer starts the service with relaxed rate limits and
// returns its base URL.
func setupMoviesContainer(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	})
}

// setupMoviesContainerWithDefaultRateLimits keeps the production limits,
// for the rate limit tests only.
func setupMoviesContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, nil)
}

// setupMoviesContainerWithTTL shortens token lifetime for expiry tests.
func setupMoviesContainerWithTTL(t *testing.T, ttl time.Duration) (string, func()) {
	t.Helper()
	return startContainer(t, map[string]string{"MOVIES_TOKEN_TTL": ttl.String()})
}

func startContainer(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"MOVIES_SECRET_KEY": secretKey,
		"ENV":               "test",
		"LOG_LEVEL":         "info",
		"LOG_FORMAT":        "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// login authenticates and fails the test on error.
func login(t *testing.T, client *moviesdk.SDKClient, username, password string) *moviesdk.Session {
	t.Helper()

	session, err := client.Login(t.Context(), username, password)
	require.NoError(t, err, "login as %s should succeed", username)
	require.NotEmpty(t, session.AccessToken())
	return session
}

func assertHealthy(t *testing.T, health *moviesdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

func assertStatus(t *testing.T, err error, code int, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.Equal(t, code, moviesdk.StatusCode(err), "%s: got %v", context, err)
}
