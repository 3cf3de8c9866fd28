package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/movies/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func serveFrom(h http.Handler, remoteAddr, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	t.Run("extracts from RemoteAddr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(req))
	})

	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")
		require.Equal(t, "203.0.113.1", httpx.IPKeyExtractor(req))
	})

	t.Run("uses X-Real-IP if X-Forwarded-For absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Real-IP", "203.0.113.2")
		require.Equal(t, "203.0.113.2", httpx.IPKeyExtractor(req))
	})
}

func TestFormFieldKeyExtractor(t *testing.T) {
	t.Run("extracts from POST form", func(t *testing.T) {
		form := url.Values{"username": {"marco"}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		require.Equal(t, "marco", httpx.FormFieldKeyExtractor("username")(req))

		// The form stays readable for the handler after extraction
		require.Equal(t, "marco", req.PostFormValue("username"))
	})

	t.Run("leaves malformed bodies for the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("username=%zz&password=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		require.Equal(t, "", httpx.FormFieldKeyExtractor("username")(req))
		require.Error(t, req.ParseForm())
	})

	t.Run("ignores multipart bodies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("--x--"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=x")

		require.Equal(t, "", httpx.FormFieldKeyExtractor("username")(req))
	})

	t.Run("returns empty for missing field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		require.Equal(t, "", httpx.FormFieldKeyExtractor("username")(req))
	})
}

func TestUsernameKeyExtractor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/movies/me", nil)
	require.Equal(t, "", httpx.UsernameKeyExtractor(req))

	req = req.WithContext(httpx.WithUsername(req.Context(), "marco"))
	require.Equal(t, "marco", httpx.UsernameKeyExtractor(req))
}

func TestCompositeKeyExtractor(t *testing.T) {
	extractor := httpx.CompositeKeyExtractor(":",
		httpx.IPKeyExtractor,
		httpx.FormFieldKeyExtractor("username"),
	)

	req := httptest.NewRequest(http.MethodGet, "/?username=santiago", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	require.Equal(t, "192.168.1.1:santiago", extractor(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	require.Equal(t, "192.168.1.1", extractor(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("blocks requests over limit", func(t *testing.T) {
		limited := httpx.RateLimitMiddleware(httpx.RateLimitConfig{
			RequestsPerWindow: 3,
			Window:            time.Minute,
			Burst:             3,
		}, httpx.IPKeyExtractor)(okHandler)

		for i := range 3 {
			rec := serveFrom(limited, "192.168.1.1:12345", "/")
			require.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i+1)
		}

		rec := serveFrom(limited, "192.168.1.1:12345", "/")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))

		var body httpx.DetailResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "Too many requests. Please try again later.", body.Detail)
	})

	t.Run("different keys are tracked separately", func(t *testing.T) {
		limited := httpx.RateLimitByIP(httpx.RateLimitConfig{
			RequestsPerWindow: 1,
			Window:            time.Minute,
			Burst:             1,
		})(okHandler)

		require.Equal(t, http.StatusOK, serveFrom(limited, "192.168.1.1:1", "/").Code)
		require.Equal(t, http.StatusTooManyRequests, serveFrom(limited, "192.168.1.1:1", "/").Code)
		require.Equal(t, http.StatusOK, serveFrom(limited, "192.168.1.2:1", "/").Code)
	})

	t.Run("allows request when key extractor returns empty", func(t *testing.T) {
		limited := httpx.RateLimitMiddleware(httpx.RateLimitConfig{
			RequestsPerWindow: 1,
			Window:            time.Minute,
			Burst:             1,
		}, func(*http.Request) string { return "" })(okHandler)

		for range 3 {
			require.Equal(t, http.StatusOK, serveFrom(limited, "192.168.1.1:1", "/").Code)
		}
	})

	t.Run("ip and username buckets", func(t *testing.T) {
		limited := httpx.RateLimitByIPAndFormField(httpx.RateLimitConfig{
			RequestsPerWindow: 2,
			Window:            time.Minute,
			Burst:             2,
		}, "username")(okHandler)

		for range 2 {
			require.Equal(t, http.StatusOK, serveFrom(limited, "10.0.0.1:1", "/?username=marco").Code)
		}
		require.Equal(t, http.StatusTooManyRequests, serveFrom(limited, "10.0.0.1:1", "/?username=marco").Code)
		require.Equal(t, http.StatusOK, serveFrom(limited, "10.0.0.1:1", "/?username=santiago").Code)
	})
}

func TestParseRateLimitFromEnv(t *testing.T) {
	defaults := httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	t.Run("no env vars uses defaults", func(t *testing.T) {
		require.Equal(t, defaults, httpx.ParseRateLimitFromEnv("MOVIESTEST", defaults))
	})

	t.Run("overrides all parameters", func(t *testing.T) {
		t.Setenv("RATELIMIT_MOVIESTEST_REQUESTS", "200")
		t.Setenv("RATELIMIT_MOVIESTEST_WINDOW_SEC", "30")
		t.Setenv("RATELIMIT_MOVIESTEST_BURST", "250")

		got := httpx.ParseRateLimitFromEnv("MOVIESTEST", defaults)
		require.Equal(t, httpx.RateLimitConfig{RequestsPerWindow: 200, Window: 30 * time.Second, Burst: 250}, got)
	})

	t.Run("invalid and zero values use defaults", func(t *testing.T) {
		t.Setenv("RATELIMIT_MOVIESTEST_REQUESTS", "invalid")
		t.Setenv("RATELIMIT_MOVIESTEST_WINDOW_SEC", "-10")
		t.Setenv("RATELIMIT_MOVIESTEST_BURST", "0")

		require.Equal(t, defaults, httpx.ParseRateLimitFromEnv("MOVIESTEST", defaults))
	})
}

func BenchmarkRateLimitMiddleware(b *testing.B) {
	limited := httpx.RateLimitByIP(httpx.RateLimitConfig{
		RequestsPerWindow: 1000000,
		Window:            time.Minute,
		Burst:             1000,
	})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"

	for b.Loop() {
		limited.ServeHTTP(httptest.NewRecorder(), req)
	}
}
