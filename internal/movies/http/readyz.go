package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/movies/internal/movies/store"
	"github.com/aussiebroadwan/movies/pkg/httpx"
	"github.com/aussiebroadwan/movies/pkg/moviesdk"
)

// SignerChecker round-trips a token through the signer.
type SignerChecker interface {
	Check() error
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe reporting the store and the token signer.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	moviesdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	moviesdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, signer SignerChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &moviesdk.HealthChecks{Store: "ok", Signer: "ok"}
		status, code := "ok", http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Store = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
		}
		if signer == nil {
			checks.Signer = "error: no token signer"
			status, code = "degraded", http.StatusServiceUnavailable
		} else if err := signer.Check(); err != nil {
			checks.Signer = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, moviesdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
