package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/movies/pkg/slogx"
)

// Recoverer turns a handler panic into a 500 {"detail": "Internal server
// error"} and logs the stack. http.ErrAbortHandler is re-panicked so the
// server can abort the connection as usual.
func Recoverer() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				slogx.FromContext(r.Context()).Error("panic serving request",
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				WriteDetail(w, http.StatusInternalServerError, "Internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
