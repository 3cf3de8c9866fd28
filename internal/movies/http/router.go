package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/movies/internal/movies/metrics"
	"github.com/aussiebroadwan/movies/internal/movies/service"
	"github.com/aussiebroadwan/movies/internal/movies/store"
	"github.com/aussiebroadwan/movies/pkg/httpx"
	"github.com/aussiebroadwan/movies/pkg/slogx"

	_ "github.com/aussiebroadwan/movies/api/movies" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *metrics.Metrics
	store        store.Store

	AuthService    *service.AuthService
	CatalogService *service.CatalogService

	// Signer is checked by /readyz. Set it before ApplyRoutes.
	Signer SignerChecker
}

func NewRouter(st store.Store, m *metrics.Metrics, buildVersion string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		metrics:      m,
		store:        st,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recoverer(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerHome()
	r.registerLogin()
	r.registerMovies()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Movies API
//	@version		0.1.0
//	@description	A small movie catalog. Reads are public; writes need a bearer token from /login.
//	@description
//	@description				Access tokens are HS256 JWTs carrying only sub and exp, valid for two minutes by default.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/movies
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers h under pattern, instrumented under the same name.
func (r *Router) handle(pattern string, h http.Handler) {
	if r.metrics != nil {
		h = r.metrics.Instrument(pattern, h)
	}
	r.Mux.Handle(pattern, h)
}

func (r *Router) requireUser() httpx.Middleware {
	return RequireUser(r.AuthService, r.metrics)
}

func (r *Router) registerHome() {
	r.handle("GET /{$}",
		httpx.Chain(http.HandlerFunc(HomeHandler),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerLogin() {
	h := &LoginHandler{AuthService: r.AuthService, Metrics: r.metrics}

	// Strict limit per IP + username against password guessing
	r.handle("POST /login",
		httpx.Chain(h,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)
}

func (r *Router) registerMovies() {
	h := &MoviesHandler{CatalogService: r.CatalogService}

	r.handle("GET /movies/me",
		httpx.Chain(http.HandlerFunc(MeHandler),
			r.requireUser(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Public reads
	r.handle("GET /movies",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.handle("GET /movies/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// Writes need an enabled account
	r.handle("POST /movies",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.requireUser(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.handle("PUT /movies/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.requireUser(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.handle("DELETE /movies/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.requireUser(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.Signer),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	if r.metrics != nil {
		r.Mux.Handle("GET /metrics",
			httpx.Chain(r.metrics.Handler(),
				httpx.RateLimitByIP(httpx.PublicLimit),
			),
		)
	}
}
