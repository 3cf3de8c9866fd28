package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/movies/internal/movies/http"
	"github.com/aussiebroadwan/movies/internal/movies/metrics"
	"github.com/aussiebroadwan/movies/internal/movies/service"
	"github.com/aussiebroadwan/movies/internal/movies/store"
	"github.com/aussiebroadwan/movies/internal/movies/store/drivers/memory"
	"github.com/aussiebroadwan/movies/pkg/jwtx"
	"github.com/aussiebroadwan/movies/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application wires the movies service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db      store.Store
	codec   *jwtx.Codec
	metrics *metrics.Metrics

	authService    *service.AuthService
	catalogService *service.CatalogService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "movies-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		metrics: metrics.New(),
	}

	app.db = memory.NewStore(SeedUsers(), SeedMovies())

	codec, err := InitTokenCodec(cfg, app.logger, time.Now)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.codec = codec

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the routed handler, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("movies service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig.String())

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, then releases the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down movies service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("movies service stopped")
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Users:     app.db.Users(),
		Codec:     app.codec,
		AccessTTL: app.cfg.TokenTTL,
	}
	app.catalogService = &service.CatalogService{Movies: app.db.Movies()}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.db, app.metrics, BuildVersion, app.logger)
	router.AuthService = app.authService
	router.CatalogService = app.catalogService
	router.Signer = app.codec
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
