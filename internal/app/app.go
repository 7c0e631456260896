package app

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"net/http"
	"os"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/haguru/raikiri/config"
	"github.com/haguru/raikiri/internal/auth"
	"github.com/haguru/raikiri/internal/dashboard"
	"github.com/haguru/raikiri/internal/interfaces"
	"github.com/haguru/raikiri/internal/metrics"
	"github.com/haguru/raikiri/internal/middleware"
	"github.com/haguru/raikiri/internal/routes"
	"github.com/haguru/raikiri/internal/server"
	"github.com/haguru/raikiri/internal/session"
	postgresUserRepo "github.com/haguru/raikiri/internal/userrepo/postgres"
	"github.com/haguru/raikiri/internal/userservice"
	"github.com/haguru/raikiri/internal/views"
	"github.com/haguru/raikiri/pkg/databases/postgres"
	pkgmetrics "github.com/haguru/raikiri/pkg/metrics"
	zlog "github.com/haguru/raikiri/pkg/zerolog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

// App represents the main application, containing server and configuration.
// It initializes with a config file, validates settings, and manages routes.
type App struct {
	Server     interfaces.Server
	Config     *config.ServiceConfig
	Logger     interfaces.Logger
	Metrics    interfaces.Metrics
	privateKey *ecdsa.PrivateKey
	connector  interfaces.Connector
}

// NewApp creates and configures a new App instance. Database secrets come
// from the process environment, optionally seeded by the configured
// secrets file; any missing secret aborts startup.
func NewApp(configPath string) (*App, error) {
	return newApp(configPath, os.LookupEnv)
}

func newApp(configPath string, lookup config.LookupFunc) (*App, error) {
	cfg, err := config.ReadLocalConfig(configPath)
	if err != nil {
		return nil, err
	}

	// Validate the configuration
	validator := structValidator.New()
	if err := validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}

	logger := zlog.NewZerologLogger(cfg.ServiceName)
	logger.SetLevel(cfg.LogLevel)

	app := &App{
		Config: cfg,
		Logger: logger,
	}

	secrets, err := config.LoadSecrets(cfg.Database.SecretsFile, lookup)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadSecrets, err)
	}

	app.connector, err = postgres.NewConnectionProvider(&cfg.Database, secrets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgConnector, err)
	}

	if cfg.Database.RunMigrations {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout+cfg.Database.QueryTimeout)
		defer cancel()
		if err := postgres.RunMigrations(ctx, app.connector, logger); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgMigrations, err)
		}
	}

	if err := app.initializePrivateKey(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgPrivateKey, err)
	}

	app.Metrics = app.initializeMetrics()
	app.Server = server.NewServer(cfg.Host, cfg.Port, logger)

	route, err := app.initializeRoute(validator)
	if err != nil {
		return nil, err
	}

	if err := app.registerRoutes(route); err != nil {
		return nil, err
	}

	return app, nil
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (app *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (app *App) initializeMetrics() interfaces.Metrics {
	appMetrics := pkgmetrics.NewMetrics(app.Config.ServiceName)
	metrics.Register(appMetrics)
	return appMetrics
}

func (app *App) initializeRoute(validator *structValidator.Validate) (*routes.Route, error) {
	userRepo, err := postgresUserRepo.NewPostgresUserRepository(app.connector)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUserRepo, err)
	}
	userService := userservice.NewUserService(userRepo, app.Logger)

	executor := postgres.NewExecutor(app.connector, app.Logger, app.Config.Database.QueryTimeout)
	renderer := dashboard.NewRenderer(dashboard.NewReports(executor), app.Logger, app.Metrics)

	pages, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgViews, err)
	}

	gate := session.NewGate(app.privateKey, app.Config.SessionTTL, app.Config.SecureCookies, app.Logger)

	return routes.NewRoute(app.Metrics, userService, gate, renderer, pages, app.Logger, validator), nil
}

func (app *App) registerRoutes(route *routes.Route) error {
	limiters := middleware.NewClientLimiters(
		rate.Limit(app.Config.RateLimit.RequestsPerSecond),
		app.Config.RateLimit.Burst,
		app.Config.RateLimit.ClientIdle)
	rateLimited := middleware.RateLimitMiddleware(limiters, app.Metrics)
	withSession := middleware.SessionMiddleware(route.Gate)

	metricsHandler := promhttp.HandlerFor(
		app.Metrics.GetRegistry(),
		promhttp.HandlerOpts{})

	table := []struct {
		pattern string
		handler http.Handler
	}{
		{routes.IndexRoute, middleware.Chain(http.HandlerFunc(route.Index), withSession)},
		{routes.LoginRouteAPI, middleware.Chain(http.HandlerFunc(route.Login), rateLimited, withSession)},
		{routes.SignupRouteAPI, middleware.Chain(http.HandlerFunc(route.Signup), rateLimited)},
		{routes.LogoutRouteAPI, middleware.Chain(http.HandlerFunc(route.Logout), withSession)},
		{routes.DashboardRouteAPI, middleware.Chain(http.HandlerFunc(route.Dashboard), withSession)},
		{routes.ProjectRouteAPI, middleware.Chain(http.HandlerFunc(route.Project), withSession)},
		{routes.MineralsRouteAPI, middleware.Chain(http.HandlerFunc(route.Minerals), withSession)},
		{routes.ProjectionRouteAPI, middleware.Chain(http.HandlerFunc(route.Projection), withSession)},
		{routes.MetricsRouteAPI, metricsHandler},
		{routes.HealthzRouteAPI, http.HandlerFunc(route.Healthz)},
	}

	for _, r := range table {
		traced := otelhttp.NewHandler(r.handler, r.pattern)
		if err := app.Server.AddRoute(r.pattern, traced); err != nil {
			return fmt.Errorf(ErrMsgAddRouteFormat, r.pattern, err)
		}
	}
	return nil
}

func (app *App) initializePrivateKey() error {
	privateKey, created, err := auth.LoadOrCreateECDSAPrivateKey(app.Config.PrivateKeyPath)
	if err != nil {
		return fmt.Errorf("failed to load private key: %w", err)
	}
	if created {
		app.Logger.Warn("Generated a new session signing key", "path", app.Config.PrivateKeyPath)
	}

	app.privateKey = privateKey
	return nil
}
