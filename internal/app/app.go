// Package app wires configuration, storage, the monitor and the HTTP server
// together and hands them to the CLI.
package app

import (
	"context"

	"teamboard/internal/auth"
	"teamboard/internal/cli"
	"teamboard/internal/config"
	"teamboard/internal/constants"
	"teamboard/internal/db"
	"teamboard/internal/errors"
	"teamboard/internal/history"
	"teamboard/internal/logger"
	"teamboard/internal/metrics"
	"teamboard/internal/monitor"
	"teamboard/internal/registry"
	"teamboard/internal/server"
)

// App represents the main application. Components are built on first use
// and cached for the lifetime of the process.
type App struct {
	config  *config.Config
	DB      *db.DB
	History *history.Store
	Monitor *monitor.Monitor
	Metrics *metrics.Manager
	Auth    *auth.Service
	Server  *server.Server

	source registry.Source
	CLI    *cli.Manager

	// loadConfig is replaced in tests
	loadConfig func(ctx context.Context) (*config.Config, error)
}

// New creates a new application instance
func New() *App {
	a := &App{loadConfig: config.Load}
	a.CLI = cli.New(&runtime{app: a})
	return a
}

// NewWithConfig creates an application around an already loaded config
func NewWithConfig(cfg *config.Config) *App {
	a := New()
	a.config = cfg
	return a
}

// Run starts the application
func (a *App) Run(args []string) error {
	return a.RunWithContext(context.Background(), args)
}

// RunWithContext executes the CLI with a context for cancellation
func (a *App) RunWithContext(ctx context.Context, args []string) error {
	defer a.Close()

	if len(args) == 0 {
		return a.CLI.ExecuteWithContext(ctx, []string{"--help"})
	}
	return a.CLI.ExecuteWithContext(ctx, args)
}

// Close releases the database pool if one was opened
func (a *App) Close() {
	if a.DB == nil {
		return
	}
	if err := a.DB.Close(); err != nil {
		logger.WithError(err).Warn("Failed to close database")
	}
	a.DB = nil
}

func (a *App) getConfig(ctx context.Context) (*config.Config, error) {
	if a.config != nil {
		return a.config, nil
	}

	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(cfg.LogLevel)
	if cfg.InsecureSecret() {
		logger.Warnf("JWT_SECRET is not set; using the development secret. Do not run like this in production.")
	}

	a.config = cfg
	return cfg, nil
}

func (a *App) getMonitor(ctx context.Context) (*monitor.Monitor, error) {
	if a.Monitor != nil {
		return a.Monitor, nil
	}
	cfg, err := a.getConfig(ctx)
	if err != nil {
		return nil, err
	}

	a.source = registry.NewConfigSource(cfg.TeamsJSON, cfg.TeamsFile)
	a.History = history.NewStore(cfg.HistoryWindow)
	a.Monitor = monitor.New(monitor.Config{
		Source: a.source,
		Store:  a.History,
		Prober: monitor.NewProber(
			monitor.WithPort(cfg.ProbePort),
			monitor.WithTimeout(cfg.ProbeTimeout),
		),
		Host:        cfg.WGHost,
		DiagTimeout: cfg.DiagTimeout,
	})

	logger.WithFields(logger.Fields{
		"host":   cfg.WGHost,
		"window": cfg.HistoryWindow,
		"teams":  len(a.source.Teams()),
	}).Debug("Monitor ready")
	return a.Monitor, nil
}

func (a *App) getMetrics(ctx context.Context) (*metrics.Manager, error) {
	if a.Metrics != nil {
		return a.Metrics, nil
	}
	if _, err := a.getMonitor(ctx); err != nil {
		return nil, err
	}
	a.Metrics = metrics.NewManager(
		metrics.WithNamespace(constants.AppName),
		metrics.WithServiceCollector(metrics.NewServiceCollector(a.source, a.History)),
	)
	return a.Metrics, nil
}

// getDatabase opens the pool and applies migrations. A migration failure
// is logged and the process carries on with whatever schema exists.
func (a *App) getDatabase(ctx context.Context) (*db.DB, error) {
	if a.DB != nil {
		return a.DB, nil
	}
	cfg, err := a.getConfig(ctx)
	if err != nil {
		return nil, err
	}

	dbConfig := db.DefaultConfig()
	dbConfig.Driver = cfg.DatabaseDriver
	if cfg.DatabaseURL != "" {
		dbConfig.DSN = cfg.DatabaseURL
	} else if cfg.DatabaseDriver != db.DriverSQLite {
		return nil, errors.ConfigInvalid("database_url is required for " + cfg.DatabaseDriver)
	}

	database, err := db.New(dbConfig)
	if err != nil {
		return nil, errors.DatabaseConnectionError(err)
	}

	if err := database.Migrate(); err != nil {
		logger.WithError(err).Error("Database migration failed; continuing with the existing schema")
	}

	a.DB = database
	return database, nil
}

func (a *App) getAuth(ctx context.Context) (*auth.Service, error) {
	if a.Auth != nil {
		return a.Auth, nil
	}
	cfg, err := a.getConfig(ctx)
	if err != nil {
		return nil, err
	}
	database, err := a.getDatabase(ctx)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenTTL)
	if err != nil {
		return nil, errors.ConfigInvalid(err.Error())
	}
	a.Auth = auth.NewService(db.NewUserRepository(database), tokens)
	return a.Auth, nil
}

// buildServer assembles the HTTP server from the cached components
func (a *App) buildServer(ctx context.Context) (*server.Server, error) {
	cfg, err := a.getConfig(ctx)
	if err != nil {
		return nil, err
	}
	mon, err := a.getMonitor(ctx)
	if err != nil {
		return nil, err
	}
	m, err := a.getMetrics(ctx)
	if err != nil {
		return nil, err
	}
	authSvc, err := a.getAuth(ctx)
	if err != nil {
		return nil, err
	}

	activities := db.NewActivityRepository(a.DB)

	serverConfig := server.DefaultConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	serverConfig.ReadTimeout = cfg.ReadTimeout
	serverConfig.WriteTimeout = cfg.WriteTimeout
	serverConfig.ShutdownTimeout = cfg.ShutdownTimeout
	serverConfig.AllowOrigins = cfg.AllowOrigins
	serverConfig.AppTitle = cfg.AppTitle
	serverConfig.AppVersion = cfg.AppVersion
	serverConfig.LogoUAEMEXURL = cfg.LogoUAEMexURL
	serverConfig.LogoIngURL = cfg.LogoIngURL
	serverConfig.StaticDir = cfg.StaticDir
	serverConfig.CookieSecure = cfg.CookieSecure
	serverConfig.StreamInterval = cfg.StreamInterval

	a.Server = server.New(serverConfig, server.Deps{
		Monitor:    mon,
		Auth:       authSvc,
		Metrics:    m,
		Activities: activities,
		ActivityLs: activities,
	})
	return a.Server, nil
}

func (a *App) serve(ctx context.Context) error {
	srv, err := a.buildServer(ctx)
	if err != nil {
		return err
	}

	logger.WithFields(logger.Fields{
		"addr":      a.config.Addr(),
		"driver":    a.DB.Driver(),
		"operation": "server_start",
	}).Info("Starting teamboard server")
	return srv.Start(ctx)
}
