package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teamboard/internal/auth"
	"teamboard/internal/constants"
	"teamboard/internal/db"
	"teamboard/internal/logger"
	"teamboard/internal/metrics"
	"teamboard/internal/monitor"
	"teamboard/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the server configuration
type Config struct {
	// Server settings
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// CORS settings
	AllowOrigins []string
	AllowHeaders []string

	// Pages
	AppTitle      string
	AppVersion    string
	LogoUAEMEXURL string
	LogoIngURL    string
	StaticDir     string

	CookieSecure   bool
	StreamInterval time.Duration
}

// DefaultConfig returns the default server configuration
func DefaultConfig() *Config {
	return &Config{
		Host:            "0.0.0.0",
		Port:            constants.DefaultServerPort,
		ReadTimeout:     constants.DefaultServerReadTimeout,
		WriteTimeout:    constants.DefaultServerWriteTimeout,
		ShutdownTimeout: constants.DefaultServerShutdownTimeout,
		AllowOrigins:    []string{"*"},
		AllowHeaders:    []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AppTitle:        constants.DefaultAppTitle,
		AppVersion:      constants.AppVersion,
		StreamInterval:  constants.DefaultStreamInterval,
	}
}

// ActivityStore appends audit entries
type ActivityStore interface {
	Create(ctx context.Context, a *db.Activity) error
}

// ActivityLister reads audit entries back
type ActivityLister interface {
	ListRecent(ctx context.Context, opts db.PaginationOptions) ([]*db.Activity, int, error)
}

// Deps are the collaborators the handlers use
type Deps struct {
	Monitor    *monitor.Monitor
	Auth       *auth.Service
	Metrics    *metrics.Manager
	Activities ActivityStore
	ActivityLs ActivityLister
}

// Server represents the main HTTP server
type Server struct {
	config    *Config
	echo      *echo.Echo
	deps      Deps
	startTime time.Time
	ready     bool
}

// New creates a server. Monitor and Auth are required; a nil Metrics gets a
// manager whose only series are the service gauges.
func New(cfg *Config, deps Deps) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.StreamInterval <= 0 {
		cfg.StreamInterval = constants.DefaultStreamInterval
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewManager(metrics.WithServiceCollector(
			metrics.NewServiceCollector(deps.Monitor.Source(), deps.Monitor.History())))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler
	e.Validator = validation.NewEchoValidator()
	e.Renderer = newPageRenderer()

	return &Server{
		config:    cfg,
		echo:      e,
		deps:      deps,
		startTime: time.Now(),
	}
}

// Echo returns the Echo instance
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Handler returns the HTTP handler with middleware and routes installed
func (s *Server) Handler() http.Handler {
	s.setup()
	return s.echo
}

func (s *Server) setup() {
	if s.ready {
		return
	}
	s.ready = true
	s.setupMiddleware()
	s.setupRoutes()
}

// Start starts the server and blocks until shutdown
func (s *Server) Start(ctx context.Context) error {
	s.setup()

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	logger.WithField("addr", addr).Info("Starting server")

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.echo,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to start server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errChan:
		return err
	case <-quit:
		logger.Infof("Shutting down server...")
	case <-ctx.Done():
		logger.Infof("Context cancelled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Infof("Server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware
func (s *Server) setupMiddleware() {
	s.echo.Use(logger.RequestLogger())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     s.config.AllowOrigins,
		AllowHeaders:     s.config.AllowHeaders,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowCredentials: !containsWildcard(s.config.AllowOrigins),
	}))
	s.echo.Use(metricsMiddleware(s.deps.Metrics))
	if s.deps.Activities != nil {
		s.echo.Use(activityMiddleware(s.deps.Activities))
	}
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
