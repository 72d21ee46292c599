package server

import (
	"net/http"
	"os"

	"teamboard/internal/auth"
	"teamboard/internal/db"
	"teamboard/internal/errors"
	"teamboard/internal/logger"

	_ "teamboard/docs" // registers the OpenAPI document

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	if s.config.StaticDir != "" {
		if info, err := os.Stat(s.config.StaticDir); err == nil && info.IsDir() {
			s.echo.Static("/static", s.config.StaticDir)
		} else {
			logger.WithField("dir", s.config.StaticDir).Debug("Static directory not found, /static disabled")
		}
	}

	// Monitoring and pages authenticate optionally so the activity log
	// can attribute requests from logged-in browsers.
	loadUser := s.deps.Auth.LoadUser()

	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/teams", s.handleTeams, loadUser)
	s.echo.GET("/status", s.handleStatus, loadUser)
	s.echo.GET("/history", s.handleHistory, loadUser)
	s.echo.GET("/metrics", echo.WrapHandler(s.deps.Metrics.Handler()), loadUser)
	s.echo.GET("/diag", s.handleDiag, loadUser)
	s.echo.GET("/ws/status", s.handleStatusWebSocket, loadUser)

	s.echo.GET("/", s.handleDashboardPage, loadUser)
	s.echo.GET("/login", s.handleLoginPage, loadUser)
	s.echo.GET("/register", s.handleRegisterPage, loadUser)
	s.echo.GET("/app", s.handleAppPage, s.deps.Auth.RequireUserOrRedirect("/login"))

	// Auth API
	api := s.echo.Group("/api")
	api.POST("/register", s.handleRegister)
	api.POST("/login", s.handleLogin)
	api.POST("/logout", s.handleLogout)

	authed := api.Group("", s.deps.Auth.RequireUser())
	authed.GET("/me", s.handleMe)
	authed.GET("/activities", s.handleListActivities)
}

// handleHealth godoc
// @Summary Health check
// @Description Liveness of the dashboard itself
// @Tags monitoring
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleTeams godoc
// @Summary List teams
// @Description The registry as currently configured, with the public host label
// @Tags monitoring
// @Produce json
// @Success 200 {object} monitor.TeamsView
// @Router /teams [get]
func (s *Server) handleTeams(c echo.Context) error {
	return c.JSON(http.StatusOK, s.deps.Monitor.Teams())
}

// handleStatus godoc
// @Summary Probe every service
// @Description Runs one aggregation pass and returns the snapshot
// @Tags monitoring
// @Produce json
// @Success 200 {object} monitor.Snapshot
// @Router /status [get]
func (s *Server) handleStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, s.deps.Monitor.Status(c.Request().Context()))
}

// handleHistory godoc
// @Summary Raw history
// @Description Rolling window of samples per service name
// @Tags monitoring
// @Produce json
// @Success 200 {object} map[string][]history.Sample
// @Router /history [get]
func (s *Server) handleHistory(c echo.Context) error {
	return c.JSON(http.StatusOK, s.deps.Monitor.History().Snapshot())
}

// handleDiag godoc
// @Summary Internal reachability
// @Description Best-effort check of every internal health URL; lists failures only
// @Tags monitoring
// @Produce json
// @Success 200 {object} monitor.DiagReport
// @Router /diag [get]
func (s *Server) handleDiag(c echo.Context) error {
	return c.JSON(http.StatusOK, s.deps.Monitor.Diag(c.Request().Context()))
}

// handleRegister godoc
// @Summary Register
// @Description Create a user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/register [post]
func (s *Server) handleRegister(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidInput("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fullName := ""
	if req.FullName != nil {
		fullName = *req.FullName
	}
	user, err := s.deps.Auth.Register(c.Request().Context(), req.Email, fullName, req.Password)
	if err != nil {
		return err
	}

	logger.GetLogger(c).WithField("user_id", user.ID).Info("User registered")
	return c.JSON(http.StatusOK, AuthResponse{OK: true, User: newUserResponse(user)})
}

// handleLogin godoc
// @Summary Login
// @Description Verify credentials and set the http-only access_token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/login [post]
func (s *Server) handleLogin(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidInput("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := s.deps.Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	auth.SetAuthCookie(c, token, s.deps.Auth.Tokens().TTL(), s.config.CookieSecure)
	return c.JSON(http.StatusOK, AuthResponse{OK: true, User: newUserResponse(user)})
}

// handleLogout godoc
// @Summary Logout
// @Description Clear the auth cookie. Issued tokens stay valid until they expire.
// @Tags auth
// @Produce json
// @Success 200 {object} OKResponse
// @Router /api/logout [post]
func (s *Server) handleLogout(c echo.Context) error {
	auth.ClearAuthCookie(c)
	return c.JSON(http.StatusOK, OKResponse{OK: true})
}

// handleMe godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/me [get]
func (s *Server) handleMe(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return errors.Unauthenticated("No token")
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// handleListActivities godoc
// @Summary Audit trail
// @Description Most recent requests, newest first
// @Tags auth
// @Produce json
// @Security Bearer
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(50)
// @Success 200 {object} ActivitiesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/activities [get]
func (s *Server) handleListActivities(c echo.Context) error {
	if s.deps.ActivityLs == nil {
		return errors.NotFound("activity log")
	}

	opts := db.DefaultPaginationOptions()
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &opts); err != nil {
		return errors.InvalidInput("page and page_size must be integers")
	}
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return errors.InvalidInput(err.Error())
	}

	list, total, err := s.deps.ActivityLs.ListRecent(c.Request().Context(), opts)
	if err != nil {
		return errors.DatabaseQueryError("list activities", err)
	}
	return c.JSON(http.StatusOK, db.NewPaginatedResponse(list, opts, total))
}
