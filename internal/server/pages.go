package server

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"teamboard/internal/auth"
	"teamboard/internal/constants"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is the view model shared by every HTML page
type PageData struct {
	Title         string
	Version       string
	Host          string
	LogoUAEMEXURL string
	LogoIngURL    string
	DisplayName   string
	MaxErr        int
}

type pageRenderer struct {
	templates *template.Template
}

func newPageRenderer() *pageRenderer {
	return &pageRenderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Render implements echo.Renderer
func (r *pageRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func (s *Server) pageData(c echo.Context) PageData {
	data := PageData{
		Title:         s.config.AppTitle,
		Version:       s.config.AppVersion,
		Host:          s.deps.Monitor.Host(),
		LogoUAEMEXURL: s.config.LogoUAEMEXURL,
		LogoIngURL:    s.config.LogoIngURL,
		MaxErr:        constants.MaxErrorDisplayLength,
	}
	if user, ok := auth.CurrentUser(c); ok {
		data.DisplayName = user.DisplayName()
	}
	return data
}

// handleDashboardPage serves the live status table. The page polls /status
// itself; nothing is probed while rendering.
func (s *Server) handleDashboardPage(c echo.Context) error {
	return c.Render(http.StatusOK, "dashboard.html", s.pageData(c))
}

func (s *Server) handleLoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", s.pageData(c))
}

func (s *Server) handleRegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", s.pageData(c))
}

// handleAppPage greets the authenticated user. Mounted behind
// RequireUserOrRedirect.
func (s *Server) handleAppPage(c echo.Context) error {
	return c.Render(http.StatusOK, "app.html", s.pageData(c))
}
