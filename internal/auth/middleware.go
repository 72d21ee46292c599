package auth

import (
	"net/http"
	"time"

	"teamboard/internal/constants"
	"teamboard/internal/db"
	"teamboard/internal/logger"

	"github.com/labstack/echo/v4"
)

const userContextKey = "auth.user"

// CurrentUser returns the user stored by RequireUser or LoadUser
func CurrentUser(c echo.Context) (*db.User, bool) {
	u, ok := c.Get(userContextKey).(*db.User)
	return u, ok && u != nil
}

// RequireUser rejects requests without a valid token with a 401 whose
// reason says what was wrong
func (s *Service) RequireUser(extractors ...Extractor) echo.MiddlewareFunc {
	if len(extractors) == 0 {
		extractors = DefaultExtractors()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := s.Authenticate(c.Request().Context(), Extract(c.Request(), extractors))
			if err != nil {
				return err
			}
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RequireUserOrRedirect is RequireUser for HTML pages: unauthenticated
// browsers are sent to loginPath instead of getting a JSON error
func (s *Service) RequireUserOrRedirect(loginPath string) echo.MiddlewareFunc {
	extractors := DefaultExtractors()
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := s.Authenticate(c.Request().Context(), Extract(c.Request(), extractors))
			if err != nil {
				logger.GetLogger(c).WithError(err).Debug("Redirecting unauthenticated page request")
				return c.Redirect(http.StatusFound, loginPath)
			}
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// LoadUser attaches the user when a valid token is present and never rejects
func (s *Service) LoadUser() echo.MiddlewareFunc {
	extractors := DefaultExtractors()
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if tok := Extract(c.Request(), extractors); tok != "" {
				if user, err := s.Authenticate(c.Request().Context(), tok); err == nil {
					c.Set(userContextKey, user)
				}
			}
			return next(c)
		}
	}
}

// SetAuthCookie stores the token in the http-only auth cookie
func SetAuthCookie(c echo.Context, token string, ttl time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAuthCookie expires the auth cookie
func ClearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
