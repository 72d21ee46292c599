package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"teamboard/internal/auth"
	"teamboard/internal/db"
	"teamboard/internal/errors"
	"teamboard/internal/logger"
	"teamboard/internal/metrics"

	"github.com/labstack/echo/v4"
)

const activityWriteTimeout = 2 * time.Second

// tryLog runs a best-effort operation; a failure is logged and dropped
func tryLog(op string, fn func() error) {
	if err := fn(); err != nil {
		logger.WithError(err).WithField("op", op).Warn("Best-effort operation failed")
	}
}

// activityMiddleware appends one audit entry per request after the
// handler ran. Static assets and the liveness probe are skipped. Write
// failures never reach the client.
func activityMiddleware(store ActivityStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if strings.HasPrefix(path, "/static") || path == "/health" {
				return next(c)
			}

			err := next(c)

			entry := &db.Activity{
				Path:   path,
				Method: c.Request().Method,
			}
			if ua := c.Request().UserAgent(); ua != "" {
				entry.UserAgent = &ua
			}
			if ip := c.RealIP(); ip != "" {
				entry.RemoteIP = &ip
			}
			if user, ok := auth.CurrentUser(c); ok {
				entry.UserID = &user.ID
			}
			if err != nil {
				detail := errorMessage(err)
				entry.Detail = &detail
			}

			tryLog("record activity", func() error {
				ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), activityWriteTimeout)
				defer cancel()
				return store.Create(ctx, entry)
			})

			return err
		}
	}
}

// metricsMiddleware counts requests by route pattern and final status
func metricsMiddleware(m *metrics.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = errorStatus(err)
			}
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			m.RecordHTTPRequest(c.Request().Method, path, strconv.Itoa(status), time.Since(start))
			return err
		}
	}
}

func errorStatus(err error) int {
	if te, ok := errors.As(err); ok {
		return te.GetHTTPStatus()
	}
	var he *echo.HTTPError
	if stderrors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

func errorMessage(err error) string {
	if te, ok := errors.As(err); ok {
		if te.GetHTTPStatus() >= http.StatusInternalServerError {
			return "Internal server error"
		}
		return te.Reason()
	}
	var he *echo.HTTPError
	if stderrors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return msg
		}
		return http.StatusText(he.Code)
	}
	return "Internal server error"
}

// ErrorHandler renders every error as HTTPErrorResponse. Details of 5xx
// causes are logged, never returned.
func ErrorHandler(err error, c echo.Context) {
	code := errorStatus(err)
	message := errorMessage(err)

	reqID := c.Response().Header().Get(echo.HeaderXRequestID)
	entry := logger.GetLogger(c).WithError(err).WithField("status", code)
	if code >= http.StatusInternalServerError {
		entry.Error("Request error")
	} else {
		entry.Debug("Request rejected")
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	resp := ErrorResponse{
		Error:     message,
		Detail:    message,
		Code:      errors.GetCode(err),
		RequestID: reqID,
	}
	_ = c.JSON(code, resp)
}
