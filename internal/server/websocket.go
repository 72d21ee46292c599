package server

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"teamboard/internal/logger"
	"teamboard/internal/monitor"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsReadLimit    = 512
)

var localOrigins = []string{
	"http://localhost",
	"https://localhost",
	"http://127.0.0.1",
	"https://127.0.0.1",
	"http://[::1]",
	"https://[::1]",
}

// newUpgrader accepts same-host origins, localhost, and whatever the CORS
// configuration allows.
func (s *Server) newUpgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")

			// CLI tools send no origin
			if origin == "" {
				return true
			}

			if u, err := url.Parse(origin); err == nil && strings.EqualFold(u.Host, r.Host) {
				return true
			}

			for _, allowed := range s.config.AllowOrigins {
				if allowed == "*" || strings.EqualFold(allowed, origin) {
					return true
				}
			}

			for _, allowed := range localOrigins {
				if strings.HasPrefix(origin, allowed) {
					return true
				}
			}

			logger.WithFields(logger.Fields{
				"origin": origin,
				"remote": r.RemoteAddr,
			}).Warn("WebSocket connection rejected - invalid origin")

			return false
		},
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
	}
}

// handleStatusWebSocket godoc
// @Summary Live status stream
// @Description Upgrades to a WebSocket and pushes one status snapshot per stream interval
// @Tags monitoring
// @Success 101 {string} string "Switching Protocols"
// @Router /ws/status [get]
func (s *Server) handleStatusWebSocket(c echo.Context) error {
	ws, err := s.newUpgrader().Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		logger.GetLogger(c).WithError(err).Debug("WebSocket upgrade failed")
		return nil
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	log := logger.GetLogger(c)
	log.Debug("Status stream opened")

	// Clients never send anything meaningful; reading detects the close
	go func() {
		defer cancel()
		ws.SetReadLimit(wsReadLimit)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.WithError(err).Debug("WebSocket read error")
				}
				return
			}
		}
	}()

	err = s.deps.Monitor.Stream(ctx, s.config.StreamInterval, func(snap monitor.Snapshot) error {
		if err := ws.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
			return err
		}
		return ws.WriteJSON(snap)
	})
	if err != nil && ctx.Err() == nil {
		log.WithError(err).Debug("Status stream write failed")
	}

	deadline := time.Now().Add(time.Second)
	_ = ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	log.Debug("Status stream closed")
	return nil
}
