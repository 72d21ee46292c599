package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"teamboard/internal/monitor"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialStatus(t *testing.T, ts *testServer, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	srv := httptest.NewServer(ts.handler)
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/status"
	return websocket.DefaultDialer.Dial(url, header)
}

func TestStatusWebSocketStreamsSnapshots(t *testing.T) {
	ts := newTestServer(t, twoTeams(), []string{"svc2"})

	ws, _, err := dialStatus(t, ts, nil)
	require.NoError(t, err)
	defer ws.Close()

	for i := 0; i < 2; i++ {
		require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
		var snap monitor.Snapshot
		require.NoError(t, ws.ReadJSON(&snap))

		assert.Equal(t, "dash.example", snap.Host)
		require.Len(t, snap.Results, 2)
		assert.Equal(t, monitor.StatusDown, snap.Results[0].Status)
		assert.Equal(t, monitor.StatusUp, snap.Results[1].Status)
	}

	// every pushed snapshot is an independent pass recorded in history
	assert.GreaterOrEqual(t, len(ts.store.Samples("svc2")), 2)
}

func TestStatusWebSocketOrigin(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		allowed bool
	}{
		{name: "no origin", origins: []string{"https://board.example"}, allowed: true},
		{name: "localhost", origins: []string{"https://board.example"}, origin: "http://localhost:3000", allowed: true},
		{name: "configured origin", origins: []string{"https://board.example"}, origin: "https://board.example", allowed: true},
		{name: "wildcard", origins: []string{"*"}, origin: "https://anything.example", allowed: true},
		{name: "foreign origin", origins: []string{"https://board.example"}, origin: "https://evil.example", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, nil, nil)
			ts.server.config.AllowOrigins = tt.origins

			header := http.Header{}
			if tt.origin != "" {
				header.Set("Origin", tt.origin)
			}
			ws, resp, err := dialStatus(t, ts, header)
			if tt.allowed {
				require.NoError(t, err)
				ws.Close()
				return
			}
			require.Error(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		})
	}
}
