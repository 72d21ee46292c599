package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"teamboard/internal/auth"
	"teamboard/internal/db"
	"teamboard/internal/history"
	"teamboard/internal/monitor"
	"teamboard/internal/registry"
	"teamboard/internal/testutil"

	"github.com/stretchr/testify/require"
)

// testServer bundles a server wired to an in-memory database and a fake
// network on which only the named services answer.
type testServer struct {
	server   *Server
	handler  http.Handler
	store    *history.Store
	database *db.DB
}

type fixtureOption func(*Deps)

func withActivityStore(store ActivityStore) fixtureOption {
	return func(d *Deps) { d.Activities = store }
}

func newTestServer(t *testing.T, teams []registry.ServiceDescriptor, healthy []string, opts ...fixtureOption) *testServer {
	t.Helper()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	t.Cleanup(backend.Close)
	target := strings.TrimPrefix(backend.URL, "http://")

	up := make(map[string]bool, len(healthy))
	for _, name := range healthy {
		up[name] = true
	}
	var dialer net.Dialer
	client := &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				host, _, _ := net.SplitHostPort(addr)
				if !up[host] {
					return nil, fmt.Errorf("dial tcp %s: connect: connection refused", addr)
				}
				return dialer.DialContext(ctx, network, target)
			},
		},
	}

	store := history.NewStore(60)
	mon := monitor.New(monitor.Config{
		Source:      registry.Static(teams),
		Store:       store,
		Prober:      monitor.NewProber(monitor.WithClient(client), monitor.WithTimeout(500*time.Millisecond)),
		Host:        "dash.example",
		DiagTimeout: 200 * time.Millisecond,
	})

	database := testutil.SetupTestDB(t)
	tokens, err := auth.NewTokenIssuer("test-secret", "HS256", time.Hour)
	require.NoError(t, err)
	activities := db.NewActivityRepository(database)

	deps := Deps{
		Monitor:    mon,
		Auth:       auth.NewService(db.NewUserRepository(database), tokens),
		Activities: activities,
		ActivityLs: activities,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	cfg := DefaultConfig()
	cfg.StreamInterval = 50 * time.Millisecond
	s := New(cfg, deps)

	return &testServer{server: s, handler: s.Handler(), store: store, database: database}
}

func (ts *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) get(t *testing.T, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return ts.do(t, req)
}

func (ts *testServer) postJSON(t *testing.T, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req, err := testutil.NewJSONRequest(http.MethodPost, path, body)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return ts.do(t, req)
}

func authCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "access_token" {
			return c
		}
	}
	return nil
}

func twoTeams() []registry.ServiceDescriptor {
	return []registry.ServiceDescriptor{
		{Name: "svc1", Port: 9001},
		{Name: "svc2", Port: 9002},
	}
}
