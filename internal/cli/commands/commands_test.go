package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"teamboard/internal/auth"
	"teamboard/internal/config"
	"teamboard/internal/db"
	"teamboard/internal/errors"
	"teamboard/internal/history"
	"teamboard/internal/metrics"
	"teamboard/internal/monitor"
	"teamboard/internal/registry"
	"teamboard/internal/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRuntime serves fixed components; every dial is refused
type fakeRuntime struct {
	t      *testing.T
	cfg    *config.Config
	mon    *monitor.Monitor
	m      *metrics.Manager
	db     *db.DB
	served bool
}

func newFakeRuntime(t *testing.T, teams []registry.ServiceDescriptor) *fakeRuntime {
	client := &http.Client{
		Transport: &http.Transport{
			DialContext: func(_ context.Context, _, addr string) (net.Conn, error) {
				return nil, fmt.Errorf("dial tcp %s: connect: connection refused", addr)
			},
		},
	}
	store := history.NewStore(60)
	src := registry.Static(teams)
	return &fakeRuntime{
		t:   t,
		cfg: config.Default(),
		mon: monitor.New(monitor.Config{
			Source: src,
			Store:  store,
			Prober: monitor.NewProber(monitor.WithClient(client), monitor.WithTimeout(200*time.Millisecond)),
			Host:   "dash.example",
		}),
		m: metrics.NewManager(metrics.WithServiceCollector(metrics.NewServiceCollector(src, store))),
	}
}

func (f *fakeRuntime) Config() (*config.Config, error)   { return f.cfg, nil }
func (f *fakeRuntime) Monitor() (*monitor.Monitor, error) { return f.mon, nil }
func (f *fakeRuntime) Metrics() (*metrics.Manager, error) { return f.m, nil }

func (f *fakeRuntime) Database(context.Context) (*db.DB, error) {
	if f.db == nil {
		f.db = testutil.SetupTestDB(f.t)
	}
	return f.db, nil
}

func (f *fakeRuntime) Auth(ctx context.Context) (*auth.Service, error) {
	database, err := f.Database(ctx)
	if err != nil {
		return nil, err
	}
	tokens, err := auth.NewTokenIssuer("test-secret", "HS256", time.Hour)
	if err != nil {
		return nil, err
	}
	return auth.NewService(db.NewUserRepository(database), tokens), nil
}

func (f *fakeRuntime) Serve(context.Context) error {
	f.served = true
	return nil
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTeamsCommand(t *testing.T) {
	rt := newFakeRuntime(t, []registry.ServiceDescriptor{{Name: "equipo1", Port: 9001}})

	out, err := run(t, TeamsCommand(rt))
	require.NoError(t, err)

	var view monitor.TeamsView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "dash.example", view.Host)
	require.Len(t, view.Teams, 1)
	assert.Equal(t, "equipo1", view.Teams[0].Name)
}

func TestProbeCommand(t *testing.T) {
	teams := []registry.ServiceDescriptor{{Name: "svc1", Port: 9001}}

	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, out string)
	}{
		{
			name: "json by default",
			check: func(t *testing.T, out string) {
				var snap monitor.Snapshot
				require.NoError(t, json.Unmarshal([]byte(out), &snap))
				require.Len(t, snap.Results, 1)
				assert.Equal(t, monitor.StatusDown, snap.Results[0].Status)
			},
		},
		{
			name: "metrics text",
			args: []string{"--format", "metrics"},
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "# TYPE service_up gauge")
				assert.Contains(t, out, `service_up{service="svc1"} 0`)
				assert.Contains(t, out, `service_uptime_pct{service="svc1"} 0`)
			},
		},
		{
			name:    "unknown format",
			args:    []string{"--format", "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, ProbeCommand(newFakeRuntime(t, teams)), tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.HasCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			tt.check(t, out)
		})
	}
}

func TestUserCreateCommand(t *testing.T) {
	rt := newFakeRuntime(t, nil)

	out, err := run(t, UserCommands(rt)[0], "--email", "Ana@UAEMex.mx", "--password", "s3cret", "--name", "Ana")
	require.NoError(t, err)
	assert.Contains(t, out, "ana@uaemex.mx")

	_, err = run(t, UserCommands(rt)[0], "--email", "ana@uaemex.mx", "--password", "other")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrEmailTaken))
	assert.Equal(t, "Email already registered", HandleError(err).Error())

	_, err = run(t, UserCommands(rt)[0], "--email", "x@y.mx")
	assert.Error(t, err, "password flag is required")
}

func TestMigrateCommand(t *testing.T) {
	rt := newFakeRuntime(t, nil)

	out, err := run(t, MigrateCommand(rt))
	require.NoError(t, err)
	assert.Contains(t, out, "Schema at version 2 (sqlite3, clean)")
}

func TestMigrateCommandChecksConnection(t *testing.T) {
	rt := newFakeRuntime(t, nil)
	database, err := rt.Database(context.Background())
	require.NoError(t, err)
	require.NoError(t, database.Close())

	_, err = run(t, MigrateCommand(rt))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrDatabaseConnection))
}

func TestServeCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		wantPort int
		wantHost string
	}{
		{name: "defaults", wantPort: 8000, wantHost: "0.0.0.0"},
		{name: "flags override", args: []string{"--port", "9090", "--host", "127.0.0.1"}, wantPort: 9090, wantHost: "127.0.0.1"},
		{name: "invalid port", args: []string{"--port", "70000"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newFakeRuntime(t, nil)
			_, err := run(t, ServeCommand(rt), tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, rt.served)
				return
			}
			require.NoError(t, err)
			assert.True(t, rt.served)
			assert.Equal(t, tt.wantPort, rt.cfg.Port)
			assert.Equal(t, tt.wantHost, rt.cfg.Host)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, VersionCommand())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "teamboard 1.5.0 "))
}

func TestHandleError(t *testing.T) {
	assert.Nil(t, HandleError(nil))

	err := HandleError(errors.ConfigInvalid("port 0 out of range"))
	assert.Contains(t, err.Error(), "port 0 out of range")
	assert.Contains(t, err.Error(), "TEAMBOARD_CONFIG")

	err = HandleError(fmt.Errorf("listen tcp :8000: bind: address already in use"))
	assert.Contains(t, err.Error(), "--port")
}
