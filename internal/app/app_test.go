package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"teamboard/internal/config"
	"teamboard/internal/errors"
	"teamboard/internal/monitor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.DatabaseURL = ":memory:"
	cfg.TeamsJSON = `[{"name":"equipo1","port":9001},{"name":"itm-2","port":9002,"course":"ITM"}]`
	cfg.WGHost = "dash.example"
	return cfg
}

func execute(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a.CLI.Root().SetOut(&out)
	a.CLI.Root().SetErr(&out)
	err := a.CLI.ExecuteWithContext(context.Background(), args)
	return out.String(), err
}

func TestTeamsDoesNotOpenDatabase(t *testing.T) {
	a := NewWithConfig(testConfig())
	defer a.Close()

	out, err := execute(t, a, "teams")
	require.NoError(t, err)
	assert.Nil(t, a.DB)

	var view monitor.TeamsView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "dash.example", view.Host)
	assert.Len(t, view.Teams, 2)
}

func TestUserCreateAndMigrate(t *testing.T) {
	a := NewWithConfig(testConfig())
	defer a.Close()

	out, err := execute(t, a, "user", "create", "--email", "ana@uaemex.mx", "--password", "s3cret")
	require.NoError(t, err)
	assert.Contains(t, out, "Created user 1")
	require.NotNil(t, a.DB)

	out, err = execute(t, a, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "version 2")
}

func TestConfigErrorsSurface(t *testing.T) {
	a := New()
	a.loadConfig = func(context.Context) (*config.Config, error) {
		return nil, errors.ConfigInvalid("port 0 out of range")
	}

	_, err := execute(t, a, "teams")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrConfigInvalid))
}

func TestPostgresRequiresURL(t *testing.T) {
	cfg := testConfig()
	cfg.DatabaseDriver = "postgres"
	cfg.DatabaseURL = ""
	a := NewWithConfig(cfg)

	_, err := a.getDatabase(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrConfigInvalid))
}

func TestBuildServer(t *testing.T) {
	a := NewWithConfig(testConfig())
	defer a.Close()

	srv, err := a.buildServer(context.Background())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var view monitor.TeamsView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "ITM", view.Teams[1].Course)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `service_up{service="equipo1"} 0`)
}
