package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG config dir at an empty temp dir so a developer's
// own config.toml never leaks into the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TEAMBOARD_CONFIG", "")
	for _, key := range []string{"WG_HOST", "TEAMS_JSON", "JWT_SECRET", "DATABASE_URL", "TEAMBOARD_WG_HOST", "TEAMBOARD_PORT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.WGHost)
	assert.Equal(t, "[]", cfg.TeamsJSON)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, 8000, cfg.ProbePort)
	assert.Equal(t, 60, cfg.HistoryWindow)
	assert.Equal(t, 1500*time.Millisecond, cfg.ProbeTimeout)
	assert.Equal(t, 800*time.Millisecond, cfg.DiagTimeout)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.True(t, cfg.InsecureSecret(), "default secret must be flagged as insecure")
}

func TestLoadLegacyEnvNames(t *testing.T) {
	isolate(t)
	t.Setenv("WG_HOST", "10.0.0.5")
	t.Setenv("TEAMS_JSON", `[{"name":"svc1","port":9001}]`)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5", cfg.WGHost)
	assert.Equal(t, `[{"name":"svc1","port":9001}]`, cfg.TeamsJSON)
	assert.False(t, cfg.InsecureSecret())
}

func TestPrefixedEnvWins(t *testing.T) {
	isolate(t)
	t.Setenv("WG_HOST", "legacy")
	t.Setenv("TEAMBOARD_WG_HOST", "prefixed")
	t.Setenv("TEAMBOARD_PORT", "9090")
	t.Setenv("TEAMBOARD_PROBE_TIMEOUT", "2s")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "prefixed", cfg.WGHost)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.ProbeTimeout)
}

func TestLoadTOMLFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "teamboard.toml")
	content := `
wg_host = "board.example"
history_window = 10
stream_interval = "1s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("TEAMBOARD_CONFIG", path)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "board.example", cfg.WGHost)
	assert.Equal(t, 10, cfg.HistoryWindow)
	assert.Equal(t, time.Second, cfg.StreamInterval)
}

func TestLoadYAMLFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "teamboard.yaml")
	content := "wg_host: yaml.example\njwt_algorithm: hs512\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("TEAMBOARD_CONFIG", path)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "yaml.example", cfg.WGHost)
	assert.Equal(t, "HS512", cfg.JWTAlgorithm)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"port too high", func(c *Config) { c.Port = 70000 }},
		{"empty window", func(c *Config) { c.HistoryWindow = 0 }},
		{"zero probe timeout", func(c *Config) { c.ProbeTimeout = 0 }},
		{"unknown driver", func(c *Config) { c.DatabaseDriver = "mysql" }},
		{"unknown algorithm", func(c *Config) { c.JWTAlgorithm = "RS256" }},
		{"blank host label", func(c *Config) { c.WGHost = "  " }},
		{"probe port zero", func(c *Config) { c.ProbePort = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
