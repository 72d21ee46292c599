package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"teamboard/internal/errors"
	"teamboard/internal/xdg"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of the namespaced environment variables
const EnvPrefix = "TEAMBOARD_"

// legacyEnv lists the unprefixed names the dashboard has always read.
var legacyEnv = map[string]bool{
	"app_title":       true,
	"app_version":     true,
	"wg_host":         true,
	"teams_json":      true,
	"teams_file":      true,
	"logo_uaemex_url": true,
	"logo_ing_url":    true,
	"static_dir":      true,
	"database_url":    true,
	"jwt_secret":      true,
	"jwt_algorithm":   true,
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (Default())
//  2. file named by TEAMBOARD_CONFIG, else $XDG_CONFIG_HOME/teamboard/config.toml if present
//  3. legacy env names (WG_HOST, TEAMS_JSON, JWT_SECRET, ...)
//  4. env with prefix TEAMBOARD_
func Load(_ context.Context) (*Config, error) {
	base := Default()
	k := koanf.New(".")

	if path := configPath(); path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.ConfigParseError(err)
		}
	}

	legacy := env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if legacyEnv[key] {
			return key
		}
		return ""
	})
	if err := k.Load(legacy, nil); err != nil {
		return nil, errors.ConfigParseError(err)
	}

	prefixed := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(prefixed, nil); err != nil {
		return nil, errors.ConfigParseError(err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.ConfigParseError(err)
	}
	cfg.JWTAlgorithm = strings.ToUpper(cfg.JWTAlgorithm)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func configPath() string {
	if path := os.Getenv(EnvPrefix + "CONFIG"); path != "" {
		return path
	}
	dir, err := xdg.ConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return TOMLParser()
	}
}
