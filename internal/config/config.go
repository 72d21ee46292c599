// Package config loads the dashboard configuration.
//
// Values are layered, lowest precedence first: defaults, an optional TOML or
// YAML file, the historic unprefixed environment names, and finally
// TEAMBOARD_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"teamboard/internal/constants"
	"teamboard/internal/errors"
	"teamboard/internal/validation"
)

// Config contains process configuration
type Config struct {
	// Branding
	AppTitle   string `koanf:"app_title"`
	AppVersion string `koanf:"app_version"`

	// HTTP server
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	AllowOrigins    []string      `koanf:"allow_origins"`
	StaticDir       string        `koanf:"static_dir"`

	// Monitor
	WGHost         string        `koanf:"wg_host"`
	TeamsJSON      string        `koanf:"teams_json"`
	TeamsFile      string        `koanf:"teams_file"`
	LogoUAEMexURL  string        `koanf:"logo_uaemex_url"`
	LogoIngURL     string        `koanf:"logo_ing_url"`
	ProbePort      int           `koanf:"probe_port"`
	ProbeTimeout   time.Duration `koanf:"probe_timeout"`
	DiagTimeout    time.Duration `koanf:"diag_timeout"`
	HistoryWindow  int           `koanf:"history_window"`
	StreamInterval time.Duration `koanf:"stream_interval"`

	// Storage
	DatabaseDriver string `koanf:"database_driver"`
	DatabaseURL    string `koanf:"database_url"`

	// Auth
	JWTSecret    string        `koanf:"jwt_secret"`
	JWTAlgorithm string        `koanf:"jwt_algorithm"`
	TokenTTL     time.Duration `koanf:"token_ttl"`
	CookieSecure bool          `koanf:"cookie_secure"`

	// Logging
	LogLevel string `koanf:"log_level"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		AppTitle:        constants.DefaultAppTitle,
		AppVersion:      constants.AppVersion,
		Host:            "0.0.0.0",
		Port:            constants.DefaultServerPort,
		ReadTimeout:     constants.DefaultServerReadTimeout,
		WriteTimeout:    constants.DefaultServerWriteTimeout,
		ShutdownTimeout: constants.DefaultServerShutdownTimeout,
		AllowOrigins:    []string{"*"},
		StaticDir:       "static",
		WGHost:          "localhost",
		TeamsJSON:       "[]",
		ProbePort:       constants.DefaultProbePort,
		ProbeTimeout:    constants.DefaultProbeTimeout,
		DiagTimeout:     constants.DefaultDiagTimeout,
		HistoryWindow:   constants.DefaultHistoryWindow,
		StreamInterval:  constants.DefaultStreamInterval,
		DatabaseDriver:  "sqlite3",
		JWTSecret:       constants.DefaultJWTSecret,
		JWTAlgorithm:    constants.DefaultJWTAlgorithm,
		TokenTTL:        constants.DefaultTokenTTL,
		LogLevel:        "info",
	}
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// InsecureSecret reports whether the development JWT secret is still in use
func (c *Config) InsecureSecret() bool {
	return c.JWTSecret == "" || c.JWTSecret == constants.DefaultJWTSecret
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	if err := validation.PortNumber("port", c.Port); err != nil {
		return invalid(err)
	}
	if err := validation.PortNumber("probe_port", c.ProbePort); err != nil {
		return invalid(err)
	}
	if err := validation.NonEmptyString("wg_host", c.WGHost); err != nil {
		return invalid(err)
	}
	if c.HistoryWindow < 1 {
		return errors.ConfigInvalid("history_window must be at least 1")
	}
	if c.ProbeTimeout <= 0 || c.DiagTimeout <= 0 {
		return errors.ConfigInvalid("probe and diag timeouts must be positive")
	}
	if c.StreamInterval <= 0 {
		return errors.ConfigInvalid("stream_interval must be positive")
	}
	if c.TokenTTL <= 0 {
		return errors.ConfigInvalid("token_ttl must be positive")
	}
	switch c.DatabaseDriver {
	case "sqlite3", "postgres":
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unsupported database driver: %s", c.DatabaseDriver))
	}
	switch strings.ToUpper(c.JWTAlgorithm) {
	case "HS256", "HS384", "HS512":
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unsupported jwt algorithm: %s", c.JWTAlgorithm))
	}
	return nil
}

func invalid(err error) error {
	if te, ok := errors.As(err); ok {
		return errors.ConfigInvalid(te.Reason())
	}
	return errors.ConfigInvalid(err.Error())
}
