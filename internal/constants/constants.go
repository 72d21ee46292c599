// Package constants defines application-wide constants to avoid magic numbers
package constants

import "time"

// Application identity
const (
	AppName         = "teamboard"
	DefaultAppTitle = "principal-isi"
	AppVersion      = "1.5.0"
)

// Network and Port Constants
const (
	// DefaultServerPort is the default port for the dashboard HTTP server
	DefaultServerPort = 8000

	// DefaultProbePort is the fixed internal port every team service exposes /health on
	DefaultProbePort = 8000

	// MinPortNumber is the minimum valid TCP port number
	MinPortNumber = 1

	// MaxPortNumber is the maximum valid TCP port number
	MaxPortNumber = 65535
)

// File System Permissions
const (
	// DirPermissions is the standard directory permissions for teamboard directories
	DirPermissions = 0755
)

// Database Configuration
const (
	// DefaultMaxOpenConnections is the default maximum number of database connections
	DefaultMaxOpenConnections = 25

	// DefaultMaxIdleConnections is the default maximum number of idle database connections
	DefaultMaxIdleConnections = 5

	// DefaultConnectionTimeout is the default database connection lifetime
	DefaultConnectionTimeout = 5 * time.Minute

	// DefaultIdleTimeout is the default database idle connection timeout
	DefaultIdleTimeout = 1 * time.Minute

	// DefaultDatabaseFile is the SQLite file name inside the XDG data dir
	DefaultDatabaseFile = "teamboard.db"
)

// HTTP Configuration
const (
	// DefaultServerReadTimeout is the default server read timeout
	DefaultServerReadTimeout = 10 * time.Second

	// DefaultServerWriteTimeout is the default server write timeout
	DefaultServerWriteTimeout = 10 * time.Second

	// DefaultServerShutdownTimeout is the default server graceful shutdown timeout
	DefaultServerShutdownTimeout = 30 * time.Second
)

// Monitoring
const (
	// DefaultHistoryWindow is the number of samples kept per service
	DefaultHistoryWindow = 60

	// DefaultProbeTimeout bounds a single /status health probe
	DefaultProbeTimeout = 1500 * time.Millisecond

	// DefaultDiagTimeout bounds a single /diag reachability check
	DefaultDiagTimeout = 800 * time.Millisecond

	// DefaultStreamInterval is the push interval of the websocket status stream
	DefaultStreamInterval = 5 * time.Second

	// MaxErrorDisplayLength is where the dashboard truncates error text
	MaxErrorDisplayLength = 80
)

// Authentication
const (
	// DefaultJWTSecret is the insecure development secret; deployers must override it
	DefaultJWTSecret = "dev-secret-change-me"

	// DefaultJWTAlgorithm is the default token signing algorithm
	DefaultJWTAlgorithm = "HS256"

	// DefaultTokenTTL is the lifetime of an issued access token
	DefaultTokenTTL = 12 * time.Hour

	// AuthCookieName is the cookie the access token is stored in
	AuthCookieName = "access_token"
)

// Audit
const (
	// DefaultActivityListLimit is the default number of audit rows returned
	DefaultActivityListLimit = 50

	// MaxActivityListLimit caps the number of audit rows returned
	MaxActivityListLimit = 500
)
