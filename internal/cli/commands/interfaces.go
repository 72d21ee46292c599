package commands

import (
	"context"

	"teamboard/internal/auth"
	"teamboard/internal/config"
	"teamboard/internal/db"
	"teamboard/internal/metrics"
	"teamboard/internal/monitor"
)

// Runtime builds the components a command needs. Implementations build
// lazily so read-only commands never open the database.
type Runtime interface {
	Config() (*config.Config, error)
	Monitor() (*monitor.Monitor, error)
	Metrics() (*metrics.Manager, error)
	Database(ctx context.Context) (*db.DB, error)
	Auth(ctx context.Context) (*auth.Service, error)
	Serve(ctx context.Context) error
}
