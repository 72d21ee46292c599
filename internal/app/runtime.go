package app

import (
	"context"

	"teamboard/internal/auth"
	"teamboard/internal/config"
	"teamboard/internal/db"
	"teamboard/internal/metrics"
	"teamboard/internal/monitor"
)

// runtime exposes the lazily built components to the CLI commands
type runtime struct {
	app *App
}

func (r *runtime) Config() (*config.Config, error) {
	return r.app.getConfig(context.Background())
}

func (r *runtime) Monitor() (*monitor.Monitor, error) {
	return r.app.getMonitor(context.Background())
}

func (r *runtime) Metrics() (*metrics.Manager, error) {
	return r.app.getMetrics(context.Background())
}

func (r *runtime) Database(ctx context.Context) (*db.DB, error) {
	return r.app.getDatabase(ctx)
}

func (r *runtime) Auth(ctx context.Context) (*auth.Service, error) {
	return r.app.getAuth(ctx)
}

func (r *runtime) Serve(ctx context.Context) error {
	return r.app.serve(ctx)
}
