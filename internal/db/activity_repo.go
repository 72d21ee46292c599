package db

import (
	"context"
	"fmt"
	"time"
)

// ActivityRepository handles the append-only audit trail
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create appends an entry and fills in ID and CreatedAt
func (r *ActivityRepository) Create(ctx context.Context, a *Activity) error {
	a.CreatedAt = time.Now().UTC()

	query := r.db.Rebind(`
		INSERT INTO activities (user_id, path, method, user_agent, remote_ip, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := r.db.QueryRowxContext(ctx, query,
		a.UserID, a.Path, a.Method, a.UserAgent, a.RemoteIP, a.Detail, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	return nil
}

// ListRecent returns entries newest first
func (r *ActivityRepository) ListRecent(ctx context.Context, opts PaginationOptions) ([]*Activity, int, error) {
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM activities`); err != nil {
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	query := `
		SELECT id, user_id, path, method, user_agent, remote_ip, detail, created_at
		FROM activities
		ORDER BY created_at DESC, id DESC
	` + opts.BuildLimitClause()

	activities := []*Activity{}
	if err := r.db.SelectContext(ctx, &activities, query); err != nil {
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}

	return activities, total, nil
}
