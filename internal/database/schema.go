package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is the subset of pgxpool.Pool needed to apply the schema.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// CreateSchema creates the activity log tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Schema is the DDL applied by CreateSchema.
const Schema = `
CREATE TABLE IF NOT EXISTS activity_logs (
    id UUID PRIMARY KEY,
    report_id INTEGER,
    activity_type TEXT NOT NULL,
    action_description TEXT NOT NULL,
    actor TEXT NOT NULL,
    district TEXT NOT NULL DEFAULT '',
    metadata TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_activity_logs_report_id ON activity_logs(report_id);
CREATE INDEX IF NOT EXISTS idx_activity_logs_created_at ON activity_logs(created_at DESC);
`
