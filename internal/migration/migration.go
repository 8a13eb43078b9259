package migration

import (
	"context"
	"log"

	"leadhub/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations.
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations.
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner.
func NewRunner() *MigrationRunner {
	return &MigrationRunner{version: "1.0.0"}
}

// Version returns the migration version.
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order.
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createCleanRunsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create clean_runs table")
	}
	if err := r.createConfirmedMappingsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create confirmed_mappings table")
	}
	if err := r.createSessionsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create sessions table")
	}
	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}
	return nil
}

func (r *MigrationRunner) createCleanRunsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS clean_runs (
			id UUID PRIMARY KEY,
			original_name VARCHAR(512) NOT NULL,
			stored_path TEXT NOT NULL,
			cleaned_path TEXT,
			cleaned_name VARCHAR(512),
			row_count INTEGER,
			column_count INTEGER,
			matched_columns INTEGER,
			extra_columns INTEGER,
			status VARCHAR(20) NOT NULL DEFAULT 'processing',
			error_message TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			completed_at TIMESTAMP WITH TIME ZONE
		)
	`)
	return err
}

func (r *MigrationRunner) createConfirmedMappingsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS confirmed_mappings (
			header_key VARCHAR(255) NOT NULL,
			field VARCHAR(100) NOT NULL,
			count INTEGER NOT NULL DEFAULT 1,
			last_seen TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			PRIMARY KEY (header_key, field)
		)
	`)
	return err
}

func (r *MigrationRunner) createSessionsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sessions (
			token VARCHAR(64) PRIMARY KEY,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			expires_at TIMESTAMP WITH TIME ZONE NOT NULL
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_clean_runs_created_at ON clean_runs(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_clean_runs_status ON clean_runs(status)",
		"CREATE INDEX IF NOT EXISTS idx_confirmed_mappings_key ON confirmed_mappings(header_key)",
		"CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at)",
	}
	for _, idxSQL := range indexes {
		if _, err := db.ExecContext(ctx, idxSQL); err != nil {
			// Index creation is best effort; the tables still work.
			log.Printf("[Migration] Warning: failed to create index: %v", err)
		}
	}
	return nil
}
