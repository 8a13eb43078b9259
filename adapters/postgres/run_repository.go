package postgres

import (
	"context"
	"database/sql"
	"time"

	"leadhub/domain/lead"
	"leadhub/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// RunRepositoryImpl implements RunRepository for PostgreSQL.
type RunRepositoryImpl struct {
	db *sqlx.DB
}

// NewRunRepository creates a new PostgreSQL run repository.
func NewRunRepository(db *sqlx.DB) ports.RunRepository {
	return &RunRepositoryImpl{db: db}
}

// CreateRun inserts a new run in processing state.
func (r *RunRepositoryImpl) CreateRun(ctx context.Context, run *lead.Run) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clean_runs (id, original_name, stored_path, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, run.ID, run.OriginalName, run.StoredPath, run.Status, run.CreatedAt)
	return err
}

// CompleteRun records the cleaned artifact and the summary counts.
func (r *RunRepositoryImpl) CompleteRun(ctx context.Context, id uuid.UUID, cleanedPath, cleanedName string, summary lead.CleanSummary) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE clean_runs
		SET cleaned_path = $2, cleaned_name = $3, row_count = $4, column_count = $5,
		    matched_columns = $6, extra_columns = $7, status = $8, completed_at = $9
		WHERE id = $1
	`, id, cleanedPath, cleanedName, summary.SourceRows, summary.SourceColumns,
		summary.MatchedColumns, summary.ExtraColumns, lead.RunStatusComplete, time.Now())
	return err
}

// FailRun marks a run failed with its top-level error message.
func (r *RunRepositoryImpl) FailRun(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE clean_runs
		SET status = $2, error_message = $3, completed_at = $4
		WHERE id = $1
	`, id, lead.RunStatusFailed, message, time.Now())
	return err
}

// GetRun loads one run, or nil when it doesn't exist.
func (r *RunRepositoryImpl) GetRun(ctx context.Context, id uuid.UUID) (*lead.Run, error) {
	var run runRow
	err := r.db.GetContext(ctx, &run, `
		SELECT id, original_name, stored_path, cleaned_path, cleaned_name,
		       row_count, column_count, matched_columns, extra_columns,
		       status, error_message, created_at, completed_at
		FROM clean_runs
		WHERE id = $1
	`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return run.toDomain(), nil
}

// ListRecentRuns returns the newest runs first.
func (r *RunRepositoryImpl) ListRecentRuns(ctx context.Context, limit int) ([]*lead.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []runRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, original_name, stored_path, cleaned_path, cleaned_name,
		       row_count, column_count, matched_columns, extra_columns,
		       status, error_message, created_at, completed_at
		FROM clean_runs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}

	runs := make([]*lead.Run, len(rows))
	for i, row := range rows {
		runs[i] = row.toDomain()
	}
	return runs, nil
}

// runRow maps nullable columns; a processing run has no cleaned artifact
// yet.
type runRow struct {
	ID             uuid.UUID      `db:"id"`
	OriginalName   string         `db:"original_name"`
	StoredPath     string         `db:"stored_path"`
	CleanedPath    sql.NullString `db:"cleaned_path"`
	CleanedName    sql.NullString `db:"cleaned_name"`
	RowCount       sql.NullInt64  `db:"row_count"`
	ColumnCount    sql.NullInt64  `db:"column_count"`
	MatchedColumns sql.NullInt64  `db:"matched_columns"`
	ExtraColumns   sql.NullInt64  `db:"extra_columns"`
	Status         string         `db:"status"`
	ErrorMessage   sql.NullString `db:"error_message"`
	CreatedAt      time.Time      `db:"created_at"`
	CompletedAt    *time.Time     `db:"completed_at"`
}

func (r runRow) toDomain() *lead.Run {
	return &lead.Run{
		ID:             r.ID,
		OriginalName:   r.OriginalName,
		StoredPath:     r.StoredPath,
		CleanedPath:    r.CleanedPath.String,
		CleanedName:    r.CleanedName.String,
		RowCount:       int(r.RowCount.Int64),
		ColumnCount:    int(r.ColumnCount.Int64),
		MatchedColumns: int(r.MatchedColumns.Int64),
		ExtraColumns:   int(r.ExtraColumns.Int64),
		Status:         lead.RunStatus(r.Status),
		ErrorMessage:   r.ErrorMessage.String,
		CreatedAt:      r.CreatedAt,
		CompletedAt:    r.CompletedAt,
	}
}
