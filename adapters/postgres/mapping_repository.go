package postgres

import (
	"context"
	"database/sql"

	"leadhub/domain/lead"
	"leadhub/domain/schema"
	"leadhub/ports"

	"github.com/jmoiron/sqlx"
)

// MappingRepositoryImpl implements the mapping-frequency log for
// PostgreSQL. Each confirmation is an UPSERT increment keyed on
// (header_key, field).
type MappingRepositoryImpl struct {
	db *sqlx.DB
}

// NewMappingRepository creates a new PostgreSQL mapping repository.
func NewMappingRepository(db *sqlx.DB) ports.MappingRepository {
	return &MappingRepositoryImpl{db: db}
}

// RecordMapping appends one confirmation.
func (r *MappingRepositoryImpl) RecordMapping(ctx context.Context, headerKey string, field schema.Field) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO confirmed_mappings (header_key, field, count, last_seen)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (header_key, field)
		DO UPDATE SET count = confirmed_mappings.count + 1, last_seen = NOW()
	`, headerKey, field)
	return err
}

// Suggest returns the most frequently confirmed field for the key.
func (r *MappingRepositoryImpl) Suggest(ctx context.Context, headerKey string) (*lead.ConfirmedMapping, bool, error) {
	var mapping lead.ConfirmedMapping
	err := r.db.GetContext(ctx, &mapping, `
		SELECT header_key, field, count, last_seen
		FROM confirmed_mappings
		WHERE header_key = $1
		ORDER BY count DESC, last_seen DESC
		LIMIT 1
	`, headerKey)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &mapping, true, nil
}
