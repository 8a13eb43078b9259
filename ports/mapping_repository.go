package ports

import (
	"context"

	"leadhub/domain/lead"
	"leadhub/domain/schema"
)

// MappingRepository is the mapping-frequency log: user-confirmed
// header-to-field assignments, read back as suggestions for headers the
// alias table doesn't know yet. Append-only; entries are never revised.
type MappingRepository interface {
	// RecordMapping appends one confirmation for a normalized header key.
	RecordMapping(ctx context.Context, headerKey string, field schema.Field) error

	// Suggest returns the most frequently confirmed field for a header
	// key, or ok=false when the key has never been confirmed.
	Suggest(ctx context.Context, headerKey string) (*lead.ConfirmedMapping, bool, error)
}
