package ports

import (
	"context"

	"leadhub/domain/lead"

	"github.com/google/uuid"
)

// RunRepository persists clean-run records so cleaned files stay
// downloadable after the preview page.
type RunRepository interface {
	CreateRun(ctx context.Context, run *lead.Run) error
	CompleteRun(ctx context.Context, id uuid.UUID, cleanedPath, cleanedName string, summary lead.CleanSummary) error
	FailRun(ctx context.Context, id uuid.UUID, message string) error
	GetRun(ctx context.Context, id uuid.UUID) (*lead.Run, error)
	ListRecentRuns(ctx context.Context, limit int) ([]*lead.Run, error)
}
