package jsonl

import (
	"context"
	"sort"
	"sync"

	"leadhub/domain/lead"
	"leadhub/ports"

	"github.com/google/uuid"
)

// MemoryRunRepository keeps run records in process memory, for DB-less
// operation. Downloads work for the life of the process, which is the
// same guarantee the original tools gave.
type MemoryRunRepository struct {
	mu   sync.RWMutex
	runs map[uuid.UUID]lead.Run
}

// NewMemoryRunRepository creates an empty in-memory run store.
func NewMemoryRunRepository() *MemoryRunRepository {
	return &MemoryRunRepository{runs: make(map[uuid.UUID]lead.Run)}
}

var _ ports.RunRepository = (*MemoryRunRepository)(nil)

func (r *MemoryRunRepository) CreateRun(ctx context.Context, run *lead.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[run.ID] = *run
	return nil
}

func (r *MemoryRunRepository) CompleteRun(ctx context.Context, id uuid.UUID, cleanedPath, cleanedName string, summary lead.CleanSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	run := r.runs[id]
	run.CleanedPath = cleanedPath
	run.CleanedName = cleanedName
	run.RowCount = summary.SourceRows
	run.ColumnCount = summary.SourceColumns
	run.MatchedColumns = summary.MatchedColumns
	run.ExtraColumns = summary.ExtraColumns
	run.Status = lead.RunStatusComplete
	r.runs[id] = run
	return nil
}

func (r *MemoryRunRepository) FailRun(ctx context.Context, id uuid.UUID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	run := r.runs[id]
	run.Status = lead.RunStatusFailed
	run.ErrorMessage = message
	r.runs[id] = run
	return nil
}

func (r *MemoryRunRepository) GetRun(ctx context.Context, id uuid.UUID) (*lead.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.runs[id]
	if !ok {
		return nil, nil
	}
	return &run, nil
}

func (r *MemoryRunRepository) ListRecentRuns(ctx context.Context, limit int) ([]*lead.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	runs := make([]*lead.Run, 0, len(r.runs))
	for id := range r.runs {
		run := r.runs[id]
		runs = append(runs, &run)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}
