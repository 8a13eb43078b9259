package lead

import (
	"time"

	"leadhub/domain/schema"

	"github.com/google/uuid"
)

// SourceTable is one uploaded lead file loaded wholesale into memory.
// Headers are arbitrary free text; rows are padded to header width.
type SourceTable struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// RowCount returns the number of data rows.
func (t *SourceTable) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of header columns.
func (t *SourceTable) ColumnCount() int {
	return len(t.Headers)
}

// Column returns all values of column i in row order. Out-of-range cells
// read as empty strings.
func (t *SourceTable) Column(i int) []string {
	values := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		if i < len(row) {
			values[r] = row[i]
		}
	}
	return values
}

// MatchKind records how a source column was bound to a target field.
type MatchKind string

const (
	MatchAlias   MatchKind = "alias"
	MatchPattern MatchKind = "pattern"
	MatchNone    MatchKind = "none"
)

// Candidate is one scored (field, column, confidence) proposal from the
// classifier. All candidates are kept so tie-breaks stay auditable.
type Candidate struct {
	Column     int          `json:"column"`
	Header     string       `json:"header"`
	Field      schema.Field `json:"field"`
	Confidence float64      `json:"confidence"`
	Kind       MatchKind    `json:"kind"`
}

// ColumnAssignment is the resolved binding for one source column.
// Field is schema.None when the column stays an extra.
type ColumnAssignment struct {
	Column          int          `json:"column"`
	Header          string       `json:"header"`
	Field           schema.Field `json:"field"`
	Kind            MatchKind    `json:"kind"`
	Confidence      float64      `json:"confidence"`
	Suggestion      schema.Field `json:"suggestion,omitempty"`
	SuggestionCount int          `json:"suggestion_count,omitempty"`
}

// ColumnMapping is the full classification result for a source table.
type ColumnMapping struct {
	Assignments []ColumnAssignment `json:"assignments"`
	Candidates  []Candidate        `json:"candidates"`
}

// ColumnsFor returns the source column indexes assigned to field f,
// in source order.
func (m *ColumnMapping) ColumnsFor(f schema.Field) []int {
	var cols []int
	for _, a := range m.Assignments {
		if a.Field == f {
			cols = append(cols, a.Column)
		}
	}
	return cols
}

// Extras returns the unmatched source column indexes, in source order.
func (m *ColumnMapping) Extras() []int {
	var cols []int
	for _, a := range m.Assignments {
		if a.Field == schema.None {
			cols = append(cols, a.Column)
		}
	}
	return cols
}

// MatchedCount returns how many source columns were bound to a field.
func (m *ColumnMapping) MatchedCount() int {
	count := 0
	for _, a := range m.Assignments {
		if a.Field != schema.None {
			count++
		}
	}
	return count
}

// CleanedTable is the reshaped output: target schema columns first, then
// unmatched source columns in their original order.
type CleanedTable struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// CleanSummary is what the preview page and API response report about a run.
type CleanSummary struct {
	SourceRows     int `json:"source_rows"`
	SourceColumns  int `json:"source_columns"`
	MatchedColumns int `json:"matched_columns"`
	ExtraColumns   int `json:"extra_columns"`
	OutputColumns  int `json:"output_columns"`
}

// RunStatus tracks a clean run through its one-shot lifecycle.
type RunStatus string

const (
	RunStatusProcessing RunStatus = "processing"
	RunStatusComplete   RunStatus = "complete"
	RunStatusFailed     RunStatus = "failed"
)

// Run is the persisted record of one upload-clean-download cycle.
type Run struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	OriginalName   string     `json:"original_name" db:"original_name"`
	StoredPath     string     `json:"-" db:"stored_path"`
	CleanedPath    string     `json:"-" db:"cleaned_path"`
	CleanedName    string     `json:"cleaned_name" db:"cleaned_name"`
	RowCount       int        `json:"row_count" db:"row_count"`
	ColumnCount    int        `json:"column_count" db:"column_count"`
	MatchedColumns int        `json:"matched_columns" db:"matched_columns"`
	ExtraColumns   int        `json:"extra_columns" db:"extra_columns"`
	Status         RunStatus  `json:"status" db:"status"`
	ErrorMessage   string     `json:"error_message,omitempty" db:"error_message"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// ConfirmedMapping is one entry of the mapping-frequency log: a user
// confirmed that a normalized header belongs to a target field.
type ConfirmedMapping struct {
	HeaderKey string       `json:"header_key" db:"header_key"`
	Field     schema.Field `json:"field" db:"field"`
	Count     int          `json:"count" db:"count"`
	LastSeen  time.Time    `json:"last_seen" db:"last_seen"`
}
