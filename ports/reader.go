package ports

import (
	"context"
	"io"

	"leadhub/domain/lead"
)

// TableReader parses an uploaded lead file into a source table.
// Implementations decide format support by file extension.
type TableReader interface {
	// ReadTable loads the whole file into memory. name is the original
	// filename, used for format detection and error messages.
	ReadTable(ctx context.Context, r io.Reader, name string) (*lead.SourceTable, error)

	// Supports reports whether the reader can handle the given filename.
	Supports(name string) bool
}

// TableWriter emits a cleaned table as CSV.
type TableWriter interface {
	WriteTable(ctx context.Context, w io.Writer, table *lead.CleanedTable) error
}
