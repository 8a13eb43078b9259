package tabular

import (
	"context"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"leadhub/domain/lead"
	"leadhub/internal/errors"
	"leadhub/ports"
)

// Writer emits cleaned tables as UTF-8 CSV.
type Writer struct{}

// NewWriter creates a tabular writer.
func NewWriter() *Writer {
	return &Writer{}
}

var _ ports.TableWriter = (*Writer)(nil)

// WriteTable writes headers then rows in order.
func (w *Writer) WriteTable(ctx context.Context, dst io.Writer, table *lead.CleanedTable) error {
	cw := csv.NewWriter(dst)
	if err := cw.Write(table.Headers); err != nil {
		return errors.StorageError("failed to write CSV header", err)
	}
	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return errors.StorageError("failed to write CSV row", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.StorageError("failed to flush CSV output", err)
	}
	return nil
}

// CleanedName returns the download filename for an uploaded file:
// "<basename>_cleaned.csv".
func CleanedName(original string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	return base + "_cleaned.csv"
}
