package tabular

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"leadhub/domain/lead"
	"leadhub/internal/errors"
	"leadhub/ports"
)

// Reader parses CSV and XLSX lead files into source tables. Format is
// chosen by file extension; both paths load the whole file into memory.
type Reader struct{}

// NewReader creates a tabular reader.
func NewReader() *Reader {
	return &Reader{}
}

var _ ports.TableReader = (*Reader)(nil)

// Supports reports whether name has a readable extension.
func (r *Reader) Supports(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".xlsx":
		return true
	}
	return false
}

// ReadTable parses the file. The first row is always treated as headers;
// data rows are padded or truncated to header width so downstream code
// never sees ragged rows.
func (r *Reader) ReadTable(ctx context.Context, src io.Reader, name string) (*lead.SourceTable, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		rows, err = readCSV(src)
	case ".xlsx":
		rows, err = readXLSX(src)
	default:
		return nil, errors.InvalidInput("unsupported file type, expected .csv or .xlsx")
	}
	if err != nil {
		return nil, errors.ParseFailed(name, err)
	}
	if len(rows) == 0 {
		return nil, errors.ParseFailed(name, errors.New(errors.CodeParseFailed, "file has no header row"))
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		data = append(data, squareRow(row, len(headers)))
	}

	return &lead.SourceTable{
		Name:    filepath.Base(name),
		Headers: headers,
		Rows:    data,
	}, nil
}

// squareRow pads or truncates a row to width cells.
func squareRow(row []string, width int) []string {
	out := make([]string, width)
	for i := 0; i < width && i < len(row); i++ {
		out[i] = strings.TrimSpace(row[i])
	}
	return out
}
