package pdftext

import (
	"bytes"
	"context"
	"fmt"

	"leadhub/internal/errors"
	"leadhub/ports"

	"github.com/dslipak/pdf"
)

// Extractor pulls the text layer out of a PDF using a pure-Go reader.
// Scanned statements with no text layer come back empty; the caller
// decides what that means.
type Extractor struct{}

// NewExtractor creates a PDF text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

var _ ports.TextExtractor = (*Extractor)(nil)

// ExtractText reads the whole document's plain text. A malformed PDF can
// panic inside the reader, so the call is recovered into an error.
func (e *Extractor) ExtractText(ctx context.Context, path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.ParseFailed(path, fmt.Errorf("malformed PDF: %v", r))
		}
	}()

	r, err := pdf.Open(path)
	if err != nil {
		return "", errors.ParseFailed(path, err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", errors.ParseFailed(path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", errors.ParseFailed(path, err)
	}
	return buf.String(), nil
}
