package ports

import "context"

// TextExtractor pulls the text layer out of a PDF statement. An empty
// result with a nil error means the document has no text layer (scanned
// image); callers surface that as a per-file warning, not a failure.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}
