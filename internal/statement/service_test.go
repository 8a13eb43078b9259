package statement

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExtractor returns canned text per path.
type mockExtractor struct {
	texts map[string]string
	errs  map[string]error
}

func (m *mockExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	if err := m.errs[path]; err != nil {
		return "", err
	}
	return m.texts[path], nil
}

func TestVerifyBatch(t *testing.T) {
	extractor := &mockExtractor{texts: map[string]string{
		"march.pdf": sampleStatement,
		"scan.pdf":  "",
	}}
	service := NewService(extractor, ParserConfig{DefaultYear: 2024})

	report, err := service.Verify(context.Background(), []string{"march.pdf", "scan.pdf"})
	require.NoError(t, err)

	assert.Len(t, report.Documents, 2)
	assert.Len(t, report.Transactions, 5)
	assert.NotEmpty(t, report.Monthly)
	require.Len(t, report.Similarity, 1)
	assert.NotEmpty(t, report.Brief)

	// The scanned file contributes a warning, not a failure.
	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], "no text layer")
}

func TestVerifyExtractionFailureBecomesWarning(t *testing.T) {
	extractor := &mockExtractor{
		texts: map[string]string{"good.pdf": sampleStatement},
		errs:  map[string]error{"bad.pdf": fmt.Errorf("xref table corrupt")},
	}
	service := NewService(extractor, ParserConfig{DefaultYear: 2024})

	report, err := service.Verify(context.Background(), []string{"good.pdf", "bad.pdf"})
	require.NoError(t, err)
	assert.Len(t, report.Transactions, 5)

	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "bad.pdf") {
			found = true
		}
	}
	assert.True(t, found, "expected a warning naming bad.pdf")
}

func TestVerifyAllUnparseable(t *testing.T) {
	extractor := &mockExtractor{texts: map[string]string{"a.pdf": "", "b.pdf": ""}}
	service := NewService(extractor, ParserConfig{DefaultYear: 2024})

	_, err := service.Verify(context.Background(), []string{"a.pdf", "b.pdf"})
	assert.Error(t, err)
}

func TestVerifyNoFiles(t *testing.T) {
	service := NewService(&mockExtractor{}, DefaultParserConfig())
	_, err := service.Verify(context.Background(), nil)
	assert.Error(t, err)
}
