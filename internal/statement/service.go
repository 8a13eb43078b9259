package statement

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"leadhub/domain/statement"
	"leadhub/internal"
	"leadhub/internal/errors"
	"leadhub/ports"

	"golang.org/x/sync/errgroup"
)

// Service runs the full verification pipeline over one upload batch:
// extract text from each PDF, parse, aggregate, score similarity.
type Service struct {
	extractor ports.TextExtractor
	parser    *Parser
	analyzer  *Analyzer
	scorer    *Similarity
	logger    *internal.Logger
}

// NewService wires the pipeline.
func NewService(extractor ports.TextExtractor, parserConfig ParserConfig) *Service {
	return &Service{
		extractor: extractor,
		parser:    NewParser(parserConfig),
		analyzer:  NewAnalyzer(),
		scorer:    NewSimilarity(),
		logger:    internal.NewLogger("Verifier"),
	}
}

// Verify processes the statement files at the given paths. Files are
// extracted concurrently; a file that fails extraction becomes a report
// warning rather than failing the batch. At least one parseable document
// is required.
func (s *Service) Verify(ctx context.Context, paths []string) (*statement.Report, error) {
	if len(paths) == 0 {
		return nil, errors.InvalidInput("no statement files provided")
	}
	s.logger.Info("Verifying %d statement file(s)", len(paths))

	docs := make([]statement.Document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			text, err := s.extractor.ExtractText(gctx, path)
			name := filepath.Base(path)
			if err != nil {
				s.logger.Warn("Extraction failed for %s: %v", name, err)
				docs[i] = statement.Document{
					Filename: name,
					Warnings: []string{fmt.Sprintf("could not read %s: %v", name, err)},
				}
				return nil
			}
			docs[i] = s.parser.Parse(text, name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &statement.Report{
		Documents:   docs,
		GeneratedAt: time.Now(),
	}
	parsed := 0
	for _, doc := range docs {
		report.Transactions = append(report.Transactions, doc.Transactions...)
		report.Warnings = append(report.Warnings, doc.Warnings...)
		if len(doc.Transactions) > 0 || len(doc.Balances) > 0 {
			parsed++
		}
	}
	if parsed == 0 {
		return nil, errors.ParseFailed("statement batch",
			fmt.Errorf("none of the %d file(s) contained recognizable statement data", len(paths)))
	}

	sort.SliceStable(report.Transactions, func(i, j int) bool {
		return report.Transactions[i].Date.Before(report.Transactions[j].Date)
	})

	report.Monthly, report.Repeated = s.analyzer.Analyze(docs)
	report.Similarity = s.scorer.Pairwise(docs)
	report.Brief = WriteBrief(report)

	s.logger.Info("Report ready: %d transactions, %d month(s), %d repeated charge group(s)",
		len(report.Transactions), len(report.Monthly), len(report.Repeated))
	return report, nil
}
