package intake

import (
	"context"
	"io"
	"time"

	"leadhub/adapters/tabular"
	"leadhub/domain/lead"
	"leadhub/domain/schema"
	"leadhub/internal"
	"leadhub/internal/classify"
	"leadhub/internal/cleanse"
	"leadhub/internal/errors"
	"leadhub/ports"

	"github.com/google/uuid"
)

// Processor orchestrates one upload-clean-download cycle:
// store the upload, read it, classify columns, clean, write the CSV,
// record the run. Cell-level problems degrade to empty strings inside
// the cleaner; only I/O and parse failures surface as errors.
type Processor struct {
	reader     ports.TableReader
	writer     ports.TableWriter
	classifier *classify.Classifier
	cleaner    *cleanse.Cleaner
	runs       ports.RunRepository
	mappings   ports.MappingRepository
	uploads    *FileStorage
	cleaned    *FileStorage
	logger     *internal.Logger
}

// Result is everything the preview page and the API response need.
type Result struct {
	Run     *lead.Run
	Mapping *lead.ColumnMapping
	Summary lead.CleanSummary
	Table   *lead.CleanedTable
}

// NewProcessor wires the pipeline.
func NewProcessor(
	reader ports.TableReader,
	writer ports.TableWriter,
	classifier *classify.Classifier,
	cleaner *cleanse.Cleaner,
	runs ports.RunRepository,
	mappings ports.MappingRepository,
	uploads, cleaned *FileStorage,
) *Processor {
	return &Processor{
		reader:     reader,
		writer:     writer,
		classifier: classifier,
		cleaner:    cleaner,
		runs:       runs,
		mappings:   mappings,
		uploads:    uploads,
		cleaned:    cleaned,
		logger:     internal.NewLogger("Intake"),
	}
}

// Process runs the full cycle for one uploaded file.
func (p *Processor) Process(ctx context.Context, src io.Reader, filename string) (*Result, error) {
	if !p.reader.Supports(filename) {
		return nil, errors.InvalidInput("unsupported file type, expected .csv or .xlsx")
	}

	storedPath, err := p.uploads.Store(ctx, src, filename)
	if err != nil {
		return nil, err
	}

	run := &lead.Run{
		ID:           uuid.New(),
		OriginalName: filename,
		StoredPath:   storedPath,
		Status:       lead.RunStatusProcessing,
		CreatedAt:    time.Now(),
	}
	if err := p.runs.CreateRun(ctx, run); err != nil {
		return nil, errors.Wrap(err, "failed to record run")
	}

	result, err := p.process(ctx, run)
	if err != nil {
		if failErr := p.runs.FailRun(ctx, run.ID, err.Error()); failErr != nil {
			p.logger.Error("Failed to mark run %s failed: %v", run.ID, failErr)
		}
		return nil, err
	}
	return result, nil
}

func (p *Processor) process(ctx context.Context, run *lead.Run) (*Result, error) {
	f, err := p.uploads.Open(ctx, run.StoredPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := p.reader.ReadTable(ctx, f, run.OriginalName)
	if err != nil {
		return nil, err
	}
	p.logger.Info("Read %s: %d rows, %d columns", run.OriginalName, table.RowCount(), table.ColumnCount())

	mapping := p.classifier.Classify(table)
	p.annotateSuggestions(ctx, mapping)
	p.logger.Info("Classified %d/%d columns", mapping.MatchedCount(), table.ColumnCount())

	cleanedTable, summary := p.cleaner.Clean(table, mapping)

	cleanedName := tabular.CleanedName(run.OriginalName)
	cleanedPath, err := p.writeCleaned(ctx, cleanedTable, cleanedName)
	if err != nil {
		return nil, err
	}

	if err := p.runs.CompleteRun(ctx, run.ID, cleanedPath, cleanedName, summary); err != nil {
		return nil, errors.Wrap(err, "failed to complete run")
	}

	run.CleanedPath = cleanedPath
	run.CleanedName = cleanedName
	run.RowCount = summary.SourceRows
	run.ColumnCount = summary.SourceColumns
	run.MatchedColumns = summary.MatchedColumns
	run.ExtraColumns = summary.ExtraColumns
	run.Status = lead.RunStatusComplete

	return &Result{Run: run, Mapping: mapping, Summary: summary, Table: cleanedTable}, nil
}

// annotateSuggestions attaches the mapping-frequency log's best guess to
// each unmatched column. Suggestions never auto-apply; a human confirms.
func (p *Processor) annotateSuggestions(ctx context.Context, mapping *lead.ColumnMapping) {
	if p.mappings == nil {
		return
	}
	for i := range mapping.Assignments {
		a := &mapping.Assignments[i]
		if a.Field != schema.None {
			continue
		}
		confirmed, ok, err := p.mappings.Suggest(ctx, classify.LookupKey(a.Header))
		if err != nil {
			p.logger.Warn("Suggestion lookup failed for %q: %v", a.Header, err)
			continue
		}
		if ok {
			a.Suggestion = confirmed.Field
			a.SuggestionCount = confirmed.Count
		}
	}
}

func (p *Processor) writeCleaned(ctx context.Context, table *lead.CleanedTable, name string) (string, error) {
	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(p.writer.WriteTable(ctx, pw, table))
	}()
	return p.cleaned.Store(ctx, pr, name)
}

// ConfirmMappings records user-confirmed header-field pairs in the
// frequency log. Failures are logged, not returned: losing a log line
// costs a future suggestion, nothing more.
func (p *Processor) ConfirmMappings(ctx context.Context, confirmed map[string]schema.Field) {
	if p.mappings == nil {
		return
	}
	for header, field := range confirmed {
		if field == schema.None {
			continue
		}
		if err := p.mappings.RecordMapping(ctx, classify.LookupKey(header), field); err != nil {
			p.logger.Warn("Failed to record mapping %q -> %s: %v", header, field, err)
		}
	}
}

// GetRun loads a run record.
func (p *Processor) GetRun(ctx context.Context, id uuid.UUID) (*lead.Run, error) {
	return p.runs.GetRun(ctx, id)
}

// OpenCleaned streams the cleaned CSV of a completed run.
func (p *Processor) OpenCleaned(ctx context.Context, id uuid.UUID) (io.ReadCloser, *lead.Run, error) {
	run, err := p.runs.GetRun(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if run == nil || run.Status != lead.RunStatusComplete {
		return nil, nil, errors.NotFound("cleaned file")
	}
	f, err := p.cleaned.Open(ctx, run.CleanedPath)
	if err != nil {
		return nil, nil, err
	}
	return f, run, nil
}

// Suggest exposes the frequency log's best guess for one header.
func (p *Processor) Suggest(ctx context.Context, header string) (*lead.ConfirmedMapping, bool, error) {
	if p.mappings == nil {
		return nil, false, nil
	}
	return p.mappings.Suggest(ctx, classify.LookupKey(header))
}
