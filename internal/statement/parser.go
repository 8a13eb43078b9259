package statement

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"leadhub/domain/statement"
)

// Line-shape patterns, compiled once. Transaction lines carry a month-day
// date, a description of at least a few characters, and a trailing amount;
// balance lines are just a date and a signed amount.
var (
	txnLinePattern     = regexp.MustCompile(`\b([A-Za-z]{3} \d{2})\s+([A-Za-z0-9/.,&*()'#\- ]{5,}?)\s+(\$?-?[0-9,]+\.\d{2})\s*$`)
	balanceLinePattern = regexp.MustCompile(`^\s*([A-Za-z]{3} \d{2})\s+(-?\$?-?[0-9,]+\.\d{2})\s*$`)
	periodYearPattern  = regexp.MustCompile(`(?i)(?:statement\s+)?period[^\n]*?(20\d{2})`)
	anyYearPattern     = regexp.MustCompile(`\b(20\d{2})\b`)
	descScrubPattern   = regexp.MustCompile(`[^a-z0-9/ ]`)
	descSpacePattern   = regexp.MustCompile(`\s+`)
)

// ParserConfig controls year inference when the statement itself doesn't
// say.
type ParserConfig struct {
	DefaultYear int
}

// DefaultParserConfig assumes statements from the current year.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{DefaultYear: time.Now().Year()}
}

// Parser extracts transactions and daily balances from statement text.
// It is deliberately tolerant: lines that don't match either shape are
// skipped, never errors.
type Parser struct {
	config ParserConfig
}

// NewParser creates a statement parser.
func NewParser(config ParserConfig) *Parser {
	if config.DefaultYear == 0 {
		config.DefaultYear = time.Now().Year()
	}
	return &Parser{config: config}
}

// Parse scans the extracted text of one statement. filename is attached
// to every transaction for per-file reporting.
func (p *Parser) Parse(text, filename string) statement.Document {
	doc := statement.Document{
		Filename: filename,
		Text:     text,
		Year:     p.inferYear(text),
	}
	if strings.TrimSpace(text) == "" {
		doc.Warnings = append(doc.Warnings, "no text layer found; statement may be a scanned image")
		return doc
	}

	for _, line := range strings.Split(text, "\n") {
		if bal, ok := p.parseBalanceLine(line, doc.Year, filename); ok {
			doc.Balances = append(doc.Balances, bal)
			if bal.Balance < 0 {
				doc.NegativeDays++
			}
			continue
		}
		if txn, ok := p.parseTransactionLine(line, doc.Year, filename); ok {
			doc.Transactions = append(doc.Transactions, txn)
		}
	}

	if len(doc.Transactions) == 0 {
		doc.Warnings = append(doc.Warnings, "no transactions recognized")
	}
	return doc
}

func (p *Parser) parseTransactionLine(line string, year int, filename string) (statement.Transaction, bool) {
	m := txnLinePattern.FindStringSubmatch(line)
	if m == nil {
		return statement.Transaction{}, false
	}
	date, ok := parseMonthDay(m[1], year)
	if !ok {
		return statement.Transaction{}, false
	}
	amount, ok := parseAmount(m[3])
	if !ok {
		return statement.Transaction{}, false
	}

	entryType := statement.Debit
	if amount > 0 {
		entryType = statement.Credit
	}

	desc := strings.TrimSpace(m[2])
	return statement.Transaction{
		Date:           date,
		RawDate:        m[1],
		Description:    desc,
		NormalizedDesc: NormalizeDescription(desc),
		Amount:         amount,
		Type:           entryType,
		SourceFile:     filename,
	}, true
}

func (p *Parser) parseBalanceLine(line string, year int, filename string) (statement.DayBalance, bool) {
	m := balanceLinePattern.FindStringSubmatch(line)
	if m == nil {
		return statement.DayBalance{}, false
	}
	date, ok := parseMonthDay(m[1], year)
	if !ok {
		return statement.DayBalance{}, false
	}
	balance, ok := parseAmount(m[2])
	if !ok {
		return statement.DayBalance{}, false
	}
	return statement.DayBalance{
		Date:       date,
		RawDate:    m[1],
		Balance:    balance,
		SourceFile: filename,
	}, true
}

// inferYear looks for a year near a "statement period" label first, then
// anywhere in the text, then falls back to the configured default.
func (p *Parser) inferYear(text string) int {
	if m := periodYearPattern.FindStringSubmatch(text); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			return year
		}
	}
	if m := anyYearPattern.FindStringSubmatch(text); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			return year
		}
	}
	return p.config.DefaultYear
}

// parseMonthDay parses "Jan 02" against a known year.
func parseMonthDay(raw string, year int) (time.Time, bool) {
	t, err := time.Parse("Jan 02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

// parseAmount strips currency markers and thousands separators. The sign
// survives: credits stay positive, debits negative.
func parseAmount(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(raw, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	amount, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// NormalizeDescription reduces a vendor line to a grouping key:
// lowercase, alphanumerics and slashes only, single spaces.
func NormalizeDescription(desc string) string {
	lowered := strings.ToLower(desc)
	scrubbed := descScrubPattern.ReplaceAllString(lowered, " ")
	return strings.TrimSpace(descSpacePattern.ReplaceAllString(scrubbed, " "))
}
