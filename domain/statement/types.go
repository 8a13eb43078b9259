package statement

import (
	"fmt"
	"time"
)

// EntryType splits transactions by sign: deposits are credits, charges
// are debits.
type EntryType string

const (
	Credit EntryType = "credit"
	Debit  EntryType = "debit"
)

// Transaction is one parsed statement line.
type Transaction struct {
	Date           time.Time `json:"date"`
	RawDate        string    `json:"raw_date"`
	Description    string    `json:"description"`
	NormalizedDesc string    `json:"normalized_desc"`
	Amount         float64   `json:"amount"`
	Type           EntryType `json:"type"`
	SourceFile     string    `json:"source_file"`
}

// Month returns the transaction's month key, e.g. "2024-03".
func (t Transaction) Month() string {
	return t.Date.Format("2006-01")
}

// DayBalance is one parsed daily-balance line. Balance keeps its sign so
// negative days can be counted.
type DayBalance struct {
	Date       time.Time `json:"date"`
	RawDate    string    `json:"raw_date"`
	Balance    float64   `json:"balance"`
	SourceFile string    `json:"source_file"`
}

// Month returns the balance entry's month key.
func (b DayBalance) Month() string {
	return b.Date.Format("2006-01")
}

// Document is one uploaded statement after extraction and parsing.
type Document struct {
	Filename     string        `json:"filename"`
	Text         string        `json:"-"`
	Year         int           `json:"year"`
	Transactions []Transaction `json:"transactions"`
	Balances     []DayBalance  `json:"balances"`
	NegativeDays int           `json:"negative_days"`
	Warnings     []string      `json:"warnings,omitempty"`
}

// MonthlyFigures aggregates one calendar month across all documents.
type MonthlyFigures struct {
	Month                string   `json:"month"`
	Revenue              float64  `json:"revenue"`
	RevenueTrendPct      *float64 `json:"revenue_trend_pct,omitempty"`
	AvgDailyBalance      float64  `json:"avg_daily_balance"`
	BalanceDays          int      `json:"balance_days"`
	NegativeDays         int      `json:"negative_days"`
	RepeatedTotal        float64  `json:"repeated_total"`
	RepeatedPctOfRevenue float64  `json:"repeated_pct_of_revenue"`
}

// TrendLabel renders the month-over-month change, or a dash for the
// first month.
func (m MonthlyFigures) TrendLabel() string {
	if m.RevenueTrendPct == nil {
		return "—"
	}
	return fmt.Sprintf("%+.1f%%", *m.RevenueTrendPct)
}

// RepeatedCharge is a debit that recurs within a month: same normalized
// vendor text, same amount, seen more than once.
type RepeatedCharge struct {
	Month  string  `json:"month"`
	Vendor string  `json:"vendor"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
}

// Key returns the grouping key used while accumulating.
func (r RepeatedCharge) Key() string {
	return fmt.Sprintf("%s|%s|%.2f", r.Month, r.Vendor, r.Amount)
}

// SimilarityPair scores how alike two documents read, 0 to 1.
type SimilarityPair struct {
	FileA string  `json:"file_a"`
	FileB string  `json:"file_b"`
	Score float64 `json:"score"`
}

// Report is the verifier output for one upload batch.
type Report struct {
	Documents    []Document       `json:"documents"`
	Transactions []Transaction    `json:"transactions"`
	Monthly      []MonthlyFigures `json:"monthly"`
	Repeated     []RepeatedCharge `json:"repeated"`
	Similarity   []SimilarityPair `json:"similarity,omitempty"`
	Warnings     []string         `json:"warnings,omitempty"`
	Brief        string           `json:"brief"`
	GeneratedAt  time.Time        `json:"generated_at"`
}

// TotalRevenue sums credit volume across the report's months.
func (r *Report) TotalRevenue() float64 {
	total := 0.0
	for _, m := range r.Monthly {
		total += m.Revenue
	}
	return total
}

// TotalNegativeDays sums negative-balance days across months.
func (r *Report) TotalNegativeDays() int {
	total := 0
	for _, m := range r.Monthly {
		total += m.NegativeDays
	}
	return total
}
