package statement

import (
	"sort"

	"leadhub/domain/statement"

	"github.com/montanaflynn/stats"
)

// Analyzer rolls parsed documents up into the verification report:
// monthly revenue and trend, repeated vendor charges, balance averages
// and negative-day counts.
type Analyzer struct{}

// NewAnalyzer creates an analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze computes the aggregate views across all documents. Months are
// reported in calendar order regardless of upload order.
func (a *Analyzer) Analyze(docs []statement.Document) ([]statement.MonthlyFigures, []statement.RepeatedCharge) {
	type monthAccum struct {
		revenue  float64
		balances []float64
		negative int
	}
	months := make(map[string]*monthAccum)
	accum := func(month string) *monthAccum {
		m, ok := months[month]
		if !ok {
			m = &monthAccum{}
			months[month] = m
		}
		return m
	}

	repeatedByKey := make(map[string]*statement.RepeatedCharge)

	for _, doc := range docs {
		for _, txn := range doc.Transactions {
			m := accum(txn.Month())
			switch txn.Type {
			case statement.Credit:
				m.revenue += txn.Amount
			case statement.Debit:
				charge := statement.RepeatedCharge{
					Month:  txn.Month(),
					Vendor: txn.NormalizedDesc,
					Amount: -txn.Amount,
				}
				key := charge.Key()
				if existing, ok := repeatedByKey[key]; ok {
					existing.Count++
					existing.Total += charge.Amount
				} else {
					charge.Count = 1
					charge.Total = charge.Amount
					repeatedByKey[key] = &charge
				}
			}
		}
		for _, bal := range doc.Balances {
			m := accum(bal.Month())
			m.balances = append(m.balances, bal.Balance)
			if bal.Balance < 0 {
				m.negative++
			}
		}
	}

	repeated := collectRepeated(repeatedByKey)
	repeatedTotals := make(map[string]float64)
	for _, r := range repeated {
		repeatedTotals[r.Month] += r.Total
	}

	keys := make([]string, 0, len(months))
	for month := range months {
		keys = append(keys, month)
	}
	sort.Strings(keys)

	figures := make([]statement.MonthlyFigures, 0, len(keys))
	var prevRevenue float64
	for i, month := range keys {
		m := months[month]
		fig := statement.MonthlyFigures{
			Month:         month,
			Revenue:       m.revenue,
			BalanceDays:   len(m.balances),
			NegativeDays:  m.negative,
			RepeatedTotal: repeatedTotals[month],
		}
		if len(m.balances) > 0 {
			// stats.Mean only errors on empty input.
			fig.AvgDailyBalance, _ = stats.Mean(m.balances)
		}
		if m.revenue > 0 {
			fig.RepeatedPctOfRevenue = fig.RepeatedTotal / m.revenue * 100
		}
		if i > 0 && prevRevenue != 0 {
			trend := (m.revenue - prevRevenue) / prevRevenue * 100
			fig.RevenueTrendPct = &trend
		}
		prevRevenue = m.revenue
		figures = append(figures, fig)
	}

	return figures, repeated
}

// collectRepeated keeps only groups seen more than once, ordered by
// month then descending total.
func collectRepeated(byKey map[string]*statement.RepeatedCharge) []statement.RepeatedCharge {
	var out []statement.RepeatedCharge
	for _, charge := range byKey {
		if charge.Count > 1 {
			out = append(out, *charge)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Total > out[j].Total
	})
	return out
}
