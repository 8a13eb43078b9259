package statement

import (
	"fmt"
	"strings"

	"leadhub/domain/statement"
)

// WriteBrief renders the report as a markdown summary for the report
// page and the CLI.
func WriteBrief(report *statement.Report) string {
	var b strings.Builder

	b.WriteString("# Statement Verification Brief\n\n")
	fmt.Fprintf(&b, "Documents analyzed: %d. Transactions extracted: %d.\n\n",
		len(report.Documents), len(report.Transactions))

	if len(report.Monthly) > 0 {
		b.WriteString("## Monthly Revenue\n\n")
		b.WriteString("| Month | Revenue | Trend | Avg Daily Balance | Negative Days |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, m := range report.Monthly {
			trend := "n/a"
			if m.RevenueTrendPct != nil {
				trend = fmt.Sprintf("%+.1f%%", *m.RevenueTrendPct)
			}
			fmt.Fprintf(&b, "| %s | $%.2f | %s | $%.2f | %d |\n",
				m.Month, m.Revenue, trend, m.AvgDailyBalance, m.NegativeDays)
		}
		b.WriteString("\n")
	}

	if len(report.Repeated) > 0 {
		b.WriteString("## Repeated Charges\n\n")
		for _, r := range report.Repeated {
			fmt.Fprintf(&b, "- %s: %q x%d at $%.2f ($%.2f total)\n",
				r.Month, r.Vendor, r.Count, r.Amount, r.Total)
		}
		b.WriteString("\n")
	}

	if report.TotalNegativeDays() > 0 {
		fmt.Fprintf(&b, "**%d negative-balance day(s) across the period.**\n\n",
			report.TotalNegativeDays())
	}

	if len(report.Similarity) > 0 {
		b.WriteString("## Document Similarity\n\n")
		for _, pair := range report.Similarity {
			fmt.Fprintf(&b, "- %s vs %s: %.2f\n", pair.FileA, pair.FileB, pair.Score)
		}
		b.WriteString("\n")
	}

	for _, warning := range report.Warnings {
		fmt.Fprintf(&b, "> Warning: %s\n", warning)
	}

	return b.String()
}
