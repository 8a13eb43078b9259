package statement

import (
	"testing"

	"leadhub/domain/statement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStatement = `FIRST COMMERCE BANK
Business Checking
Statement Period: Mar 01 2024 - Mar 31 2024

Transactions
Mar 03  DEPOSIT CARD SETTLEMENT 8831        2,450.00
Mar 05  ACH PAYMENT WEBHOST LLC             -19.99
Mar 12  DEPOSIT CARD SETTLEMENT 8831        1,980.50
Mar 19  ACH PAYMENT WEBHOST LLC             -19.99
Mar 27  CHECK 1044 SUPPLIER CO              -540.00

Daily Balances
Mar 03  2,430.01
Mar 12  4,390.52
Mar 19  -120.00
Mar 27  3,830.53
`

func TestParseSampleStatement(t *testing.T) {
	parser := NewParser(ParserConfig{DefaultYear: 2020})
	doc := parser.Parse(sampleStatement, "march.pdf")

	assert.Equal(t, 2024, doc.Year, "year should come from the statement period line")
	require.Len(t, doc.Transactions, 5)
	require.Len(t, doc.Balances, 4)
	assert.Equal(t, 1, doc.NegativeDays)

	first := doc.Transactions[0]
	assert.Equal(t, "Mar 03", first.RawDate)
	assert.Equal(t, 2024, first.Date.Year())
	assert.Equal(t, statement.Credit, first.Type)
	assert.InDelta(t, 2450.00, first.Amount, 0.001)
	assert.Equal(t, "deposit card settlement 8831", first.NormalizedDesc)

	debit := doc.Transactions[1]
	assert.Equal(t, statement.Debit, debit.Type)
	assert.InDelta(t, -19.99, debit.Amount, 0.001)

	assert.InDelta(t, -120.00, doc.Balances[2].Balance, 0.001)
}

func TestParseEmptyText(t *testing.T) {
	parser := NewParser(DefaultParserConfig())
	doc := parser.Parse("   ", "scan.pdf")

	assert.Empty(t, doc.Transactions)
	require.Len(t, doc.Warnings, 1)
	assert.Contains(t, doc.Warnings[0], "no text layer")
}

func TestParseSkipsNoise(t *testing.T) {
	parser := NewParser(ParserConfig{DefaultYear: 2024})
	doc := parser.Parse("Member FDIC\nPage 2 of 9\nQuestions? Call 800-555-0000\n", "noise.pdf")

	assert.Empty(t, doc.Transactions)
	assert.Empty(t, doc.Balances)
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"$1,234.56", 1234.56, true},
		{"-19.99", -19.99, true},
		{"-$540.00", -540.00, true},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseAmount(tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		if tc.ok {
			assert.InDelta(t, tc.want, got, 0.001, tc.raw)
		}
	}
}

func TestNormalizeDescription(t *testing.T) {
	assert.Equal(t, "ach payment webhost llc",
		NormalizeDescription("ACH  PAYMENT *WEBHOST, LLC."))
}
