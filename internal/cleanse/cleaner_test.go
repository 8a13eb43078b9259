package cleanse

import (
	"testing"

	"leadhub/domain/lead"
	"leadhub/domain/schema"
	"leadhub/internal/classify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanTable(t *testing.T, headers []string, rows [][]string) (*lead.CleanedTable, lead.CleanSummary) {
	t.Helper()
	table := &lead.SourceTable{Name: "leads.csv", Headers: headers, Rows: rows}
	mapping := classify.New(classify.DefaultConfig()).Classify(table)
	return New(DefaultConfig()).Clean(table, mapping)
}

func fieldIndex(t *testing.T, cleaned *lead.CleanedTable, field schema.Field) int {
	t.Helper()
	for i, h := range cleaned.Headers {
		if h == string(field) {
			return i
		}
	}
	t.Fatalf("field %q not in output headers", field)
	return -1
}

func TestCleanEndToEndThreeRows(t *testing.T) {
	cleaned, summary := cleanTable(t,
		[]string{"firstname", "lastname", "cellphone", "companyname"},
		[][]string{
			{"Jane", "Doe", "5551234567", "Acme LLC"},
			{"John", "Smith", "555-987-6543", "Smith & Sons"},
			{"Ana", "Cruz", "bad number", "Cruz Bakery"},
		},
	)

	targetHeaders := schema.DefaultTargetSchema().Headers()
	require.Equal(t, targetHeaders, cleaned.Headers, "no extras expected")
	require.Len(t, cleaned.Rows, 3)

	row := cleaned.Rows[0]
	assert.Equal(t, "Jane Doe", row[fieldIndex(t, cleaned, schema.FieldFullName)])
	assert.Equal(t, "(555) 123-4567", row[fieldIndex(t, cleaned, schema.FieldPhone1)])
	assert.Equal(t, "Acme LLC", row[fieldIndex(t, cleaned, schema.FieldBusinessName)])

	// Every other target field is empty string, present nonetheless.
	for i, h := range cleaned.Headers {
		switch schema.Field(h) {
		case schema.FieldFullName, schema.FieldPhone1, schema.FieldBusinessName:
		default:
			assert.Equal(t, "", row[i], "field %s", h)
		}
	}

	// Unparseable phone degrades to empty, never an error.
	assert.Equal(t, "", cleaned.Rows[2][fieldIndex(t, cleaned, schema.FieldPhone1)])
	// Ampersand survives, comma would not.
	assert.Equal(t, "Smith & Sons", cleaned.Rows[1][fieldIndex(t, cleaned, schema.FieldBusinessName)])

	assert.Equal(t, 3, summary.SourceRows)
	assert.Equal(t, 4, summary.SourceColumns)
	assert.Equal(t, 4, summary.MatchedColumns)
	assert.Equal(t, 0, summary.ExtraColumns)
	assert.Equal(t, len(targetHeaders), summary.OutputColumns)
}

func TestCleanSchemaAlwaysComplete(t *testing.T) {
	cleaned, _ := cleanTable(t,
		[]string{"unrelated", "junk"},
		[][]string{{"a", "b"}},
	)

	// Nothing matched, yet every target column is present, then the extras.
	expected := append(schema.DefaultTargetSchema().Headers(), "unrelated", "junk")
	assert.Equal(t, expected, cleaned.Headers)
	for _, h := range schema.DefaultTargetSchema().Headers() {
		assert.Equal(t, "", cleaned.Rows[0][fieldIndex(t, cleaned, schema.Field(h))])
	}
}

func TestCleanExtrasPreservedRaw(t *testing.T) {
	cleaned, summary := cleanTable(t,
		[]string{"company", "notes"},
		[][]string{{"Acme LLC", "called twice, still waiting"}},
	)

	idx := len(schema.DefaultTargetSchema().Headers())
	require.Equal(t, "notes", cleaned.Headers[idx])
	// Extras pass through untouched, commas included.
	assert.Equal(t, "called twice, still waiting", cleaned.Rows[0][idx])
	assert.Equal(t, 1, summary.ExtraColumns)
}

func TestCleanAddressSynthesis(t *testing.T) {
	cleaned, _ := cleanTable(t,
		[]string{"address", "city", "state", "zip"},
		[][]string{
			{"123 Main St", "Springfield", "IL", "62704"},
			{"nan", "Springfield", "none", "62704"},
		},
	)

	addr := cleaned.Rows[0][fieldIndex(t, cleaned, schema.FieldBusinessAddress)]
	// Separator commas are stripped by the final cell pass.
	assert.Equal(t, "123 Main St Springfield IL 62704", addr)
	assert.NotContains(t, addr, "nan")
	assert.NotContains(t, addr, ",,")

	addr = cleaned.Rows[1][fieldIndex(t, cleaned, schema.FieldBusinessAddress)]
	assert.Equal(t, "Springfield 62704", addr)
	assert.NotContains(t, addr, "nan")
	assert.NotContains(t, addr, "none")
}

func TestCleanHomeAddressFromOwnerColumns(t *testing.T) {
	cleaned, _ := cleanTable(t,
		[]string{"owner address", "owner city", "owner state", "owner zip"},
		[][]string{{"9 Oak Ave", "Peoria", "IL", "61601"}},
	)

	home := cleaned.Rows[0][fieldIndex(t, cleaned, schema.FieldHomeAddress)]
	assert.Equal(t, "9 Oak Ave Peoria IL 61601", home)
}

func TestCleanFullNameNotSynthesizedWhenDirect(t *testing.T) {
	cleaned, _ := cleanTable(t,
		[]string{"ownerfullname", "firstname", "lastname"},
		[][]string{{"Janet B Doe", "Jane", "Doe"}},
	)

	assert.Equal(t, "Janet B Doe", cleaned.Rows[0][fieldIndex(t, cleaned, schema.FieldFullName)])
}

func TestCleanPhoneMultiplexing(t *testing.T) {
	cleaned, _ := cleanTable(t,
		[]string{"phone 1", "cell phone", "work phone", "home phone"},
		[][]string{
			// Duplicate under different formatting collapses to one slot.
			{"5551234567", "(555) 123-4567", "5559876543", "5550001111"},
		},
	)

	assert.Equal(t, "(555) 123-4567", cleaned.Rows[0][fieldIndex(t, cleaned, schema.FieldPhone1)])
	assert.Equal(t, "(555) 987-6543", cleaned.Rows[0][fieldIndex(t, cleaned, schema.FieldPhone2)])
	assert.Equal(t, "(555) 000-1111", cleaned.Rows[0][fieldIndex(t, cleaned, schema.FieldPhone3)])
}

func TestCleanPhoneInvalidSkipsSlot(t *testing.T) {
	cleaned, _ := cleanTable(t,
		[]string{"phone 1", "phone 2"},
		[][]string{{"not a phone", "5559876543"}},
	)

	// The valid number takes slot 1; invalid values never occupy a slot.
	assert.Equal(t, "(555) 987-6543", cleaned.Rows[0][fieldIndex(t, cleaned, schema.FieldPhone1)])
	assert.Equal(t, "", cleaned.Rows[0][fieldIndex(t, cleaned, schema.FieldPhone2)])
}

func TestCleanEmailMultiplexing(t *testing.T) {
	cleaned, _ := cleanTable(t,
		[]string{"email", "owner email", "contact email"},
		[][]string{{"jane@acme.com", "JANE@ACME.COM", "billing@acme.com"}},
	)

	assert.Equal(t, "jane@acme.com", cleaned.Rows[0][fieldIndex(t, cleaned, schema.FieldEmail1)])
	assert.Equal(t, "billing@acme.com", cleaned.Rows[0][fieldIndex(t, cleaned, schema.FieldEmail2)])
}

func TestCleanCollisionFirstNonEmptyWins(t *testing.T) {
	cleaned, _ := cleanTable(t,
		[]string{"company", "businessname"},
		[][]string{
			{"", "Acme Holdings"},
			{"Acme LLC", "Acme Holdings"},
		},
	)

	idx := fieldIndex(t, cleaned, schema.FieldBusinessName)
	assert.Equal(t, "Acme Holdings", cleaned.Rows[0][idx])
	assert.Equal(t, "Acme LLC", cleaned.Rows[1][idx])
}

func TestCleanIdempotent(t *testing.T) {
	// Cleaning a cleaned file (target-schema columns only) is a fixed point.
	first, _ := cleanTable(t,
		[]string{"firstname", "lastname", "cellphone", "companyname", "address", "city", "state", "zip", "email"},
		[][]string{
			{"Jane", "Doe", "5551234567", "Acme LLC", "123 Main St", "Springfield", "IL", "62704", "jane@acme.com"},
			{"John", "", "15559876543", "Smith & Sons", "", "Peoria", "IL", "", "JOHN@SMITH.IO"},
		},
	)

	second, _ := cleanTable(t, first.Headers, first.Rows)
	assert.Equal(t, first.Headers, second.Headers)
	assert.Equal(t, first.Rows, second.Rows)
}

func TestCleanRaggedRowsTolerated(t *testing.T) {
	cleaned, _ := cleanTable(t,
		[]string{"company", "phone"},
		[][]string{{"Acme LLC"}},
	)

	assert.Equal(t, "Acme LLC", cleaned.Rows[0][fieldIndex(t, cleaned, schema.FieldBusinessName)])
	assert.Equal(t, "", cleaned.Rows[0][fieldIndex(t, cleaned, schema.FieldPhone1)])
}
