package classify

import (
	"testing"

	"leadhub/domain/lead"
	"leadhub/domain/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"plain", "Business Name", "business name"},
		{"underscored", "First_Name", "firstname"},
		{"punctuation", "SS#", "ss"},
		{"extra whitespace", "  Monthly   Revenue  ", "monthly revenue"},
		{"diacritics", "Téléphone", "telephone"},
		{"mixed", "Owner's E-Mail!", "owners email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeHeader(tt.raw))
		})
	}
}

func TestLookupKey(t *testing.T) {
	assert.Equal(t, "businessname", LookupKey("Business Name"))
	assert.Equal(t, "businessname", LookupKey("BUSINESS_NAME"))
	assert.Equal(t, LookupKey("cell phone"), LookupKey("CellPhone"))
}

func TestAliasTableResolve(t *testing.T) {
	table := DefaultAliasTable()

	field, ok := table.Resolve("CellPhone")
	require.True(t, ok)
	assert.Equal(t, schema.FieldPhone, field)

	field, ok = table.Resolve("Company")
	require.True(t, ok)
	assert.Equal(t, schema.FieldBusinessName, field)

	field, ok = table.Resolve("years in business")
	require.True(t, ok)
	assert.Equal(t, schema.FieldBusinessStartDate, field)

	_, ok = table.Resolve("completely unknown header")
	assert.False(t, ok)
}

func TestAliasTableSelfResolution(t *testing.T) {
	// Every target-schema header must resolve, so cleaning a cleaned file
	// maps every column straight back.
	table := DefaultAliasTable()
	for _, header := range schema.DefaultTargetSchema().Headers() {
		_, ok := table.Resolve(header)
		assert.True(t, ok, "target header %q must resolve", header)
	}
}

func sourceTable(headers []string, rows [][]string) *lead.SourceTable {
	return &lead.SourceTable{Name: "test.csv", Headers: headers, Rows: rows}
}

func TestClassifyAliasMatch(t *testing.T) {
	c := New(DefaultConfig())
	table := sourceTable(
		[]string{"firstname", "lastname", "cellphone", "companyname"},
		[][]string{{"Jane", "Doe", "5551234567", "Acme LLC"}},
	)

	mapping := c.Classify(table)
	require.Len(t, mapping.Assignments, 4)

	assert.Equal(t, schema.FieldFirstName, mapping.Assignments[0].Field)
	assert.Equal(t, schema.FieldLastName, mapping.Assignments[1].Field)
	assert.Equal(t, schema.FieldPhone, mapping.Assignments[2].Field)
	assert.Equal(t, schema.FieldBusinessName, mapping.Assignments[3].Field)
	for _, a := range mapping.Assignments {
		assert.Equal(t, lead.MatchAlias, a.Kind)
		assert.Equal(t, 1.0, a.Confidence)
	}
	assert.Equal(t, 4, mapping.MatchedCount())
	assert.Empty(t, mapping.Extras())
}

func TestClassifySSNByPattern(t *testing.T) {
	c := New(DefaultConfig())
	table := sourceTable(
		[]string{"mystery"},
		[][]string{
			{"123-45-6789"},
			{"987-65-4321"},
			{"111-22-3333"},
			{"not an ssn"},
		},
	)

	mapping := c.Classify(table)
	assert.Equal(t, schema.FieldSSN, mapping.Assignments[0].Field)
	assert.Equal(t, lead.MatchPattern, mapping.Assignments[0].Kind)
	assert.InDelta(t, 0.75, mapping.Assignments[0].Confidence, 1e-9)
}

func TestClassifyEINByPattern(t *testing.T) {
	c := New(DefaultConfig())
	table := sourceTable(
		[]string{"col a"},
		[][]string{{"12-3456789"}, {"98-7654321"}, {"55-1234567"}},
	)

	mapping := c.Classify(table)
	assert.Equal(t, schema.FieldEIN, mapping.Assignments[0].Field)
}

func TestClassifyPhoneAndEmailByPattern(t *testing.T) {
	c := New(DefaultConfig())
	table := sourceTable(
		[]string{"x", "y"},
		[][]string{
			{"(555) 123-4567", "jane@acme.com"},
			{"5559876543", "joe@acme.io"},
			{"555.111.2222", "bad value"},
		},
	)

	mapping := c.Classify(table)
	assert.Equal(t, schema.FieldPhone, mapping.Assignments[0].Field)
	assert.Equal(t, schema.FieldEmail, mapping.Assignments[1].Field)
}

func TestClassifyDateWindow(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected schema.Field
	}{
		{"old dates are DOB", []string{"1/2/1975", "3/4/1982", "12/30/1968"}, schema.FieldDOB},
		{"recent dates are start dates", []string{"1/2/2015", "3/4/2018", "6/7/2012"}, schema.FieldBusinessStartDate},
		{"ambiguous window stays unassigned", []string{"1/2/2002", "3/4/2003", "6/7/2001"}, schema.None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([][]string, len(tt.values))
			for i, v := range tt.values {
				rows[i] = []string{v}
			}
			mapping := New(DefaultConfig()).Classify(sourceTable([]string{"when"}, rows))
			assert.Equal(t, tt.expected, mapping.Assignments[0].Field)
		})
	}
}

func TestClassifyMajorityIsStrict(t *testing.T) {
	// Exactly 50% is not a majority.
	c := New(DefaultConfig())
	table := sourceTable(
		[]string{"half"},
		[][]string{{"123-45-6789"}, {"123-45-6789"}, {"nope"}, {"nope"}},
	)

	mapping := c.Classify(table)
	assert.Equal(t, schema.None, mapping.Assignments[0].Field)
	assert.Equal(t, []int{0}, mapping.Extras())
}

func TestClassifyEmptyColumnUnassigned(t *testing.T) {
	c := New(DefaultConfig())
	table := sourceTable(
		[]string{"blank"},
		[][]string{{""}, {""}, {""}},
	)

	mapping := c.Classify(table)
	assert.Equal(t, schema.None, mapping.Assignments[0].Field)
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Two overlapping rules both pass the majority bar; the lower priority
	// number must win regardless of rule-list order.
	anyDigits := func(v string) bool { return len(v) > 0 && v[0] >= '0' && v[0] <= '9' }
	config := Config{
		Aliases: NewAliasTable(map[string]schema.Field{}),
		Rules: []Rule{
			{Field: schema.FieldMonthlyRevenue, Priority: 9, Match: anyDigits},
			{Field: schema.FieldSSN, Priority: 1, Match: IsSSN},
		},
		SampleSize:        100,
		MajorityThreshold: 0.5,
		DOBYearBefore:     2000,
		StartDateYearFrom: 2005,
	}

	mapping := New(config).Classify(sourceTable(
		[]string{"col"},
		[][]string{{"123-45-6789"}, {"222-33-4444"}},
	))

	assert.Equal(t, schema.FieldSSN, mapping.Assignments[0].Field)
	// Both candidates stay recorded for review.
	assert.Len(t, mapping.Candidates, 2)
}

func TestClassifyKeepsUnmatchedAsExtras(t *testing.T) {
	c := New(DefaultConfig())
	table := sourceTable(
		[]string{"company", "notes"},
		[][]string{{"Acme LLC", "called twice, no answer"}},
	)

	mapping := c.Classify(table)
	assert.Equal(t, schema.FieldBusinessName, mapping.Assignments[0].Field)
	assert.Equal(t, schema.None, mapping.Assignments[1].Field)
	assert.Equal(t, []int{1}, mapping.Extras())
	assert.Equal(t, 1, mapping.MatchedCount())
}

func TestParseDate(t *testing.T) {
	_, ok := ParseDate("3/15/1985")
	assert.True(t, ok)
	_, ok = ParseDate("2015-06-01")
	assert.True(t, ok)
	_, ok = ParseDate("Jan 2, 2019")
	assert.True(t, ok)
	_, ok = ParseDate("not a date")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestSampleNonEmptyCapsAndStrides(t *testing.T) {
	values := make([]string, 500)
	for i := range values {
		values[i] = "v"
	}
	sample := sampleNonEmpty(values, 100)
	assert.LessOrEqual(t, len(sample), 100)
	assert.NotEmpty(t, sample)

	sample = sampleNonEmpty([]string{"", "a", ""}, 100)
	assert.Equal(t, []string{"a"}, sample)
}
