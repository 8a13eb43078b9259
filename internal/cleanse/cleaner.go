package cleanse

import (
	"leadhub/domain/lead"
	"leadhub/domain/schema"
)

// Config fixes the output shape: the target schema and how many positional
// phone/email slots get filled.
type Config struct {
	Schema     schema.TargetSchema
	PhoneSlots int
	EmailSlots int
}

// DefaultConfig uses the HUB schema with the superset slot counts.
func DefaultConfig() Config {
	return Config{
		Schema:     schema.DefaultTargetSchema(),
		PhoneSlots: 3,
		EmailSlots: 2,
	}
}

// Cleaner reshapes a classified source table into the target schema.
// It is a pure one-shot batch transform; cell-level problems degrade to
// empty strings, never errors.
type Cleaner struct {
	config Config
}

// New creates a cleaner. A zero config falls back to defaults.
func New(config Config) *Cleaner {
	if len(config.Schema.Fields) == 0 {
		config.Schema = schema.DefaultTargetSchema()
	}
	if config.PhoneSlots <= 0 {
		config.PhoneSlots = 3
	}
	if config.EmailSlots <= 0 {
		config.EmailSlots = 2
	}
	return &Cleaner{config: config}
}

// Clean produces the cleaned table: every target field present in schema
// order (empty when nothing matched), then unmatched source columns
// appended untouched, rows in original order.
func (c *Cleaner) Clean(table *lead.SourceTable, mapping *lead.ColumnMapping) (*lead.CleanedTable, lead.CleanSummary) {
	columnsByField := make(map[schema.Field][]int)
	var phoneCols, emailCols []int
	for _, a := range mapping.Assignments {
		if a.Field == schema.None {
			continue
		}
		switch {
		case schema.IsPhoneInput(a.Field):
			phoneCols = append(phoneCols, a.Column)
		case schema.IsEmailInput(a.Field):
			emailCols = append(emailCols, a.Column)
		default:
			columnsByField[a.Field] = append(columnsByField[a.Field], a.Column)
		}
	}
	extras := mapping.Extras()

	headers := append(c.config.Schema.Headers(), extraHeaders(table, extras)...)
	rows := make([][]string, len(table.Rows))

	for r, row := range table.Rows {
		values := make(map[schema.Field]string, len(c.config.Schema.Fields))

		for _, field := range c.config.Schema.Fields {
			values[field] = firstNonEmpty(row, columnsByField[field])
		}

		c.synthesize(values, row, columnsByField)
		c.fillPhones(values, row, phoneCols)
		c.fillEmails(values, row, emailCols)

		out := make([]string, 0, len(headers))
		for _, field := range c.config.Schema.Fields {
			out = append(out, CleanText(values[field]))
		}
		for _, col := range extras {
			out = append(out, cell(row, col))
		}
		rows[r] = out
	}

	cleaned := &lead.CleanedTable{
		Name:    table.Name,
		Headers: headers,
		Rows:    rows,
	}
	summary := lead.CleanSummary{
		SourceRows:     table.RowCount(),
		SourceColumns:  table.ColumnCount(),
		MatchedColumns: mapping.MatchedCount(),
		ExtraColumns:   len(extras),
		OutputColumns:  len(headers),
	}
	return cleaned, summary
}

// synthesize fills composite fields only where no direct column supplied a
// value, so re-cleaning an already-cleaned file leaves it untouched.
func (c *Cleaner) synthesize(values map[schema.Field]string, row []string, columnsByField map[schema.Field][]int) {
	part := func(f schema.Field) string {
		return firstNonEmpty(row, columnsByField[f])
	}

	if values[schema.FieldFullName] == "" {
		values[schema.FieldFullName] = SynthesizeFullName(
			part(schema.FieldFirstName), part(schema.FieldLastName))
	}
	if values[schema.FieldBusinessAddress] == "" {
		values[schema.FieldBusinessAddress] = SynthesizeAddress(
			part(schema.FieldBusinessStreet), part(schema.FieldBusinessCity),
			part(schema.FieldBusinessState), part(schema.FieldBusinessZip))
	}
	if values[schema.FieldHomeAddress] == "" {
		values[schema.FieldHomeAddress] = SynthesizeAddress(
			part(schema.FieldHomeStreet), part(schema.FieldHomeCity),
			part(schema.FieldHomeState), part(schema.FieldHomeZip))
	}
}

// fillPhones dedupes by digit key in first-seen column order and assigns
// positionally. Invalid numbers drop out instead of occupying a slot.
func (c *Cleaner) fillPhones(values map[schema.Field]string, row []string, phoneCols []int) {
	slots := c.config.Schema.PhoneSlots()
	if len(slots) > c.config.PhoneSlots {
		slots = slots[:c.config.PhoneSlots]
	}

	seen := make(map[string]bool)
	filled := 0
	for _, col := range phoneCols {
		if filled >= len(slots) {
			break
		}
		formatted := FormatPhone(CleanText(cell(row, col)))
		if formatted == "" {
			continue
		}
		key := PhoneKey(formatted)
		if seen[key] {
			continue
		}
		seen[key] = true
		values[slots[filled]] = formatted
		filled++
	}
	for i := filled; i < len(slots); i++ {
		values[slots[i]] = ""
	}
}

// fillEmails dedupes case-insensitively, first-seen order, no validation
// beyond the classifier's: a bad address is the provider's problem.
func (c *Cleaner) fillEmails(values map[schema.Field]string, row []string, emailCols []int) {
	slots := c.config.Schema.EmailSlots()
	if len(slots) > c.config.EmailSlots {
		slots = slots[:c.config.EmailSlots]
	}

	seen := make(map[string]bool)
	filled := 0
	for _, col := range emailCols {
		if filled >= len(slots) {
			break
		}
		value := CleanText(cell(row, col))
		if value == "" {
			continue
		}
		key := lowerKey(value)
		if seen[key] {
			continue
		}
		seen[key] = true
		values[slots[filled]] = value
		filled++
	}
	for i := filled; i < len(slots); i++ {
		values[slots[i]] = ""
	}
}

func extraHeaders(table *lead.SourceTable, extras []int) []string {
	headers := make([]string, len(extras))
	for i, col := range extras {
		headers[i] = table.Headers[col]
	}
	return headers
}

func firstNonEmpty(row []string, cols []int) string {
	for _, col := range cols {
		if v := CleanText(cell(row, col)); v != "" {
			return v
		}
	}
	return ""
}

func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
