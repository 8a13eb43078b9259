package cleanse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"collapses whitespace", "Acme   Holdings\tLLC", "Acme Holdings LLC"},
		{"trims", "  hello  ", "hello"},
		{"strips commas", "123 Main St, Suite 4", "123 Main St Suite 4"},
		{"na marker", "N/A", ""},
		{"nan marker", "nan", ""},
		{"none marker", "None", ""},
		{"null marker", "NULL", ""},
		{"dash marker", "-", ""},
		{"empty", "", ""},
		{"regular value untouched", "Plumbing", "Plumbing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.value))
		})
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"bare ten digits", "5551234567", "(555) 123-4567"},
		{"already formatted", "(555) 123-4567", "(555) 123-4567"},
		{"dotted", "555.123.4567", "(555) 123-4567"},
		{"dashed", "555-123-4567", "(555) 123-4567"},
		{"leading country one", "15551234567", "(555) 123-4567"},
		{"nine digits", "555123456", ""},
		{"eleven digits no leading one", "25551234567", ""},
		{"twelve digits", "555123456789", ""},
		{"words", "call me", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPhone(tt.value))
		})
	}
}

func TestFormatPhoneIdempotent(t *testing.T) {
	formatted := FormatPhone("5551234567")
	assert.Equal(t, formatted, FormatPhone(formatted))
}

func TestPhoneKey(t *testing.T) {
	assert.Equal(t, "5551234567", PhoneKey("(555) 123-4567"))
	assert.Equal(t, "5551234567", PhoneKey("1-555-123-4567"))
	assert.Equal(t, PhoneKey("5551234567"), PhoneKey("(555) 123-4567"))
}

func TestSynthesizeFullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", SynthesizeFullName("Jane", "Doe"))
	assert.Equal(t, "Jane", SynthesizeFullName("Jane", ""))
	assert.Equal(t, "Doe", SynthesizeFullName("", "Doe"))
	assert.Equal(t, "", SynthesizeFullName("", ""))
}

func TestSynthesizeAddress(t *testing.T) {
	full := SynthesizeAddress("123 Main St", "Springfield", "IL", "62704")
	assert.Equal(t, "123 Main St, Springfield, IL 62704", full)

	assert.Equal(t, "Springfield, IL 62704", SynthesizeAddress("", "Springfield", "IL", "62704"))
	assert.Equal(t, "123 Main St, IL", SynthesizeAddress("123 Main St", "", "IL", ""))
	assert.Equal(t, "62704", SynthesizeAddress("", "", "", "62704"))
	assert.Equal(t, "", SynthesizeAddress("", "", "", ""))
	assert.NotContains(t, SynthesizeAddress("123 Main St", "", "", "62704"), ",,")
}
