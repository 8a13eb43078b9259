package classify

import (
	"regexp"
	"strings"
	"time"

	"leadhub/domain/schema"
)

var (
	ssnPattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	einPattern = regexp.MustCompile(`^\d{2}-\d{7}$`)
	nonDigits  = regexp.MustCompile(`\D`)

	dateLayouts = []string{
		"1/2/2006",
		"01/02/2006",
		"1/2/06",
		"2006-01-02",
		"01-02-2006",
		"Jan 2, 2006",
		"January 2, 2006",
		"2-Jan-2006",
		"2006/01/02",
	}
)

// Predicate tests a single cell value against one field's shape.
type Predicate func(value string) bool

// Rule binds a value predicate to a target field with an explicit priority;
// lower priority number wins when several rules claim the same column.
type Rule struct {
	Field    schema.Field
	Priority int
	Match    Predicate
}

// DefaultRules returns the value-pattern rules in canonical priority order:
// SSN > EIN > phone > email. Dates are handled by the year-window split,
// after these.
func DefaultRules() []Rule {
	return []Rule{
		{Field: schema.FieldSSN, Priority: 1, Match: IsSSN},
		{Field: schema.FieldEIN, Priority: 2, Match: IsEIN},
		{Field: schema.FieldPhone, Priority: 3, Match: IsPhone},
		{Field: schema.FieldEmail, Priority: 4, Match: IsEmail},
	}
}

// datePriority orders date-window candidates after every rule in
// DefaultRules.
const datePriority = 5

// IsSSN matches NNN-NN-NNNN exactly.
func IsSSN(value string) bool {
	return ssnPattern.MatchString(strings.TrimSpace(value))
}

// IsEIN matches NN-NNNNNNN exactly.
func IsEIN(value string) bool {
	return einPattern.MatchString(strings.TrimSpace(value))
}

// IsPhone matches values with exactly 10 digits once everything else is
// stripped.
func IsPhone(value string) bool {
	digits := nonDigits.ReplaceAllString(value, "")
	return len(digits) == 10
}

// IsEmail is deliberately loose: contains "@" and ".".
func IsEmail(value string) bool {
	trimmed := strings.TrimSpace(value)
	return strings.Contains(trimmed, "@") && strings.Contains(trimmed, ".")
}

// ParseDate tries the accepted layouts in order.
func ParseDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
