package cleanse

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	nonDigits      = regexp.MustCompile(`\D`)
)

// naMarkers are treated as missing data. Compared lowercase after trimming.
var naMarkers = map[string]bool{
	"na":   true,
	"n/a":  true,
	"none": true,
	"null": true,
	"nan":  true,
	"-":    true,
}

// CleanText is the final per-cell pass: commas removed so re-exported CSV
// stays trivially parseable, whitespace runs collapsed, NA markers emptied.
func CleanText(value string) string {
	cleaned := strings.ReplaceAll(value, ",", "")
	cleaned = whitespaceRuns.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	if naMarkers[strings.ToLower(cleaned)] {
		return ""
	}
	return cleaned
}

// FormatPhone renders a US phone as (NNN) NNN-NNNN. An 11-digit value with
// a leading 1 is reduced to its 10 significant digits first. Anything else
// comes back empty: a wrong-length phone is worse than no phone downstream.
func FormatPhone(value string) string {
	digits := nonDigits.ReplaceAllString(value, "")
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return ""
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}

// PhoneKey returns the dedupe key for a phone value: its digit string with
// any leading country 1 removed.
func PhoneKey(value string) string {
	digits := nonDigits.ReplaceAllString(value, "")
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	return digits
}

func lowerKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
