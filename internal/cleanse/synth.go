package cleanse

import (
	"strings"
)

// SynthesizeFullName joins first and last with a single space. Both empty
// yields "", never " ".
func SynthesizeFullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// SynthesizeAddress joins street, city, state and zip in that order:
// "street, city, state zip". Empty components are skipped entirely, so the
// result never carries double commas, dangling separators, or "nan" text
// (components are cleaned before they get here).
func SynthesizeAddress(street, city, state, zip string) string {
	var segments []string
	for _, part := range []string{street, city, state} {
		if part != "" {
			segments = append(segments, part)
		}
	}
	joined := strings.Join(segments, ", ")
	if zip != "" {
		joined = strings.TrimSpace(joined + " " + zip)
	}
	return joined
}
