package classify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnumPattern = regexp.MustCompile(`[^a-zA-Z0-9 ]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// NormalizeHeader reduces a raw header to its canonical form: diacritics
// folded, punctuation dropped, whitespace collapsed to single spaces,
// lowercased. "  First_Name " and "First Name" normalize identically.
func NormalizeHeader(raw string) string {
	folded := foldDiacritics(raw)
	stripped := nonAlnumPattern.ReplaceAllString(folded, "")
	collapsed := whitespaceRuns.ReplaceAllString(stripped, " ")
	return strings.ToLower(strings.TrimSpace(collapsed))
}

// LookupKey is the alias-table key form: normalized with spaces removed,
// so "Business Name", "businessname" and "BUSINESS_NAME" all share one key.
func LookupKey(raw string) string {
	return strings.ReplaceAll(NormalizeHeader(raw), " ", "")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
