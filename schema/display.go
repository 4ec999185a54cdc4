package schema

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName renders the property key as a human-readable label for
// listings and prompts: "maxQueryLimit" becomes "Max Query Limit".
func (p Property) DisplayName() string {
	return DisplayName(p.Key)
}

// DisplayName converts a config key to a title-cased label,
// splitting camel humps, dashes, and dots into separate words.
func DisplayName(key string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range key {
		switch {
		case r == '-' || r == '.' || r == '_':
			b.WriteByte(' ')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte(' ')
			}
			b.WriteRune(r)
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	return cases.Title(language.English).String(b.String())
}
