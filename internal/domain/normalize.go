package domain

import (
	"strings"
)

// NormalizeText prepares words and emails for storage and comparison:
// surrounding whitespace is trimmed, letters are lowercased and any inner
// run of whitespace becomes a single space. Diacritics, hyphens and
// apostrophes are preserved.
func NormalizeText(text string) string {
	fields := strings.Fields(text)
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return strings.ToLower(fields[0])
	}
	return strings.ToLower(strings.Join(fields, " "))
}
