package normalization

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldLabel lowercases, trims, and strips diacritics so that locale
// variants compare equal ("MÉDIO" -> "medio").
func FoldLabel(input string) string {
	folded := ParseInputString(input)
	stripped, _, err := transform.String(diacriticStripper, folded)
	if err != nil {
		return folded
	}
	return stripped
}
