package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Casers and transformers keep state, so a fresh one is built per call.
func upperCaser() cases.Caser {
	return cases.Upper(language.Spanish)
}

// FoldAccents removes combining marks, turning "Miércoles" into "Miercoles"
func FoldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeHeader turns a column header into its lookup form: accents folded,
// upper case, inner whitespace collapsed into underscores.
func NormalizeHeader(s string) string {
	s = NormalizeKey(FoldAccents(s))
	return strings.Join(strings.Fields(s), "_")
}
