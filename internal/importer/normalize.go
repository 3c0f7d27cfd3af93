package importer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents builds a fresh transformer per call; chained transformers
// carry state and must not be shared between goroutines.
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// Normalize reduces a header or alias to its comparison key: trimmed,
// lowercased, accents removed, and only letters and digits kept.
//
//	Normalize("Número de Série") == "numerodeserie"
//	Normalize("numero-de-serie") == "numerodeserie"
func Normalize(s string) string {
	s = stripAccents(strings.ToLower(strings.TrimSpace(s)))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isWordRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokens applies the same transform as Normalize but keeps word boundaries,
// returning the letter/digit runs in their original order.
//
//	Tokens("Data da Solicitação (GLPI)") == []string{"data", "da", "solicitacao", "glpi"}
func Tokens(s string) []string {
	s = stripAccents(strings.ToLower(strings.TrimSpace(s)))
	return strings.FieldsFunc(s, func(r rune) bool { return !isWordRune(r) })
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
