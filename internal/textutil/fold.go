package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold returns s composed to NFC and lower-cased with German casing rules.
// Surrounding whitespace is preserved; matching is substring based and must
// see the value as entered.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Lower(language.German).String(norm.NFC.String(s))
}

// FoldAll folds every value, dropping entries that are blank after trimming.
func FoldAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, Fold(v))
	}
	return out
}
