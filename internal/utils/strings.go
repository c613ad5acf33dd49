package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepares a string for accent/case-insensitive comparison:
// trim, strip combining marks, lowercase. Total; never fails.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

var truthyWords = map[string]bool{
	"sim":   true,
	"s":     true,
	"true":  true,
	"1":     true,
	"y":     true,
	"yes":   true,
	"ativo": true,
	"ativa": true,
	"on":    true,
	"ok":    true,
}

// Truthy interprets spreadsheet flag cells ("Sim", "1", "Ativo"...).
// Anything outside the vocabulary, including empty, is false.
func Truthy(v string) bool {
	return truthyWords[Normalize(v)]
}
