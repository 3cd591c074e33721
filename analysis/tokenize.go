package analysis

import (
	"strings"
	"unicode"
)

// Tokenize splits text into word tokens: maximal runs of letters and
// digits, discarding everything else. Both the corpus stream and the
// Boolean query lexer use this so indexed terms and query terms align.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
