// Package textutil provides text normalization and tokenization for
// bag-of-words feature extraction.
package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// nonWordRe matches a maximal run of characters that are neither letters
// nor digits (punctuation, whitespace, symbols).
var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Fold applies full Unicode case folding. It is the single case rule for
// the whole pipeline: message text and stopword entries must go through
// the same fold or set membership tests disagree.
func Fold(text string) string {
	return cases.Fold().String(text)
}

// Normalize case-folds text, replaces every run of punctuation and/or
// whitespace with a single space, and trims leading/trailing space.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
//
// Word boundaries are non-alphanumeric runs, so contractions and
// hyphenated words split at the punctuation ("don't" -> "don t").
func Normalize(text string) string {
	text = Fold(text)
	text = nonWordRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize splits normalized text on whitespace, dropping empty strings.
// Returns nil for text with no tokens.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
