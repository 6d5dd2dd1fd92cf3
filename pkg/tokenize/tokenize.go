// Package tokenize normalizes raw request text into the token sequence the
// rule tables are matched against.
package tokenize

import "strings"

// The rule tables are authored against text with exactly these three
// characters removed. This is a deliberately narrow rule, not general
// punctuation stripping: other punctuation stays part of its token.
var punctuation = strings.NewReplacer(".", "", ",", "", "?", "")

// Tokenize lowercases text, strips '.', ',' and '?', and splits on
// whitespace. Empty or all-whitespace input yields an empty sequence.
// No stemming or stopword removal is applied.
func Tokenize(text string) []string {
	return strings.Fields(punctuation.Replace(strings.ToLower(text)))
}
