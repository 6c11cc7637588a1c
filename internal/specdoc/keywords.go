package specdoc

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`\w+`)

// DefaultStopwords are the tokens removed during keyword extraction: common
// English words plus a handful of type-name tokens that dominate code diffs.
// Callers with a custom vocabulary can pass their own set to
// KeywordsWithStoplist.
var DefaultStopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "in": {}, "of": {}, "to": {},
	"and": {}, "is": {}, "for": {},
	"int": {}, "float": {}, "if": {}, "else": {}, "return": {},
	"void": {}, "bool": {},
}

// Keywords extracts a deduplicated set of lowercase word tokens from
// arbitrary text (typically a unified-diff patch), minus DefaultStopwords.
func Keywords(text string) map[string]struct{} {
	return KeywordsWithStoplist(text, DefaultStopwords)
}

// KeywordsWithStoplist is Keywords with a caller-supplied stoplist. Tokens
// are maximal runs of word characters (letters, digits, underscore); the
// extraction has no awareness of the specification's own vocabulary.
func KeywordsWithStoplist(text string, stop map[string]struct{}) map[string]struct{} {
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, skip := stop[w]; skip {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}
