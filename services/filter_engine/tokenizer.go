// Package filter_engine filters a product catalog and summarises the result:
// price bounds, available sizes and the most common description words.
// Everything here is pure and synchronous; callers own retrieval and I/O.
package filter_engine

import (
	"iter"
	"strings"
	"unicode"
)

// StopWords are never counted as common words. Keys are lower case.
var StopWords = map[string]struct{}{
	"the": {}, "is": {}, "and": {}, "of": {}, "a": {}, "in": {},
	"to": {}, "for": {}, "with": {}, "on": {}, "that": {}, "this": {},
	"it": {}, "by": {}, "an": {}, "as": {}, "at": {},
}

// IsStopWord reports whether word is a stop word, ignoring case.
func IsStopWord(word string) bool {
	_, ok := StopWords[strings.ToLower(word)]
	return ok
}

// isWordRune matches the \w class: letters, nonspacing marks, decimal digits
// and connector punctuation. Marks keep decomposed accents inside their word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.In(r, unicode.Mn, unicode.Pc)
}

// Tokenize yields the words of text in order of appearance, with their
// original casing. Words are maximal runs of word runes, so punctuation never
// sticks to a token ("weather." yields "weather", "x-large" yields "x" and
// "large"). Stop words are skipped.
func Tokenize(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i, r := range text {
			if isWordRune(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !emitToken(text[start:i], yield) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			emitToken(text[start:], yield)
		}
	}
}

func emitToken(word string, yield func(string) bool) bool {
	if IsStopWord(word) {
		return true
	}
	return yield(word)
}
