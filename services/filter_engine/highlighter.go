package filter_engine

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	emphasisOpen  = "<em>"
	emphasisClose = "</em>"
)

// Highlighter wraps whole-word, case-insensitive occurrences of its terms in
// <em></em>, keeping the casing found in the text. Text already inside an
// <em> span is left alone, so highlighting twice changes nothing.
type Highlighter struct {
	terms   []*regexp.Regexp
	scanner *regexp.Regexp
}

// ParseHighlightTerms splits a comma separated highlight parameter.
func ParseHighlightTerms(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return normalizeTerms(strings.Split(raw, ","))
}

// normalizeTerms trims terms and drops blanks and case-insensitive repeats,
// keeping the supplied order.
func normalizeTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		key := strings.ToLower(term)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, term)
	}
	return out
}

// NewHighlighter builds a highlighter for terms. With no usable terms the
// highlighter returns text unchanged.
func NewHighlighter(terms []string) *Highlighter {
	terms = normalizeTerms(terms)
	h := &Highlighter{}
	if len(terms) == 0 {
		return h
	}

	alternatives := make([]string, len(terms))
	for i, term := range terms {
		quoted := regexp.QuoteMeta(term)
		alternatives[i] = quoted
		h.terms = append(h.terms, regexp.MustCompile(`(?i)^`+quoted))
	}

	// Group 1 catches existing markup so it is skipped rather than rewrapped.
	h.scanner = regexp.MustCompile(`(?is)(<em>.*?</em>|</?em>)|` + strings.Join(alternatives, "|"))
	return h
}

// Highlight returns text with every whole-word match wrapped once.
func (h *Highlighter) Highlight(text string) string {
	if h == nil || h.scanner == nil || strings.TrimSpace(text) == "" {
		return text
	}

	var b strings.Builder
	emitted, search := 0, 0

	for search < len(text) {
		loc := h.scanner.FindStringSubmatchIndex(text[search:])
		if loc == nil {
			break
		}
		start := search + loc[0]

		if loc[2] >= 0 {
			search += loc[1]
			continue
		}

		if end, ok := h.wholeWordAt(text, start); ok {
			b.WriteString(text[emitted:start])
			b.WriteString(emphasisOpen)
			b.WriteString(text[start:end])
			b.WriteString(emphasisClose)
			emitted, search = end, end
			continue
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		search = start + size
	}

	if emitted == 0 {
		return text
	}
	b.WriteString(text[emitted:])
	return b.String()
}

// wholeWordAt tries the terms in supplied order at start and returns the end
// of the first one bounded by non-word runes on both sides.
func (h *Highlighter) wholeWordAt(text string, start int) (int, bool) {
	if !boundaryBefore(text, start) {
		return 0, false
	}
	rest := text[start:]
	for _, term := range h.terms {
		loc := term.FindStringIndex(rest)
		if loc == nil {
			continue
		}
		end := start + loc[1]
		if boundaryAfter(text, end) {
			return end, true
		}
	}
	return 0, false
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}
