package filter_engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
		text  string
		want  string
	}{
		{
			name:  "single term",
			terms: []string{"green"},
			text:  "This trouser pairs with a green shirt.",
			want:  "This trouser pairs with a <em>green</em> shirt.",
		},
		{
			name:  "several terms",
			terms: []string{"green", "shirt"},
			text:  "This trouser pairs with a green shirt.",
			want:  "This trouser pairs with a <em>green</em> <em>shirt</em>.",
		},
		{
			name:  "substring left alone",
			terms: []string{"green"},
			text:  "Grown in a greenhouse, green all year.",
			want:  "Grown in a greenhouse, <em>green</em> all year.",
		},
		{
			name:  "term inside a longer word",
			terms: []string{"red"},
			text:  "A bored shopper.",
			want:  "A bored shopper.",
		},
		{
			name:  "later term after a rejected prefix",
			terms: []string{"bore", "bored"},
			text:  "bored red",
			want:  "<em>bored</em> red",
		},
		{
			name:  "rejected match then a different term",
			terms: []string{"red", "bored"},
			text:  "bored red",
			want:  "<em>bored</em> <em>red</em>",
		},
		{
			name:  "inner match skipped before a later term",
			terms: []string{"red", "shirt"},
			text:  "bored shirt",
			want:  "bored <em>shirt</em>",
		},
		{
			name:  "decomposed accent is part of the word",
			terms: []string{"cafe"},
			text:  "cafe\u0301 cafe\u0301 lounge",
			want:  "cafe\u0301 cafe\u0301 lounge",
		},
		{
			name:  "decomposed term matches whole word",
			terms: []string{"cafe\u0301"},
			text:  "cafe\u0301 and cafe",
			want:  "<em>cafe\u0301</em> and cafe",
		},
		{
			name:  "keeps original casing",
			terms: []string{"green"},
			text:  "GREEN and Green",
			want:  "<em>GREEN</em> and <em>Green</em>",
		},
		{
			name:  "attached punctuation",
			terms: []string{"green"},
			text:  "green, red; (green)",
			want:  "<em>green</em>, red; (<em>green</em>)",
		},
		{
			name:  "regex metacharacters are literal",
			terms: []string{"c++"},
			text:  "Written in c++ or cxx",
			want:  "Written in <em>c++</em> or cxx",
		},
		{
			name:  "earlier term wins an overlap",
			terms: []string{"green", "green shirt"},
			text:  "a green shirt",
			want:  "a <em>green</em> shirt",
		},
		{
			name:  "phrase term first",
			terms: []string{"green shirt", "green"},
			text:  "a green shirt, green",
			want:  "a <em>green shirt</em>, <em>green</em>",
		},
		{
			name:  "existing markup untouched",
			terms: []string{"green"},
			text:  "<em>green</em> and green",
			want:  "<em>green</em> and <em>green</em>",
		},
		{
			name:  "no terms",
			terms: nil,
			text:  "green",
			want:  "green",
		},
		{
			name:  "blank text",
			terms: []string{"green"},
			text:  "   ",
			want:  "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewHighlighter(tt.terms).Highlight(tt.text))
		})
	}
}

func TestHighlight_ExactlyOneWrapForSingleOccurrence(t *testing.T) {
	out := NewHighlighter([]string{"green"}).Highlight("This trouser pairs with a green shirt.")
	assert.Equal(t, 1, strings.Count(out, "<em>green</em>"))
}

func TestHighlight_Idempotent(t *testing.T) {
	h := NewHighlighter([]string{"green", "shirt", "em"})
	texts := []string{
		"This trouser pairs with a green shirt.",
		"green green GREEN greenhouse",
		"em dash em",
	}
	for _, text := range texts {
		once := h.Highlight(text)
		assert.Equal(t, once, h.Highlight(once), text)
		assert.NotContains(t, once, "<em><em>")
		assert.Equal(t, strings.Count(once, "<em>"), strings.Count(once, "</em>"))
	}
}

func TestHighlight_NilHighlighter(t *testing.T) {
	var h *Highlighter
	assert.Equal(t, "green", h.Highlight("green"))
}

func TestParseHighlightTerms(t *testing.T) {
	assert.Nil(t, ParseHighlightTerms(""))
	assert.Nil(t, ParseHighlightTerms("  "))
	assert.Equal(t, []string{"green", "Shirt"}, ParseHighlightTerms(" green , ,Shirt,GREEN "))
	assert.Empty(t, ParseHighlightTerms(",,"))
}
