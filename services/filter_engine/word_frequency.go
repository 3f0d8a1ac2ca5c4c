package filter_engine

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Modeva-Ecommerce/product-filter-api/models"
	snowballeng "github.com/kljensen/snowball/english"
)

// DefaultTopWords is the size of the common-words list when none is given.
const DefaultTopWords = 10

// WordCount is one entry of a frequency ranking.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordRanker counts description words across products.
type WordRanker struct {
	stem bool
}

// RankerOption configures a WordRanker.
type RankerOption func(*WordRanker)

// WithStemming groups words sharing a Snowball English stem ("shirts" and
// "shirt") under the first surface form seen.
func WithStemming(enabled bool) RankerOption {
	return func(r *WordRanker) {
		r.stem = enabled
	}
}

// NewWordRanker creates a ranker. Stemming is off by default.
func NewWordRanker(opts ...RankerOption) *WordRanker {
	r := &WordRanker{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *WordRanker) key(word string) string {
	key := strings.ToLower(word)
	if r.stem {
		key = snowballeng.Stem(key, false)
	}
	return key
}

// Frequencies returns every qualifying word with its count, most frequent
// first. Equal counts keep first-seen order. A word is displayed with the
// casing of its first occurrence.
func (r *WordRanker) Frequencies(products []models.Product) []WordCount {
	index := make(map[string]int)
	counts := make([]WordCount, 0)

	for _, p := range products {
		for word := range Tokenize(p.Description) {
			key := r.key(word)
			if i, ok := index[key]; ok {
				counts[i].Count++
				continue
			}
			index[key] = len(counts)
			counts = append(counts, WordCount{Word: word, Count: 1})
		}
	}

	// stable sort keeps discovery order among ties
	slices.SortStableFunc(counts, func(a, b WordCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return counts
}

// MostCommonWords returns up to count words ordered by descending frequency.
// count <= 0 means DefaultTopWords.
func (r *WordRanker) MostCommonWords(products []models.Product, count int) []string {
	if count <= 0 {
		count = DefaultTopWords
	}

	ranked := r.Frequencies(products)
	if len(ranked) > count {
		ranked = ranked[:count]
	}

	words := make([]string, len(ranked))
	for i, wc := range ranked {
		words[i] = wc.Word
	}
	return words
}
