package filter_engine

import "github.com/Modeva-Ecommerce/product-filter-api/models"

// Engine runs the filter pipeline for one request. It holds no per-request
// state and is safe for concurrent use.
type Engine struct {
	ranker   *WordRanker
	topWords int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithTopWords sets the length of the common-words list.
func WithTopWords(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.topWords = n
		}
	}
}

// WithRanker replaces the default word ranker.
func WithRanker(r *WordRanker) EngineOption {
	return func(e *Engine) {
		if r != nil {
			e.ranker = r
		}
	}
}

// NewEngine creates an engine with a top-10, unstemmed ranker by default.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		ranker:   NewWordRanker(),
		topWords: DefaultTopWords,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply filters catalog, summarises the filtered set from the original
// descriptions, then highlights per-request copies. catalog is treated as a
// shared read-only snapshot.
func (e *Engine) Apply(catalog []models.Product, criteria models.FilterCriteria) models.FilteredProductResponse {
	filtered := FilterProducts(catalog, criteria)
	summary := BuildSummary(filtered, e.ranker, e.topWords)

	var highlighter *Highlighter
	if criteria.HasHighlight() {
		highlighter = NewHighlighter(criteria.Highlight)
	}

	result := make([]models.Product, len(filtered))
	for i, p := range filtered {
		cp := p.Clone()
		if cp.Sizes == nil {
			cp.Sizes = []string{}
		}
		cp.Description = highlighter.Highlight(cp.Description)
		result[i] = cp
	}

	return models.FilteredProductResponse{
		Product:       result,
		FilterOptions: summary,
	}
}
