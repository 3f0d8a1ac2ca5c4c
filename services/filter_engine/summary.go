package filter_engine

import "github.com/Modeva-Ecommerce/product-filter-api/models"

// BuildSummary computes the filter options for an already filtered set.
// An empty set yields the zero-value summary. ranker may be nil.
func BuildSummary(products []models.Product, ranker *WordRanker, topWords int) models.FilterInfo {
	info := models.EmptyFilterInfo()
	if len(products) == 0 {
		return info
	}
	if ranker == nil {
		ranker = NewWordRanker()
	}

	info.MinPrice, info.MaxPrice = priceBounds(products)
	info.Sizes = distinctSizes(products)
	info.CommonWords = ranker.MostCommonWords(products, topWords)
	return info
}

// priceBounds scans once; products must be non-empty.
func priceBounds(products []models.Product) (lo, hi float64) {
	lo, hi = products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < lo {
			lo = p.Price
		}
		if p.Price > hi {
			hi = p.Price
		}
	}
	return lo, hi
}

// distinctSizes returns each size label once, in discovery order.
func distinctSizes(products []models.Product) []string {
	seen := make(map[string]struct{})
	sizes := make([]string, 0)
	for _, p := range products {
		for _, s := range p.Sizes {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			sizes = append(sizes, s)
		}
	}
	return sizes
}
