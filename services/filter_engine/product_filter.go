package filter_engine

import (
	"strings"

	"github.com/Modeva-Ecommerce/product-filter-api/models"
	"github.com/RoaringBitmap/roaring"
)

// FilterProducts returns the products satisfying every active constraint of
// criteria, in catalog order. The input is never modified and the result is
// never nil.
func FilterProducts(products []models.Product, criteria models.FilterCriteria) []models.Product {
	matched := matchingPositions(products, criteria)

	out := make([]models.Product, 0, matched.GetCardinality())
	it := matched.Iterator()
	for it.HasNext() {
		out = append(out, products[it.Next()])
	}
	return out
}

// matchingPositions intersects one bitmap of catalog positions per active
// constraint. Iterating the result ascending preserves catalog order.
func matchingPositions(products []models.Product, criteria models.FilterCriteria) *roaring.Bitmap {
	matched := roaring.New()
	matched.AddRange(0, uint64(len(products)))

	if criteria.MinPrice != nil || criteria.MaxPrice != nil {
		matched.And(positionsWhere(products, func(p models.Product) bool {
			return MatchesPrice(p, criteria.MinPrice, criteria.MaxPrice)
		}))
	}

	if criteria.Size != "" {
		matched.And(positionsWhere(products, func(p models.Product) bool {
			return HasSize(p, criteria.Size)
		}))
	}

	return matched
}

func positionsWhere(products []models.Product, keep func(models.Product) bool) *roaring.Bitmap {
	bm := roaring.New()
	for i, p := range products {
		if keep(p) {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// MatchesPrice reports whether p lies within the inclusive bounds. A nil
// bound is open.
func MatchesPrice(p models.Product, minPrice, maxPrice *float64) bool {
	if minPrice != nil && p.Price < *minPrice {
		return false
	}
	if maxPrice != nil && p.Price > *maxPrice {
		return false
	}
	return true
}

// HasSize reports whether any of p's sizes equals size, ignoring case.
func HasSize(p models.Product, size string) bool {
	for _, s := range p.Sizes {
		if strings.EqualFold(s, size) {
			return true
		}
	}
	return false
}
