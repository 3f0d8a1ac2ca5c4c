package filter_engine

import (
	"testing"

	"github.com/Modeva-Ecommerce/product-filter-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterProducts_PriceRangeIsInclusive(t *testing.T) {
	got := FilterProducts(sampleCatalog(), models.FilterCriteria{MinPrice: price(10), MaxPrice: price(15)})
	assert.Equal(t, []string{"Red Trouser", "Blue Shirt"}, titles(got))
}

func TestFilterProducts_OpenBounds(t *testing.T) {
	catalog := sampleCatalog()

	assert.Equal(t, []string{"Blue Shirt", "Green Jacket"},
		titles(FilterProducts(catalog, models.FilterCriteria{MinPrice: price(15)})))
	assert.Equal(t, []string{"Red Trouser"},
		titles(FilterProducts(catalog, models.FilterCriteria{MaxPrice: price(14.99)})))
}

func TestFilterProducts_PriceRangeSoundAndComplete(t *testing.T) {
	catalog := sampleCatalog()
	ranges := [][2]float64{{0, 100}, {10, 20}, {11, 24}, {25, 25}, {26, 30}, {20, 10}}

	for _, r := range ranges {
		got := FilterProducts(catalog, models.FilterCriteria{MinPrice: price(r[0]), MaxPrice: price(r[1])})

		var want []string
		for _, p := range catalog {
			if p.Price >= r[0] && p.Price <= r[1] {
				want = append(want, p.Title)
			}
		}
		if want == nil {
			want = []string{}
		}
		assert.Equal(t, want, titles(got), "range %v", r)
	}
}

func TestFilterProducts_MinAboveMaxMatchesNothing(t *testing.T) {
	got := FilterProducts(sampleCatalog(), models.FilterCriteria{MinPrice: price(30), MaxPrice: price(5)})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterProducts_SizeIgnoresCase(t *testing.T) {
	catalog := sampleCatalog()

	assert.Equal(t, []string{"Red Trouser", "Blue Shirt"},
		titles(FilterProducts(catalog, models.FilterCriteria{Size: "MEDIUM"})))
	assert.Equal(t, []string{"Green Jacket"},
		titles(FilterProducts(catalog, models.FilterCriteria{Size: "X-Large"})))
	assert.Empty(t, FilterProducts(catalog, models.FilterCriteria{Size: "xl"}))
}

func TestFilterProducts_CombinedIsIntersection(t *testing.T) {
	catalog := sampleCatalog()
	byPrice := FilterProducts(catalog, models.FilterCriteria{MinPrice: price(12)})
	bySize := FilterProducts(catalog, models.FilterCriteria{Size: "large"})
	both := FilterProducts(catalog, models.FilterCriteria{MinPrice: price(12), Size: "large"})

	var want []string
	for _, p := range byPrice {
		for _, q := range bySize {
			if p.Title == q.Title {
				want = append(want, p.Title)
			}
		}
	}
	assert.Equal(t, want, titles(both))
	assert.Equal(t, []string{"Blue Shirt", "Green Jacket"}, titles(both))
}

func TestFilterProducts_PreservesOrderAndInput(t *testing.T) {
	catalog := []models.Product{
		{Title: "c", Price: 3, Sizes: []string{"m"}},
		{Title: "a", Price: 1, Sizes: []string{"s"}},
		{Title: "b", Price: 2, Sizes: []string{"m"}},
	}
	before := sampleClone(catalog)

	got := FilterProducts(catalog, models.FilterCriteria{Size: "m"})
	assert.Equal(t, []string{"c", "b"}, titles(got))
	assert.Equal(t, before, catalog)
}

func TestFilterProducts_NoCriteriaAndEmptyCatalog(t *testing.T) {
	assert.Len(t, FilterProducts(sampleCatalog(), models.FilterCriteria{}), 3)

	got := FilterProducts(nil, models.FilterCriteria{Size: "large"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHasSize_NoSizes(t *testing.T) {
	assert.False(t, HasSize(models.Product{}, "large"))
}

func sampleClone(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
