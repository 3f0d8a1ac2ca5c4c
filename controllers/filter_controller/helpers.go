package filter_controller

import (
	"fmt"
	"maps"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/Modeva-Ecommerce/product-filter-api/models"
	"github.com/Modeva-Ecommerce/product-filter-api/services/filter_engine"
)

// queryParams indexes query values by lower-cased name so minprice, minPrice
// and MINPRICE are the same parameter. When several spellings are present the
// lower-case one is read first, then the others in sorted order; the first
// non-blank value wins.
func queryParams(values url.Values) map[string]string {
	names := slices.SortedFunc(maps.Keys(values), func(a, b string) int {
		aLower, bLower := a == strings.ToLower(a), b == strings.ToLower(b)
		if aLower != bLower {
			if aLower {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	})

	params := make(map[string]string, len(values))
	for _, name := range names {
		vals := values[name]
		key := strings.ToLower(name)
		if _, seen := params[key]; seen {
			continue
		}
		for _, v := range vals {
			if v = strings.TrimSpace(v); v != "" {
				params[key] = v
				break
			}
		}
	}
	return params
}

// parsePrice returns nil for a blank value.
func parsePrice(name, raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("invalid %s: %q is not a number", name, raw)
	}
	return &v, nil
}

// parseCriteria builds FilterCriteria from the request query.
func parseCriteria(values url.Values) (models.FilterCriteria, error) {
	params := queryParams(values)

	minPrice, err := parsePrice("minprice", params["minprice"])
	if err != nil {
		return models.FilterCriteria{}, err
	}
	maxPrice, err := parsePrice("maxprice", params["maxprice"])
	if err != nil {
		return models.FilterCriteria{}, err
	}

	return models.FilterCriteria{
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		Size:      params["size"],
		Highlight: filter_engine.ParseHighlightTerms(params["highlight"]),
	}, nil
}

func formatPrice(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
