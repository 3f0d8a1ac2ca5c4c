// models/filters.go
package models

// FilterCriteria holds the optional constraints of a filter request.
// A nil bound, empty size or empty highlight list means "no constraint".
type FilterCriteria struct {
	MinPrice  *float64
	MaxPrice  *float64
	Size      string
	Highlight []string
}

// HasHighlight reports whether any highlight terms were supplied.
func (f FilterCriteria) HasHighlight() bool {
	return len(f.Highlight) > 0
}

// FilterInfo summarises the filtered set. All fields stay at their zero
// value (with empty, non-nil slices) when nothing matched.
type FilterInfo struct {
	MinPrice    float64  `json:"minPrice" example:"10"`
	MaxPrice    float64  `json:"maxPrice" example:"25"`
	Sizes       []string `json:"sizes"`
	CommonWords []string `json:"commonWords"`
}

// EmptyFilterInfo returns the zero-value summary used for empty results.
func EmptyFilterInfo() FilterInfo {
	return FilterInfo{
		Sizes:       []string{},
		CommonWords: []string{},
	}
}

// FilteredProductResponse is the body of GET /Filter.
type FilteredProductResponse struct {
	Product       []Product  `json:"Product"`
	FilterOptions FilterInfo `json:"FilterOptions"`
}
