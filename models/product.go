// ════════════════════════════════════════════════════════════
// CATALOG MODELS
// File: models/product.go
// ════════════════════════════════════════════════════════════

package models

// Product is a single catalog entry as served by the upstream source.
type Product struct {
	Title       string   `json:"title" example:"Red Trouser"`
	Price       float64  `json:"price" example:"10"`
	Sizes       []string `json:"sizes" example:"small,medium,large"`
	Description string   `json:"description" example:"This trouser pairs with a green shirt."`
}

// ProductList is the upstream payload: {"products": [...]}
type ProductList struct {
	Products []Product `json:"products"`
}

// Len returns the number of products in the snapshot.
func (l ProductList) Len() int {
	return len(l.Products)
}

// Clone returns a deep copy so callers can rewrite fields without touching
// a shared snapshot.
func (p Product) Clone() Product {
	out := p
	if p.Sizes != nil {
		out.Sizes = make([]string, len(p.Sizes))
		copy(out.Sizes, p.Sizes)
	}
	return out
}
