package filter_engine

import "github.com/Modeva-Ecommerce/product-filter-api/models"

func sampleCatalog() []models.Product {
	return []models.Product{
		{
			Title:       "Red Trouser",
			Price:       10,
			Sizes:       []string{"small", "medium", "large"},
			Description: "This trouser pairs with a green shirt.",
		},
		{
			Title:       "Blue Shirt",
			Price:       15,
			Sizes:       []string{"medium", "large"},
			Description: "Ideal for a formal event.",
		},
		{
			Title:       "Green Jacket",
			Price:       25,
			Sizes:       []string{"large", "x-large"},
			Description: "Perfect for winter and cold weather.",
		},
	}
}

func price(v float64) *float64 {
	return &v
}

func titles(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Title
	}
	return out
}
