package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/product-filter-api/models"
	"github.com/rs/zerolog"
)

// maxCatalogBytes caps how much of an upstream payload is decoded.
const maxCatalogBytes = 16 << 20

// CatalogSource fetches the current catalog. Implementations absorb every
// failure and return an empty list instead of an error.
type CatalogSource interface {
	GetProducts(ctx context.Context) models.ProductList
}

// NewCatalogSource returns a FileCatalogSource for file:// URLs and bare
// paths, and a ProductService for http(s) URLs.
func NewCatalogSource(rawURL string, timeout time.Duration, logger zerolog.Logger) CatalogSource {
	if path, ok := FilePathFromURL(rawURL); ok {
		return NewFileCatalogSource(path, logger)
	}
	return NewProductService(rawURL, timeout, logger)
}

// FilePathFromURL reports whether rawURL names a local file and returns its path.
func FilePathFromURL(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL, true
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return "", false
	case "file":
		if u.Path == "" {
			return u.Opaque, u.Opaque != ""
		}
		return u.Path, true
	case "":
		return rawURL, true
	default:
		return "", false
	}
}

// decodeProductList reads {"products": [...]}. Property names match
// case-insensitively. A missing or null products array decodes to an empty one.
func decodeProductList(r io.Reader) (models.ProductList, error) {
	var list models.ProductList
	if err := json.NewDecoder(io.LimitReader(r, maxCatalogBytes)).Decode(&list); err != nil {
		return models.ProductList{Products: []models.Product{}}, fmt.Errorf("decode catalog: %w", err)
	}
	if list.Products == nil {
		list.Products = []models.Product{}
	}
	return list, nil
}

func emptyList() models.ProductList {
	return models.ProductList{Products: []models.Product{}}
}
