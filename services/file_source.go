package services

import (
	"context"
	"fmt"
	"os"

	"github.com/Modeva-Ecommerce/product-filter-api/models"
	"github.com/rs/zerolog"
)

// FileCatalogSource reads the catalog from a local JSON file on every call.
type FileCatalogSource struct {
	path   string
	logger zerolog.Logger
}

func NewFileCatalogSource(path string, logger zerolog.Logger) *FileCatalogSource {
	return &FileCatalogSource{
		path:   path,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Path returns the watched file.
func (s *FileCatalogSource) Path() string {
	return s.path
}

func (s *FileCatalogSource) GetProducts(ctx context.Context) models.ProductList {
	if err := ctx.Err(); err != nil {
		return emptyList()
	}

	list, err := s.read()
	if err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("error reading catalog file")
		return emptyList()
	}
	s.logger.Debug().Int("count", list.Len()).Str("path", s.path).Msg("loaded catalog file")
	return list
}

func (s *FileCatalogSource) read() (models.ProductList, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return emptyList(), fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return decodeProductList(f)
}
