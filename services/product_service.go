package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Modeva-Ecommerce/product-filter-api/models"
	"github.com/rs/zerolog"
)

// ProductService fetches the catalog from a remote JSON endpoint.
type ProductService struct {
	client *http.Client
	url    string
	logger zerolog.Logger
}

// NewProductService creates a service for url with a per-request timeout.
func NewProductService(url string, timeout time.Duration, logger zerolog.Logger) *ProductService {
	return &ProductService{
		client: &http.Client{Timeout: timeout},
		url:    url,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// URL returns the upstream address.
func (s *ProductService) URL() string {
	return s.url
}

// GetProducts fetches and decodes the catalog. Network errors, non-2xx
// statuses and malformed payloads are logged and yield an empty list.
func (s *ProductService) GetProducts(ctx context.Context) models.ProductList {
	s.logger.Info().Str("url", s.url).Msg("fetching products from external API")

	list, err := s.fetch(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("url", s.url).Msg("error fetching products")
		return emptyList()
	}
	return list
}

func (s *ProductService) fetch(ctx context.Context) (models.ProductList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return emptyList(), fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return emptyList(), fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn().Int("status", resp.StatusCode).Str("url", s.url).Msg("failed to fetch products")
		return emptyList(), nil
	}
	s.logger.Info().Str("url", s.url).Msg("received successful response")

	list, err := decodeProductList(resp.Body)
	if err != nil {
		return emptyList(), err
	}
	s.logger.Info().Int("count", list.Len()).Msg("deserialized products")
	return list, nil
}
