package services

import (
	"context"

	catalog_cache "github.com/Modeva-Ecommerce/product-filter-api/cache"
	"github.com/Modeva-Ecommerce/product-filter-api/models"
	"github.com/rs/zerolog"
)

// CachedCatalog serves snapshots from a store and falls back to the wrapped
// source on a miss. Callers share the returned snapshot and must not mutate it.
type CachedCatalog struct {
	source CatalogSource
	store  catalog_cache.CatalogStore
	logger zerolog.Logger
}

func NewCachedCatalog(source CatalogSource, store catalog_cache.CatalogStore, logger zerolog.Logger) *CachedCatalog {
	if store == nil {
		store = catalog_cache.NoopStore{}
	}
	return &CachedCatalog{
		source: source,
		store:  store,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// GetProducts returns the cached snapshot or fetches a fresh one. Empty
// results are not cached since they usually mean the upstream failed.
func (c *CachedCatalog) GetProducts(ctx context.Context) models.ProductList {
	if list, ok := c.store.Get(ctx); ok {
		c.logger.Debug().Int("count", list.Len()).Msg("catalog cache hit")
		return list
	}

	list := c.source.GetProducts(ctx)
	if list.Len() > 0 {
		c.store.Set(ctx, list)
	}
	return list
}

// Invalidate drops the cached snapshot.
func (c *CachedCatalog) Invalidate(ctx context.Context) {
	c.store.Invalidate(ctx)
	c.logger.Info().Msg("catalog cache invalidated")
}
