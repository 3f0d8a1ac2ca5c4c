package filter_controller

import (
	"github.com/Modeva-Ecommerce/product-filter-api/services"
	"github.com/Modeva-Ecommerce/product-filter-api/services/filter_engine"
	"github.com/rs/zerolog"
)

// HealthInfo is reported by GET /health.
type HealthInfo struct {
	Status      string `json:"status" example:"ok"`
	CatalogURL  string `json:"catalog_url"`
	CacheDriver string `json:"cache_driver" example:"memory"`
}

// FilterController serves the filter endpoint from a catalog source.
type FilterController struct {
	catalog services.CatalogSource
	engine  *filter_engine.Engine
	health  HealthInfo
	logger  zerolog.Logger
}

// New creates a controller. A nil engine means filter_engine.NewEngine().
func New(catalog services.CatalogSource, engine *filter_engine.Engine, health HealthInfo, logger zerolog.Logger) *FilterController {
	if engine == nil {
		engine = filter_engine.NewEngine()
	}
	if health.Status == "" {
		health.Status = "ok"
	}
	return &FilterController{
		catalog: catalog,
		engine:  engine,
		health:  health,
		logger:  logger.With().Str("component", "filter").Logger(),
	}
}
