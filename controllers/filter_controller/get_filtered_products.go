package filter_controller

import (
	"net/http"
	"strings"

	"github.com/Modeva-Ecommerce/product-filter-api/models"
	"github.com/gin-gonic/gin"
)

// GetFilteredProducts godoc
// @Summary Filter products
// @Description Filters the catalog by inclusive price range and size, highlights words in descriptions and summarises the result (price bounds, sizes, ten most common description words).
// @Tags Filter
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param minprice query number false "Minimum price (inclusive)"
// @Param maxprice query number false "Maximum price (inclusive)"
// @Param size query string false "Size, matched case-insensitively"
// @Param highlight query string false "Comma separated words to wrap in <em></em>"
// @Success 200 {object} models.FilteredProductResponse
// @Failure 400 {object} models.ApiResponse "Invalid price"
// @Failure 401 {object} models.ApiResponse "Missing or invalid credentials"
// @Failure 429 {object} models.ApiResponse "Too many requests"
// @Router /Filter [get]
func (fc *FilterController) GetFilteredProducts(c *gin.Context) {
	criteria, err := parseCriteria(c.Request.URL.Query())
	if err != nil {
		fc.logger.Warn().Err(err).Str("query", c.Request.URL.RawQuery).Msg("rejected filter request")
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	fc.logger.Info().
		Str("request_id", c.GetString(models.ContextKeyRequestID)).
		Str("minprice", formatPrice(criteria.MinPrice)).
		Str("maxprice", formatPrice(criteria.MaxPrice)).
		Str("size", criteria.Size).
		Strs("highlight", criteria.Highlight).
		Msg("received filter request")

	ctx := c.Request.Context()
	if ctx.Err() != nil {
		c.Abort()
		return
	}

	catalog := fc.catalog.GetProducts(ctx)

	if ctx.Err() != nil {
		fc.logger.Debug().Msg("client went away before filtering")
		c.Abort()
		return
	}

	result := fc.engine.Apply(catalog.Products, criteria)

	fc.logger.Info().Int("count", len(result.Product)).Msg("filtered products")
	fc.logger.Info().
		Float64("minPrice", result.FilterOptions.MinPrice).
		Float64("maxPrice", result.FilterOptions.MaxPrice).
		Str("sizes", strings.Join(result.FilterOptions.Sizes, ", ")).
		Msg("generated filter options")

	c.JSON(http.StatusOK, result)
}
