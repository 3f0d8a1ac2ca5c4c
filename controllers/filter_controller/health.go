package filter_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/product-filter-api/models"
	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} models.ApiResponse{data=filter_controller.HealthInfo}
// @Router /health [get]
func (fc *FilterController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Service is healthy", fc.health))
}
