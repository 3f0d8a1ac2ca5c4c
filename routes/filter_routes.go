package routes

import (
	"time"

	"github.com/Modeva-Ecommerce/product-filter-api/controllers/filter_controller"
	"github.com/Modeva-Ecommerce/product-filter-api/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterOptions carries everything NewRouter wires together.
type RouterOptions struct {
	Controller     *filter_controller.FilterController
	Logger         zerolog.Logger
	AllowedOrigins []string

	AuthEnabled bool
	Auth        middleware.AuthOptions

	// Redis is optional; without it requests are not rate limited.
	Redis           *redis.Client
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// NewRouter builds the gin engine with global middleware, docs and routes.
func NewRouter(opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(opts.Logger))

	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/health", opts.Controller.Health)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	SetupFilterRoutes(router, opts)
	return router
}

// SetupFilterRoutes registers GET /Filter (and /filter) behind the rate
// limiter and, when enabled, the credential gate.
func SetupFilterRoutes(router *gin.Engine, opts RouterOptions) {
	filter := router.Group("")
	filter.Use(middleware.RateLimiter(opts.Redis, opts.RateLimitMax, opts.RateLimitWindow, opts.Logger))
	if opts.AuthEnabled {
		filter.Use(middleware.AuthMiddleware(opts.Auth, opts.Logger))
	}
	{
		filter.GET("/Filter", opts.Controller.GetFilteredProducts)
		filter.GET("/filter", opts.Controller.GetFilteredProducts)
	}
}
