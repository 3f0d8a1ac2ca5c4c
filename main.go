// @title Product Filter API
// @version 1.0
// @description Filters a remote product catalog by price and size, highlights description words and summarises the result.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.basic BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalog_cache "github.com/Modeva-Ecommerce/product-filter-api/cache"
	"github.com/Modeva-Ecommerce/product-filter-api/config"
	"github.com/Modeva-Ecommerce/product-filter-api/controllers/filter_controller"
	_ "github.com/Modeva-Ecommerce/product-filter-api/docs"
	"github.com/Modeva-Ecommerce/product-filter-api/middleware"
	"github.com/Modeva-Ecommerce/product-filter-api/routes"
	"github.com/Modeva-Ecommerce/product-filter-api/services"
	"github.com/Modeva-Ecommerce/product-filter-api/services/filter_engine"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLoggerFromConfig(cfg, os.Stdout)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis backs the rate limiter and, optionally, the catalog cache
	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		rdb, err = config.ConnectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			if cfg.Cache.Driver == config.CacheDriverRedis {
				logger.Fatal().Err(err).Msg("redis is required by CACHE_DRIVER=redis")
			}
			logger.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
			rdb = nil
		} else {
			logger.Info().Msg("connected to redis")
			defer rdb.Close()
		}
	} else {
		logger.Warn().Msg("REDIS_URL not set, rate limiting disabled")
	}

	store, err := catalog_cache.NewStore(cfg.Cache.Driver, cfg.Cache.TTL, rdb, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("catalog cache")
	}

	source := services.NewCatalogSource(cfg.Catalog.URL, cfg.Catalog.Timeout, logger)
	catalog := services.NewCachedCatalog(source, store, logger)

	if path, ok := services.FilePathFromURL(cfg.Catalog.URL); ok && cfg.Cache.Driver != config.CacheDriverNone {
		watcher, err := services.NewCatalogWatcher(path, func() {
			catalog.Invalidate(context.Background())
		}, logger)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("catalog file not watched")
		} else {
			defer watcher.Stop()
		}
	}

	engine := filter_engine.NewEngine(
		filter_engine.WithTopWords(cfg.Filter.TopWords),
		filter_engine.WithRanker(filter_engine.NewWordRanker(filter_engine.WithStemming(cfg.Filter.StemWords))),
	)

	controller := filter_controller.New(catalog, engine, filter_controller.HealthInfo{
		CatalogURL:  cfg.Catalog.URL,
		CacheDriver: cfg.Cache.Driver,
	}, logger)

	if cfg.Auth.Enabled && cfg.Auth.Username == "" && cfg.Auth.PasswordHash == "" {
		logger.Warn().Msg("no BASIC_AUTH credentials configured, any non-empty Basic pair is accepted")
	}

	router := routes.NewRouter(routes.RouterOptions{
		Controller:     controller,
		Logger:         logger,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AuthEnabled:    cfg.Auth.Enabled,
		Auth: middleware.AuthOptions{
			Username:     cfg.Auth.Username,
			PasswordHash: cfg.Auth.PasswordHash,
			JWTSecret:    cfg.Auth.JWTSecret,
		},
		Redis:           rdb,
		RateLimitMax:    cfg.Rate.Max,
		RateLimitWindow: cfg.Rate.Window,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Str("catalog", cfg.Catalog.URL).Msg("server is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := config.WithTimeout()
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
