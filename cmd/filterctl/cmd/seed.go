package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	catalog_cache "github.com/Modeva-Ecommerce/product-filter-api/cache"
	"github.com/Modeva-Ecommerce/product-filter-api/config"
	"github.com/Modeva-Ecommerce/product-filter-api/services"
	"github.com/spf13/cobra"
)

var seedURL string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fetch the catalog and store it in the Redis cache",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedURL, "catalog", "", "catalog URL or file (default CATALOG_URL)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Redis.URL == "" {
		return fmt.Errorf("REDIS_URL is not set")
	}
	if seedURL != "" {
		cfg.Catalog.URL = seedURL
	}

	ctx, cancel := config.WithCustomTimeout(cfg.Catalog.Timeout + 10*time.Second)
	defer cancel()

	logger := config.NewLogger(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	rdb, err := config.ConnectRedis(ctx, cfg.Redis.URL)
	if err != nil {
		return err
	}
	defer rdb.Close()

	store := catalog_cache.NewRedisStore(rdb, cfg.Cache.TTL, logger)
	n, err := seedCatalog(ctx, services.NewCatalogSource(cfg.Catalog.URL, cfg.Catalog.Timeout, logger), store)
	if err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), "cached %d products under %s (ttl %s)", n, store.Key(), cfg.Cache.TTL)
	return nil
}

// seedCatalog copies one fetch into store. An empty catalog is refused so a
// failing upstream never overwrites a good snapshot.
func seedCatalog(ctx context.Context, source services.CatalogSource, store catalog_cache.CatalogStore) (int, error) {
	list := source.GetProducts(ctx)
	if list.Len() == 0 {
		return 0, fmt.Errorf("catalog is empty or unreachable, nothing cached")
	}
	store.Set(ctx, list)
	return list.Len(), nil
}

func printSuccess(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, "✓ %s\n", fmt.Sprintf(format, args...))
}
