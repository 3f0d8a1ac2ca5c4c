package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Modeva-Ecommerce/product-filter-api/config"
	"github.com/Modeva-Ecommerce/product-filter-api/models"
	"github.com/Modeva-Ecommerce/product-filter-api/services"
	"github.com/Modeva-Ecommerce/product-filter-api/services/filter_engine"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	queryCatalog   string
	queryMinPrice  float64
	queryMaxPrice  float64
	querySize      string
	queryHighlight string
	queryTop       int
	queryStem      bool
	queryJSON      bool
	queryVerbose   bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a filter against a catalog file or URL without the server",
	RunE:  runQuery,
}

func init() {
	f := queryCmd.Flags()
	f.StringVar(&queryCatalog, "catalog", config.DefaultCatalogURL, "catalog URL or JSON file")
	f.Float64Var(&queryMinPrice, "minprice", 0, "minimum price (inclusive)")
	f.Float64Var(&queryMaxPrice, "maxprice", 0, "maximum price (inclusive)")
	f.StringVar(&querySize, "size", "", "size, case-insensitive")
	f.StringVar(&queryHighlight, "highlight", "", "comma separated words to highlight")
	f.IntVar(&queryTop, "top", filter_engine.DefaultTopWords, "number of common words")
	f.BoolVar(&queryStem, "stem", false, "group common words by stem")
	f.BoolVar(&queryJSON, "json", false, "print the JSON response body")
	f.BoolVarP(&queryVerbose, "verbose", "v", false, "log catalog retrieval")
}

func runQuery(cmd *cobra.Command, args []string) error {
	criteria := models.FilterCriteria{
		Size:      querySize,
		Highlight: filter_engine.ParseHighlightTerms(queryHighlight),
	}
	if cmd.Flags().Changed("minprice") {
		criteria.MinPrice = &queryMinPrice
	}
	if cmd.Flags().Changed("maxprice") {
		criteria.MaxPrice = &queryMaxPrice
	}

	logger := zerolog.Nop()
	if queryVerbose {
		logger = config.NewLogger("debug", "console", os.Stderr)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	catalog := services.NewCatalogSource(queryCatalog, 20*time.Second, logger).GetProducts(ctx)
	if catalog.Len() == 0 {
		printWarning(cmd.ErrOrStderr(), "catalog %s is empty or unreachable", queryCatalog)
	}

	engine := filter_engine.NewEngine(
		filter_engine.WithTopWords(queryTop),
		filter_engine.WithRanker(filter_engine.NewWordRanker(filter_engine.WithStemming(queryStem))),
	)
	result := engine.Apply(catalog.Products, criteria)

	out := cmd.OutOrStdout()
	if queryJSON {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprint(out, formatResult(result))
	return nil
}
