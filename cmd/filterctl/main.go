// filterctl is the operator CLI for the product filter service: cache
// seeding, client tokens, password hashes and offline queries.
package main

import (
	"os"

	"github.com/Modeva-Ecommerce/product-filter-api/cmd/filterctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
