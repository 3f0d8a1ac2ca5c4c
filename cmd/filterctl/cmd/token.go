package cmd

import (
	"fmt"
	"time"

	"github.com/Modeva-Ecommerce/product-filter-api/config"
	"github.com/Modeva-Ecommerce/product-filter-api/utils"
	"github.com/spf13/cobra"
)

var (
	tokenClient string
	tokenExpiry time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a Bearer token for an API client (signed with JWT_SECRET)",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenClient, "client", "", "client name stored as the token subject (required)")
	tokenCmd.Flags().DurationVar(&tokenExpiry, "expiry", 0, "token lifetime (default JWT_EXPIRY)")
	_ = tokenCmd.MarkFlagRequired("client")
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	expiry := cfg.Auth.JWTExpiry
	if tokenExpiry > 0 {
		expiry = tokenExpiry
	}

	token, err := utils.GenerateJWT(cfg.Auth.JWTSecret, tokenClient, expiry)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
