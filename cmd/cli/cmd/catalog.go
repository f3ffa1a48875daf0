// Package cmd - catalog command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopcost/core/catalog"
	"shopcost/internal/config"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the pricing catalog",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// catalogValidateCmd loads the catalog and reports what it found
var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a catalog file or directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Get().CatalogPath
		if len(args) > 0 {
			path = args[0]
		}

		ctx, err := catalog.Load(path)
		if err != nil {
			return err
		}

		fmt.Printf("Catalog OK: %s\n", path)
		fmt.Printf("  Parts:         %d\n", len(ctx.Parts))
		fmt.Printf("  Stock rules:   %d parts\n", len(ctx.StockRules))
		fmt.Printf("  Pricing rules: %d\n", len(ctx.PricingRules))
		fmt.Printf("  Finishes:      %d\n", len(ctx.FinishPrices))
		fmt.Printf("  Glass types:   %d\n", len(ctx.GlassPrices))
		if ctx.DefaultMethod != "" {
			fmt.Printf("  Default method: %s\n", ctx.DefaultMethod)
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
}
