// Package cmd - price command
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shopcost/core/aggregate"
	"shopcost/core/catalog"
	"shopcost/core/costing"
	"shopcost/core/order"
	"shopcost/core/output"
	"shopcost/core/types"
	"shopcost/internal/config"
	"shopcost/internal/logging"
)

var (
	catalogPath  string
	outputFormat string
	methodFlag   string
	finishFlag   string
	showDetails  bool
	showCutList  bool
)

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price <order.json>",
	Short: "Price an order's bill of materials",
	Long: `Price every line of an order against the catalog.

The order file is JSON: line items with part numbers, quantities,
dimensions, and optional cut formulas. The catalog is an HCL file or a
directory of HCL files.

Examples:
  shopcost price order.json
  shopcost price --catalog ./catalog order.json
  shopcost price --method PERCENTAGE_BASED --format json order.json`,
	Args: cobra.ExactArgs(1),
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "catalog file or directory (default from config)")
	priceCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	priceCmd.Flags().StringVarP(&methodFlag, "method", "m", "", "costing method (FULL_STOCK, PERCENTAGE_BASED, HYBRID)")
	priceCmd.Flags().StringVar(&finishFlag, "finish", "", "finish override for extrusion surcharges")
	priceCmd.Flags().BoolVarP(&showDetails, "details", "d", true, "show the per-line cost narrative")
	priceCmd.Flags().BoolVar(&showCutList, "cutlist", true, "include the shop cut list")
	priceCmd.Flags().SortFlags = false
}

func runPrice(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	cfg := config.Get()

	ctx, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	o, err := order.Load(args[0])
	if err != nil {
		return err
	}
	logging.Info("order loaded",
		zap.String("order", o.ID),
		zap.Int("lines", len(o.Lines)))

	method := resolveMethod(o, ctx, cfg)
	if o.Finish != "" {
		ctx.Finish = o.Finish
	}
	if finishFlag != "" {
		ctx.Finish = finishFlag
	}

	engine := costing.NewEngine()
	summary := engine.PriceOrder(o.Lines, method, ctx)

	result := &output.PricingResult{
		OrderID:  o.ID,
		Customer: o.Customer,
		Method:   method,
		Finish:   ctx.Finish,
		Summary:  summary,
		BOM:      aggregate.BOM(o.Lines, ctx.DefaultKerf),
		CutList:  aggregate.CutList(o.Lines),
		Metadata: output.RunMetadata{
			RunID:       uuid.New().String(),
			Timestamp:   startTime.Format(time.RFC3339),
			Duration:    time.Since(startTime).String(),
			CatalogPath: effectiveCatalogPath(cfg),
			Version:     toolVersion,
		},
	}

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, ok := output.ForFormat(format, output.Options{
		ShowDetails: showDetails,
		ShowCutList: showCutList,
		Currency:    cfg.Pricing.Currency,
	})
	if !ok {
		return fmt.Errorf("unknown output format %q", format)
	}
	return formatter.Render(os.Stdout, result)
}

// loadCatalog loads the catalog and layers config defaults under any
// settings the catalog left unset.
func loadCatalog(cfg *config.Config) (*types.PricingContext, error) {
	path := effectiveCatalogPath(cfg)
	if path == "" {
		return nil, fmt.Errorf("no catalog: pass --catalog or set catalog_path in config")
	}

	ctx, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	if ctx.PricePerLb.IsZero() && cfg.Pricing.PricePerLb > 0 {
		ctx.PricePerLb = decimal.NewFromFloat(cfg.Pricing.PricePerLb)
	}
	if ctx.DefaultKerf == 0 {
		ctx.DefaultKerf = cfg.Pricing.DefaultKerf
	}
	return ctx, nil
}

func effectiveCatalogPath(cfg *config.Config) string {
	if catalogPath != "" {
		return catalogPath
	}
	return cfg.CatalogPath
}

// resolveMethod picks the costing method: flag, then order, then
// catalog settings, then config default.
func resolveMethod(o *order.Order, ctx *types.PricingContext, cfg *config.Config) types.CostingMethod {
	if methodFlag != "" {
		if m, ok := types.ParseCostingMethod(methodFlag); ok {
			return m
		}
		logging.Warn("ignoring unknown costing method flag", zap.String("method", methodFlag))
	}
	fallback := ctx.DefaultMethod
	if fallback == "" {
		if m, ok := types.ParseCostingMethod(cfg.Pricing.DefaultMethod); ok {
			fallback = m
		} else {
			fallback = types.MethodFullStock
		}
	}
	return o.CostingMethod(fallback)
}
