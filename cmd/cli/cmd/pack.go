// Package cmd - pack command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopcost/core/packing"
)

var (
	packLengths []float64
	packStock   float64
	packStocks  []float64
	packKerf    float64
)

// packCmd represents the pack command
var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Optimize cut lengths into stock pieces",
	Long: `Pack a list of cut lengths into the fewest stock pieces.

With --stock, every piece uses one stock length. With --stocks, each
piece picks the smallest listed length that fits its first cut.

Examples:
  shopcost pack --lengths 40,40,40 --stock 96
  shopcost pack --lengths 100,30,30 --stocks 72,144 --kerf 0.25`,
	RunE: runPack,
}

func init() {
	packCmd.Flags().Float64SliceVarP(&packLengths, "lengths", "l", nil, "cut lengths in inches")
	packCmd.Flags().Float64Var(&packStock, "stock", 0, "single stock length in inches")
	packCmd.Flags().Float64SliceVar(&packStocks, "stocks", nil, "candidate stock lengths in inches")
	packCmd.Flags().Float64VarP(&packKerf, "kerf", "k", packing.DefaultKerf, "saw kerf in inches")
	packCmd.MarkFlagRequired("lengths")
}

func runPack(cmd *cobra.Command, args []string) error {
	switch {
	case len(packStocks) > 0:
		result := packing.PackMulti(packLengths, packStocks, packKerf)
		fmt.Printf("Pieces needed:  %d\n", result.PiecesNeeded)
		for _, stock := range packStocks {
			if n := result.PiecesByLength[stock]; n > 0 {
				fmt.Printf("  %g\" stock:    %d\n", stock, n)
			}
		}
		fmt.Printf("Total stock:    %g\"\n", result.TotalStockLength)
		fmt.Printf("Waste:          %g\" (%.1f%%)\n", result.WasteLength, result.WastePercent)
	case packStock > 0:
		result := packing.Pack(packLengths, packStock, packKerf)
		fmt.Printf("Pieces needed:  %d x %g\"\n", result.PiecesNeeded, packStock)
		fmt.Printf("Total stock:    %g\"\n", result.TotalStockLength)
		fmt.Printf("Waste:          %g\" (%.1f%%)\n", result.WasteLength, result.WastePercent)
	default:
		return fmt.Errorf("pass --stock or --stocks")
	}
	return nil
}
