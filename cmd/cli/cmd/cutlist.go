// Package cmd - cutlist command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shopcost/core/aggregate"
	"shopcost/core/order"
)

// cutlistCmd represents the cutlist command
var cutlistCmd = &cobra.Command{
	Use:   "cutlist <order.json>",
	Short: "Print the shop cut list for an order",
	Long: `Group an order's extrusion cuts by product, panel size, part, and
cut length, without pricing anything.

Examples:
  shopcost cutlist order.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCutlist,
}

func runCutlist(cmd *cobra.Command, args []string) error {
	o, err := order.Load(args[0])
	if err != nil {
		return err
	}

	groups := aggregate.CutList(o.Lines)
	if len(groups) == 0 {
		fmt.Println("No extrusion cuts in this order.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tSIZE\tPART\tCUT LEN\tPER UNIT\tUNITS\tTOTAL")
	for _, g := range groups {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\"\t%g\t%d\t%g\n",
			g.ProductName, g.PanelSize, g.PartNumber,
			g.CutLength, g.QtyPerUnit, g.UnitCount, g.TotalQty)
	}
	return tw.Flush()
}
