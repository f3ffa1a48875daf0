package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"shopcost/core/types"
)

// CLIFormatter renders a human-readable pricing report
type CLIFormatter struct {
	// ShowDetails includes the per-line audit narrative
	ShowDetails bool

	// ShowCutList includes the shop cut list section
	ShowCutList bool

	// Currency is the ISO display currency code ("" means USD)
	Currency string
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render produces the CLI report
func (f *CLIFormatter) Render(w io.Writer, result *PricingResult) error {
	header := "ORDER PRICING"
	if result.OrderID != "" {
		header = fmt.Sprintf("ORDER PRICING  %s", result.OrderID)
	}
	fmt.Fprintln(w, header)
	if result.Customer != "" {
		fmt.Fprintf(w, "Customer: %s\n", result.Customer)
	}
	fmt.Fprintf(w, "Method: %s", result.Method)
	if result.Finish != "" {
		fmt.Fprintf(w, "   Finish: %s", result.Finish)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	if err := f.renderLines(w, result); err != nil {
		return err
	}
	if len(result.BOM) > 0 {
		if err := f.renderBOM(w, result.BOM); err != nil {
			return err
		}
	}
	if f.ShowCutList && len(result.CutList) > 0 {
		if err := f.renderCutList(w, result.CutList); err != nil {
			return err
		}
	}

	f.renderTotals(w, result)
	return nil
}

func (f *CLIFormatter) renderLines(w io.Writer, result *PricingResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PART\tTYPE\tQTY\tBASIS\tUNIT\tTOTAL")
	for _, pl := range result.Summary.Lines {
		fmt.Fprintf(tw, "%s\t%s\t%g\t%s\t%s\t%s\n",
			pl.Line.PartNumber,
			pl.Line.PartType,
			pl.Line.Quantity,
			pl.Breakdown.Method,
			f.money(pl.Breakdown.UnitCost),
			f.money(pl.Breakdown.TotalCost))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if f.ShowDetails {
		for _, pl := range result.Summary.Lines {
			if pl.Breakdown.Details == "" {
				continue
			}
			fmt.Fprintf(w, "  %s: %s\n", pl.Line.PartNumber, pl.Breakdown.Details)
		}
	}
	fmt.Fprintln(w)
	return nil
}

func (f *CLIFormatter) renderBOM(w io.Writer, bom []types.AggregatedLineItem) error {
	fmt.Fprintln(w, "BILL OF MATERIALS")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PART\tTYPE\tQTY\tCUT LEN\tSTOCK\tPIECES\tWASTE")
	for _, item := range bom {
		stock, pieces, waste := "-", "-", "-"
		if item.Packing != nil {
			stock = fmt.Sprintf("%g\"", item.StockLength)
			pieces = fmt.Sprintf("%d", item.Packing.PiecesNeeded)
			waste = fmt.Sprintf("%.1f%%", item.Packing.WastePercent)
		}
		cutLen := "-"
		if item.TotalCutLength > 0 {
			cutLen = fmt.Sprintf("%g\"", item.TotalCutLength)
		} else if item.CalculatedLength > 0 {
			cutLen = fmt.Sprintf("%g\"", item.CalculatedLength)
		}
		name := item.PartNumber
		if item.Width > 0 && item.Height > 0 {
			name = fmt.Sprintf("%s (%g x %g)", item.PartNumber, item.Width, item.Height)
		}
		fmt.Fprintf(tw, "%s\t%s\t%g\t%s\t%s\t%s\t%s\n",
			name, item.PartType, item.TotalQuantity, cutLen, stock, pieces, waste)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func (f *CLIFormatter) renderCutList(w io.Writer, groups []types.CutListGroup) error {
	fmt.Fprintln(w, "CUT LIST")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tSIZE\tPART\tCUT LEN\tPER UNIT\tUNITS\tTOTAL")
	for _, g := range groups {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\"\t%g\t%d\t%g\n",
			g.ProductName, g.PanelSize, g.PartNumber,
			g.CutLength, g.QtyPerUnit, g.UnitCount, g.TotalQty)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func (f *CLIFormatter) renderTotals(w io.Writer, result *PricingResult) {
	fmt.Fprintln(w, strings.Repeat("-", 40))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Markup eligible\t%s\n", f.money(result.Summary.MarkupEligible))
	if !result.Summary.PassThrough.IsZero() {
		fmt.Fprintf(tw, "Pass-through\t%s\n", f.money(result.Summary.PassThrough))
	}
	if !result.Summary.FinishTotal.IsZero() {
		fmt.Fprintf(tw, "Finish surcharge\t%s\n", f.money(result.Summary.FinishTotal))
	}
	fmt.Fprintf(tw, "TOTAL\t%s\n", f.money(result.Summary.TotalCost))
	tw.Flush()

	if len(result.Summary.NoCostParts) > 0 {
		fmt.Fprintf(w, "\nWARNING: no cost found for %s\n",
			strings.Join(result.Summary.NoCostParts, ", "))
	}
	fmt.Fprintf(w, "\nPriced %d lines in %s\n",
		len(result.Summary.Lines), result.Metadata.Duration)
}

// currencySymbols maps display currency codes to their symbols. Codes
// without a symbol render as a prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"CAD": "$",
	"AUD": "$",
	"EUR": "\u20ac",
	"GBP": "\u00a3",
}

func (f *CLIFormatter) money(d decimal.Decimal) string {
	if f.Currency == "" {
		return "$" + d.StringFixed(2)
	}
	if sym, ok := currencySymbols[f.Currency]; ok {
		return sym + d.StringFixed(2)
	}
	return f.Currency + " " + d.StringFixed(2)
}
