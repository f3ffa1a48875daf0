package costing

import (
	"github.com/shopspring/decimal"

	"shopcost/core/types"
)

// PricedLine pairs a BOM line with its cost breakdown
type PricedLine struct {
	Line      types.LineItem      `json:"line"`
	Breakdown types.CostBreakdown `json:"breakdown"`
}

// OrderSummary is the result of pricing every line of an order
type OrderSummary struct {
	// Lines holds each priced line in input order
	Lines []PricedLine `json:"lines"`

	// TotalCost is the sum of all line totals
	TotalCost decimal.Decimal `json:"total_cost"`

	// MarkupEligible is the portion of TotalCost subject to markup
	MarkupEligible decimal.Decimal `json:"markup_eligible"`

	// PassThrough is the hybrid pass-through remainder total
	PassThrough decimal.Decimal `json:"pass_through"`

	// FinishTotal is the finish surcharge total
	FinishTotal decimal.Decimal `json:"finish_total"`

	// NoCostParts lists part numbers that priced to no_cost_found,
	// surfaced for a human to investigate
	NoCostParts []string `json:"no_cost_parts,omitempty"`
}

// PriceOrder prices every line under one method and context. A line the
// cascade cannot price contributes $0 and its part number to
// NoCostParts; it never halts the rest of the order.
func (e *Engine) PriceOrder(lines []types.LineItem, method types.CostingMethod, ctx *types.PricingContext) OrderSummary {
	summary := OrderSummary{Lines: make([]PricedLine, 0, len(lines))}

	for _, line := range lines {
		dims := types.Dimensions{
			Width:    line.Width,
			Height:   line.Height,
			Quantity: line.Quantity,
		}
		breakdown := e.PriceLine(line, dims, method, ctx)

		summary.Lines = append(summary.Lines, PricedLine{Line: line, Breakdown: breakdown})
		summary.TotalCost = summary.TotalCost.Add(breakdown.TotalCost)
		summary.MarkupEligible = summary.MarkupEligible.Add(breakdown.MarkupEligible())
		summary.FinishTotal = summary.FinishTotal.Add(breakdown.FinishCost)
		if breakdown.RemainingPortionCost != nil {
			summary.PassThrough = summary.PassThrough.Add(*breakdown.RemainingPortionCost)
		}
		if breakdown.Method == types.BasisNoCostFound {
			summary.NoCostParts = append(summary.NoCostParts, line.PartNumber)
		}
	}
	return summary
}
