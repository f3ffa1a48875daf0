// Package costing prices BOM lines through an ordered decision cascade.
//
// Each branch of the cascade is an independent strategy; the engine
// walks them in order and the first strategy that applies produces the
// cost. The order is part of the pricing contract:
//
//	sale-price override
//	linear-foot hardware
//	generic formula
//	glass area
//	stock-length methods (full stock / percentage / hybrid)
//	generic pricing rule
//	direct part cost
//	no_cost_found
//
// No error ever crosses this boundary: a line the cascade cannot price
// comes back as a $0 breakdown tagged no_cost_found so a human can
// investigate without the rest of the order failing.
package costing

import (
	"github.com/shopspring/decimal"

	"shopcost/core/types"
)

// priceInput bundles everything a strategy may consult
type priceInput struct {
	line   types.LineItem
	part   *types.PartRecord
	dims   types.Dimensions
	vars   types.Variables
	method types.CostingMethod
	ctx    *types.PricingContext
	qty    decimal.Decimal
}

// strategy is one branch of the costing cascade. price returns false
// when the branch does not apply and the cascade should continue.
type strategy interface {
	name() string
	price(in priceInput) (types.CostBreakdown, bool)
}

// Engine prices BOM lines. It holds no per-run state; one engine can
// serve concurrent runs as long as each run owns its context.
type Engine struct {
	strategies []strategy
}

// NewEngine builds an engine with the standard cascade
func NewEngine() *Engine {
	return &Engine{
		strategies: []strategy{
			salePriceStrategy{},
			linearFootStrategy{},
			genericFormulaStrategy{},
			glassAreaStrategy{},
			stockLengthStrategy{},
			pricingRuleStrategy{},
			directCostStrategy{},
		},
	}
}

// PriceLine prices one BOM line under the chosen costing method. An
// invalid or empty method falls back to the context default, then to
// full-stock.
func (e *Engine) PriceLine(line types.LineItem, dims types.Dimensions, method types.CostingMethod, ctx *types.PricingContext) types.CostBreakdown {
	if !method.Valid() {
		method = ctx.DefaultMethod
	}
	if !method.Valid() {
		method = types.MethodFullStock
	}

	qty := line.Quantity
	if qty < 0 {
		qty = 0
	}

	in := priceInput{
		line:   line,
		part:   ctx.Part(line.PartNumber),
		dims:   dims,
		vars:   dims.Variables(),
		method: method,
		ctx:    ctx,
		qty:    decimal.NewFromFloat(qty),
	}

	for _, s := range e.strategies {
		if breakdown, ok := s.price(in); ok {
			return clampBreakdown(breakdown)
		}
	}

	// Unreachable: directCostStrategy always applies.
	return types.CostBreakdown{Method: types.BasisNoCostFound}
}

// clampBreakdown enforces the no-negative-cost invariant on every field
func clampBreakdown(b types.CostBreakdown) types.CostBreakdown {
	b.UnitCost = floorZero(b.UnitCost)
	b.TotalCost = floorZero(b.TotalCost)
	b.FinishCost = floorZero(b.FinishCost)
	if b.UsedPortionCost != nil {
		v := floorZero(*b.UsedPortionCost)
		b.UsedPortionCost = &v
	}
	if b.RemainingPortionCost != nil {
		v := floorZero(*b.RemainingPortionCost)
		b.RemainingPortionCost = &v
	}
	return b
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
