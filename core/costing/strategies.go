package costing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"shopcost/core/formula"
	"shopcost/core/types"
)

// salePriceStrategy applies an explicit sale price, bypassing every
// downstream markup rule.
type salePriceStrategy struct{}

func (salePriceStrategy) name() string { return types.BasisSalePrice }

func (salePriceStrategy) price(in priceInput) (types.CostBreakdown, bool) {
	if in.part == nil || in.part.SalePrice == nil {
		return types.CostBreakdown{}, false
	}
	unit := *in.part.SalePrice
	total := unit.Mul(in.qty)
	return types.CostBreakdown{
		Method:    types.BasisSalePrice,
		UnitCost:  unit,
		TotalCost: total,
		Details: fmt.Sprintf("%s: sale price %s x qty %s = %s",
			in.line.PartNumber, unit.StringFixed(2), in.qty.String(), total.StringFixed(2)),
	}, true
}

// linearFootStrategy prices hardware sold by the linear foot whose
// length comes from a formula: formula result is inches, cost is the
// per-foot part cost.
type linearFootStrategy struct{}

func (linearFootStrategy) name() string { return types.BasisLinearFoot }

func (linearFootStrategy) price(in priceInput) (types.CostBreakdown, bool) {
	if in.line.PartType != types.PartTypeHardware || in.line.Formula == "" {
		return types.CostBreakdown{}, false
	}
	if in.line.Unit != "LF" && in.line.Unit != "IN" {
		return types.CostBreakdown{}, false
	}
	if in.part == nil || !in.part.Cost.IsPositive() {
		return types.CostBreakdown{}, false
	}

	inches := formula.Evaluate(in.line.Formula, in.vars)
	feet := inches / 12
	unit := in.part.Cost.Mul(decimal.NewFromFloat(feet))
	total := unit.Mul(in.qty)
	return types.CostBreakdown{
		Method:    types.BasisLinearFoot,
		UnitCost:  unit,
		TotalCost: total,
		Details: fmt.Sprintf("%s: formula %q = %.3f in = %.4f ft x %s/ft x qty %s = %s",
			in.line.PartNumber, in.line.Formula, inches, feet,
			in.part.Cost.StringFixed(2), in.qty.String(), total.StringFixed(2)),
	}, true
}

// genericFormulaStrategy evaluates a line formula for non-stock parts.
// With a per-unit part cost the result scales it; without one the
// formula result is the cost directly (legacy passthrough).
type genericFormulaStrategy struct{}

func (genericFormulaStrategy) name() string { return types.BasisFormula }

func (genericFormulaStrategy) price(in priceInput) (types.CostBreakdown, bool) {
	if in.line.Formula == "" || in.line.PartType.IsStock() {
		return types.CostBreakdown{}, false
	}

	result := formula.Evaluate(in.line.Formula, in.vars)
	if in.part != nil && in.part.Cost.IsPositive() {
		unit := in.part.Cost.Mul(decimal.NewFromFloat(result))
		total := unit.Mul(in.qty)
		return types.CostBreakdown{
			Method:    types.BasisFormula,
			UnitCost:  unit,
			TotalCost: total,
			Details: fmt.Sprintf("%s: formula %q = %.3f x unit cost %s x qty %s = %s",
				in.line.PartNumber, in.line.Formula, result,
				in.part.Cost.StringFixed(2), in.qty.String(), total.StringFixed(2)),
		}, true
	}

	// No unit cost on record: the formula result is the cost itself,
	// with no implicit quantity scaling.
	total := decimal.NewFromFloat(result)
	return types.CostBreakdown{
		Method:    types.BasisFormulaDirect,
		UnitCost:  total,
		TotalCost: total,
		Details: fmt.Sprintf("%s: formula %q = %s (direct, no unit cost on record)",
			in.line.PartNumber, in.line.Formula, total.StringFixed(2)),
	}, true
}

// glassAreaStrategy prices glass by square footage against the glass
// price table.
type glassAreaStrategy struct{}

func (glassAreaStrategy) name() string { return types.BasisGlassArea }

func (glassAreaStrategy) price(in priceInput) (types.CostBreakdown, bool) {
	if in.line.PartType != types.PartTypeGlass || in.part == nil {
		return types.CostBreakdown{}, false
	}
	width, height := in.line.Width, in.line.Height
	if width <= 0 || height <= 0 {
		width, height = in.dims.Width, in.dims.Height
	}
	if width <= 0 || height <= 0 {
		return types.CostBreakdown{}, false
	}
	rate := in.ctx.GlassPricePerSqFt(in.part.GlassType)
	if !rate.IsPositive() {
		return types.CostBreakdown{}, false
	}

	sqft := width * height / 144
	unit := rate.Mul(decimal.NewFromFloat(sqft))
	total := unit.Mul(in.qty)
	return types.CostBreakdown{
		Method:    types.BasisGlassArea,
		UnitCost:  unit,
		TotalCost: total,
		Details: fmt.Sprintf("%s: %s glass %.2f x %.2f in = %.3f sqft x %s/sqft x qty %s = %s",
			in.line.PartNumber, in.part.GlassType, width, height, sqft,
			rate.StringFixed(2), in.qty.String(), total.StringFixed(2)),
	}, true
}

// pricingRuleStrategy applies a generic per-part pricing rule. The
// rule's base price is exposed to its formula as the basePrice variable.
type pricingRuleStrategy struct{}

func (pricingRuleStrategy) name() string { return types.BasisPricingRule }

func (pricingRuleStrategy) price(in priceInput) (types.CostBreakdown, bool) {
	rule, ok := in.ctx.PricingRules[in.line.PartNumber]
	if !ok || !rule.IsActive {
		return types.CostBreakdown{}, false
	}

	if rule.Formula != "" {
		base, _ := rule.BasePrice.Float64()
		result := formula.Evaluate(rule.Formula, in.vars.With("basePrice", base))
		unit := decimal.NewFromFloat(result)
		total := unit.Mul(in.qty)
		return types.CostBreakdown{
			Method:    types.BasisPricingRule,
			UnitCost:  unit,
			TotalCost: total,
			Details: fmt.Sprintf("%s: pricing rule formula %q (basePrice=%s) = %s x qty %s = %s",
				in.line.PartNumber, rule.Formula, rule.BasePrice.StringFixed(2),
				unit.StringFixed(2), in.qty.String(), total.StringFixed(2)),
		}, true
	}

	total := rule.BasePrice.Mul(in.qty)
	return types.CostBreakdown{
		Method:    types.BasisPricingRule,
		UnitCost:  rule.BasePrice,
		TotalCost: total,
		Details: fmt.Sprintf("%s: pricing rule base price %s x qty %s = %s",
			in.line.PartNumber, rule.BasePrice.StringFixed(2), in.qty.String(), total.StringFixed(2)),
	}, true
}

// directCostStrategy is the cascade terminator: direct part cost times
// quantity, or a zero line tagged no_cost_found.
type directCostStrategy struct{}

func (directCostStrategy) name() string { return types.BasisDirectCost }

func (directCostStrategy) price(in priceInput) (types.CostBreakdown, bool) {
	if in.part != nil && in.part.Cost.IsPositive() {
		total := in.part.Cost.Mul(in.qty)
		return types.CostBreakdown{
			Method:    types.BasisDirectCost,
			UnitCost:  in.part.Cost,
			TotalCost: total,
			Details: fmt.Sprintf("%s: direct cost %s x qty %s = %s",
				in.line.PartNumber, in.part.Cost.StringFixed(2), in.qty.String(), total.StringFixed(2)),
		}, true
	}
	return types.CostBreakdown{
		Method:  types.BasisNoCostFound,
		Details: fmt.Sprintf("%s: no cost source found", in.line.PartNumber),
	}, true
}
