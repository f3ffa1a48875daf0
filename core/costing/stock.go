package costing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"shopcost/core/formula"
	"shopcost/core/stockrule"
	"shopcost/core/types"
)

// maxCutLength bounds the cut lengths fed into packing and usage math.
// Anything beyond this is a formula gone wrong, not a real cut.
const maxCutLength = 1e6

// stockLengthStrategy prices extrusion and cut-stock lines against
// their stock-length rules under the run's costing method, including
// the finish surcharge for non-mill-finish extrusions.
type stockLengthStrategy struct{}

func (stockLengthStrategy) name() string { return types.BasisFullStock }

func (stockLengthStrategy) price(in priceInput) (types.CostBreakdown, bool) {
	if !in.line.PartType.IsStock() {
		return types.CostBreakdown{}, false
	}

	required := requiredLength(in)
	if required <= 0 || required > maxCutLength {
		// A stock part with no computable length falls through to the
		// generic pricing rule or direct cost branches.
		return types.CostBreakdown{}, false
	}

	var width, height *float64
	if in.dims.Width > 0 {
		width = &in.dims.Width
	}
	if in.dims.Height > 0 {
		height = &in.dims.Height
	}
	rule := stockrule.Resolve(in.ctx.RulesFor(in.line.PartNumber), required, width, height)
	if rule == nil {
		// No rule covers the request; an expected outcome, the cascade
		// continues.
		return types.CostBreakdown{}, false
	}

	// A rule-authored formula overrides the line's cut length once the
	// rule is selected.
	if rule.Formula != "" {
		if v := formula.Evaluate(rule.Formula, in.vars); v > 0 && v <= maxCutLength {
			required = v
		}
	}

	qty := in.qty
	if rule.PiecesPerUnit != nil && *rule.PiecesPerUnit > 0 {
		qty = qty.Mul(decimal.NewFromFloat(*rule.PiecesPerUnit))
	}

	pricePerPiece, basis := piecePrice(in, rule)
	usage := required / rule.StockLength

	var detail strings.Builder
	fmt.Fprintf(&detail, "%s: cut %.3f in from %.0f in stock (usage %.1f%%), piece price %s (%s), qty %s",
		in.line.PartNumber, required, rule.StockLength, usage*100,
		pricePerPiece.StringFixed(2), basis, qty.String())

	breakdown := applyMethod(in.method, pricePerPiece, usage, qty, &detail)
	applyFinish(in, rule, required, usage, qty, &breakdown, &detail)
	breakdown.Details = detail.String()
	return breakdown, true
}

// requiredLength computes the cut length for a stock line: the line
// formula when present, the larger opening dimension for formula-less
// extrusions, the raw quantity otherwise.
func requiredLength(in priceInput) float64 {
	if in.line.Formula != "" {
		return formula.Evaluate(in.line.Formula, in.vars)
	}
	if in.line.CutLength > 0 {
		return in.line.CutLength
	}
	if in.line.PartType == types.PartTypeExtrusion {
		if in.dims.Width >= in.dims.Height {
			return in.dims.Width
		}
		return in.dims.Height
	}
	return in.line.Quantity
}

// piecePrice prices one full stock piece: weight-based when the part
// carries weight data and the run has a material price per pound, the
// rule's base price otherwise.
func piecePrice(in priceInput, rule *types.StockLengthRule) (decimal.Decimal, string) {
	if in.part != nil && in.part.WeightPerFoot > 0 && in.ctx.PricePerLb.IsPositive() {
		stockFeet := rule.StockLength / 12
		price := in.ctx.PricePerLb.Mul(decimal.NewFromFloat(in.part.WeightPerFoot * stockFeet))
		return price, fmt.Sprintf("%.3f lb/ft x %s/lb x %.2f ft",
			in.part.WeightPerFoot, in.ctx.PricePerLb.StringFixed(2), stockFeet)
	}
	return rule.BasePrice, "rule base price"
}

func applyMethod(method types.CostingMethod, pricePerPiece decimal.Decimal, usage float64, qty decimal.Decimal, detail *strings.Builder) types.CostBreakdown {
	usageDec := decimal.NewFromFloat(usage)

	switch method {
	case types.MethodPercentageBased:
		unit := pricePerPiece.Mul(usageDec)
		total := unit.Mul(qty)
		fmt.Fprintf(detail, "; percentage-based = %s", total.StringFixed(2))
		return types.CostBreakdown{
			Method:    types.BasisPercentageBased,
			UnitCost:  unit,
			TotalCost: total,
		}

	case types.MethodHybrid:
		if usage >= 0.5 {
			used := pricePerPiece.Mul(usageDec).Mul(qty)
			remaining := pricePerPiece.Mul(decimal.NewFromFloat(1 - usage)).Mul(qty)
			if remaining.IsNegative() {
				remaining = decimal.Zero
			}
			total := used.Add(remaining)
			fmt.Fprintf(detail, "; hybrid split used %s + remainder %s (pass-through) = %s",
				used.StringFixed(2), remaining.StringFixed(2), total.StringFixed(2))
			return types.CostBreakdown{
				Method:               types.BasisHybrid,
				UnitCost:             pricePerPiece,
				TotalCost:            total,
				UsedPortionCost:      &used,
				RemainingPortionCost: &remaining,
			}
		}
		// Below half a piece, hybrid behaves like percentage-based: one
		// markup-eligible amount, no split.
		unit := pricePerPiece.Mul(usageDec)
		total := unit.Mul(qty)
		fmt.Fprintf(detail, "; hybrid under 50%% usage, percentage-based = %s", total.StringFixed(2))
		return types.CostBreakdown{
			Method:    types.BasisHybrid,
			UnitCost:  unit,
			TotalCost: total,
		}

	default: // FULL_STOCK
		total := pricePerPiece.Mul(qty)
		fmt.Fprintf(detail, "; full stock = %s", total.StringFixed(2))
		return types.CostBreakdown{
			Method:    types.BasisFullStock,
			UnitCost:  pricePerPiece,
			TotalCost: total,
		}
	}
}

// applyFinish adds the finish surcharge for non-mill-finish extrusions.
// When the method charges the whole piece the surcharge covers the full
// stock length; otherwise only the required length is finished. The
// surcharge is markup-eligible, so on a hybrid split it folds into the
// used portion.
func applyFinish(in priceInput, rule *types.StockLengthRule, required, usage float64, qty decimal.Decimal, breakdown *types.CostBreakdown, detail *strings.Builder) {
	if in.line.PartType != types.PartTypeExtrusion || in.part == nil || in.part.MillFinish {
		return
	}
	if in.part.PerimeterIn <= 0 {
		return
	}
	rate := in.ctx.FinishCostPerSqFt()
	if !rate.IsPositive() {
		return
	}

	finishLength := required
	if in.method == types.MethodFullStock || (in.method == types.MethodHybrid && usage >= 0.5) {
		finishLength = rule.StockLength
	}

	sqft := (in.part.PerimeterIn / 12) * (finishLength / 12)
	finishCost := rate.Mul(decimal.NewFromFloat(sqft)).Mul(qty)
	if finishCost.IsNegative() {
		return
	}

	breakdown.FinishCost = finishCost
	breakdown.TotalCost = breakdown.TotalCost.Add(finishCost)
	if breakdown.UsedPortionCost != nil {
		used := breakdown.UsedPortionCost.Add(finishCost)
		breakdown.UsedPortionCost = &used
	}
	fmt.Fprintf(detail, "; finish %s on %.1f in (%.3f sqft) at %s/sqft = %s",
		in.ctx.Finish, finishLength, sqft, rate.StringFixed(2), finishCost.StringFixed(2))
}
