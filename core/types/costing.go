package types

import "github.com/shopspring/decimal"

// CostingMethod selects how stock-length parts are charged
type CostingMethod string

const (
	// MethodFullStock charges the whole stock piece regardless of usage
	MethodFullStock CostingMethod = "FULL_STOCK"

	// MethodPercentageBased charges only the used fraction of the piece
	MethodPercentageBased CostingMethod = "PERCENTAGE_BASED"

	// MethodHybrid charges a markup-eligible used portion plus a
	// pass-through remainder when usage is at least half the piece,
	// and falls back to percentage-based below that
	MethodHybrid CostingMethod = "HYBRID"
)

// String returns the string representation
func (m CostingMethod) String() string {
	return string(m)
}

// Valid reports whether the method is one of the known methods
func (m CostingMethod) Valid() bool {
	switch m {
	case MethodFullStock, MethodPercentageBased, MethodHybrid:
		return true
	}
	return false
}

// ParseCostingMethod parses a costing method name, defaulting to
// FULL_STOCK for empty input
func ParseCostingMethod(s string) (CostingMethod, bool) {
	if s == "" {
		return MethodFullStock, true
	}
	m := CostingMethod(s)
	return m, m.Valid()
}

// Cost basis tags recorded on a CostBreakdown. Downstream invoices key
// off these, so they are part of the engine's contract.
const (
	BasisSalePrice       = "sale_price"
	BasisLinearFoot      = "linear_foot"
	BasisFormula         = "formula"
	BasisFormulaDirect   = "formula_direct"
	BasisGlassArea       = "glass_area"
	BasisFullStock       = "full_stock"
	BasisPercentageBased = "percentage_based"
	BasisHybrid          = "hybrid"
	BasisPricingRule     = "pricing_rule"
	BasisDirectCost      = "direct_cost"
	BasisNoCostFound     = "no_cost_found"
)

// CostBreakdown is the priced, auditable result for one BOM line
type CostBreakdown struct {
	// Method tags which cascade branch produced the cost
	Method string `json:"method"`

	// UnitCost is the per-unit (or per-piece) cost before quantity
	UnitCost decimal.Decimal `json:"unit_cost"`

	// TotalCost is the full line cost including any finish surcharge
	TotalCost decimal.Decimal `json:"total_cost"`

	// FinishCost is the finish surcharge portion of TotalCost
	FinishCost decimal.Decimal `json:"finish_cost"`

	// Details is a narrative sufficient to reconstruct the arithmetic
	Details string `json:"details"`

	// UsedPortionCost/RemainingPortionCost split a hybrid cost into the
	// markup-eligible used portion and the pass-through remainder.
	// Only set when the hybrid split applies.
	UsedPortionCost      *decimal.Decimal `json:"used_portion_cost,omitempty"`
	RemainingPortionCost *decimal.Decimal `json:"remaining_portion_cost,omitempty"`
}

// MarkupEligible returns the portion of the total subject to markup.
// For hybrid splits that is everything except the pass-through
// remainder; for every other basis it is the whole cost.
func (b CostBreakdown) MarkupEligible() decimal.Decimal {
	if b.RemainingPortionCost != nil {
		return b.TotalCost.Sub(*b.RemainingPortionCost)
	}
	return b.TotalCost
}
