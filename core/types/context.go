package types

import "github.com/shopspring/decimal"

// PricingContext is the immutable lookup context for one pricing run.
// The caller assembles it once (avoiding N+1 lookups against whatever
// store holds the catalog) and threads it through every call. The
// engine never mutates it, so independent runs may share nothing and
// run in parallel.
type PricingContext struct {
	// Parts indexes catalog parts by part number
	Parts map[string]PartRecord `json:"parts"`

	// StockRules holds the active stock-length rules per part number
	StockRules map[string][]StockLengthRule `json:"stock_rules,omitempty"`

	// PricingRules holds generic pricing rules per part number
	PricingRules map[string]PricingRule `json:"pricing_rules,omitempty"`

	// FinishPrices is the active finish price table, cost per square
	// foot by finish name
	FinishPrices map[string]decimal.Decimal `json:"finish_prices,omitempty"`

	// GlassPrices is the glass price table, price per square foot by
	// glass type
	GlassPrices map[string]decimal.Decimal `json:"glass_prices,omitempty"`

	// PricePerLb is the global material price per pound used for
	// weight-based stock pricing
	PricePerLb decimal.Decimal `json:"price_per_lb"`

	// Finish is the finish selected for this run ("" or "Mill" means
	// no finish surcharge)
	Finish string `json:"finish,omitempty"`

	// DefaultKerf is the saw kerf allowance in inches
	DefaultKerf float64 `json:"default_kerf,omitempty"`

	// DefaultMethod is the costing method used when the caller does not
	// specify one
	DefaultMethod CostingMethod `json:"default_method,omitempty"`
}

// Part looks up a part record, returning nil when unknown
func (c *PricingContext) Part(partNumber string) *PartRecord {
	if c == nil {
		return nil
	}
	if p, ok := c.Parts[partNumber]; ok {
		return &p
	}
	return nil
}

// RulesFor returns the stock-length rules for a part
func (c *PricingContext) RulesFor(partNumber string) []StockLengthRule {
	if c == nil {
		return nil
	}
	return c.StockRules[partNumber]
}

// FinishCostPerSqFt returns the surcharge rate for the run's selected
// finish, or zero when the run is mill finish or the finish is unknown
func (c *PricingContext) FinishCostPerSqFt() decimal.Decimal {
	if c == nil || c.Finish == "" || c.Finish == "Mill" {
		return decimal.Zero
	}
	if rate, ok := c.FinishPrices[c.Finish]; ok {
		return rate
	}
	return decimal.Zero
}

// GlassPricePerSqFt returns the price for a glass type, or zero when
// the type is not in the table
func (c *PricingContext) GlassPricePerSqFt(glassType string) decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}
	if rate, ok := c.GlassPrices[glassType]; ok {
		return rate
	}
	return decimal.Zero
}
