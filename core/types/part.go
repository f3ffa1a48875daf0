// Package types defines the shared domain model for BOM pricing.
package types

import "github.com/shopspring/decimal"

// PartType classifies a catalog part for costing and aggregation
type PartType string

const (
	// PartTypeExtrusion is aluminum profile cut to length from stock
	PartTypeExtrusion PartType = "Extrusion"

	// PartTypeCutStock is other raw material cut to length from stock
	PartTypeCutStock PartType = "CutStock"

	// PartTypeHardware is handles, locks, rollers, and similar components
	PartTypeHardware PartType = "Hardware"

	// PartTypeFastener is screws, rivets, and similar consumables
	PartTypeFastener PartType = "Fastener"

	// PartTypeGlass is glazing priced by area
	PartTypeGlass PartType = "Glass"

	// PartTypePackaging is crating and shipping material
	PartTypePackaging PartType = "Packaging"

	// PartTypeOption is a configurable product option
	PartTypeOption PartType = "Option"

	// PartTypeOther is anything that doesn't fit the categories above
	PartTypeOther PartType = "Other"
)

// String returns the string representation
func (t PartType) String() string {
	return string(t)
}

// IsStock reports whether parts of this type are cut from stock lengths
func (t PartType) IsStock() bool {
	return t == PartTypeExtrusion || t == PartTypeCutStock
}

// PartRecord is the catalog view of a part, pre-fetched into the
// pricing context by the caller. All fields are read-only during a run.
type PartRecord struct {
	// PartNumber uniquely identifies the part
	PartNumber string `json:"part_number"`

	// Description is a human-readable description
	Description string `json:"description,omitempty"`

	// Type classifies the part
	Type PartType `json:"type"`

	// Cost is the per-unit cost (or per-foot cost for linear parts)
	Cost decimal.Decimal `json:"cost"`

	// SalePrice, when set, overrides every downstream pricing rule
	SalePrice *decimal.Decimal `json:"sale_price,omitempty"`

	// WeightPerFoot is the material weight in lbs per foot, used for
	// weight-based stock pricing. Zero means no weight data.
	WeightPerFoot float64 `json:"weight_per_foot,omitempty"`

	// PerimeterIn is the profile perimeter in inches, used for finish
	// surcharge area calculations
	PerimeterIn float64 `json:"perimeter_in,omitempty"`

	// MillFinish marks extrusions that take no finish surcharge
	MillFinish bool `json:"mill_finish,omitempty"`

	// GlassType names the row of the glass price table for glass parts
	GlassType string `json:"glass_type,omitempty"`

	// Unit is the unit of measure (EA, LF, IN, SF)
	Unit string `json:"unit,omitempty"`
}

// StockLengthRule describes one purchasable stock length for a part,
// optionally constrained to a range of opening dimensions.
type StockLengthRule struct {
	// PartNumber is the part this rule belongs to
	PartNumber string `json:"part_number"`

	// StockLength is the purchasable raw length in inches
	StockLength float64 `json:"stock_length"`

	// BasePrice is the price of one full stock piece
	BasePrice decimal.Decimal `json:"base_price"`

	// MinWidth/MaxWidth bound the opening width this rule applies to.
	// Nil means unconstrained on that side.
	MinWidth *float64 `json:"min_width,omitempty"`
	MaxWidth *float64 `json:"max_width,omitempty"`

	// MinHeight/MaxHeight bound the opening height
	MinHeight *float64 `json:"min_height,omitempty"`
	MaxHeight *float64 `json:"max_height,omitempty"`

	// IsActive gates the rule; inactive rules never match
	IsActive bool `json:"is_active"`

	// Formula optionally recomputes the required cut length once the
	// rule has been selected
	Formula string `json:"formula,omitempty"`

	// PiecesPerUnit multiplies the effective quantity (e.g. two jamb
	// pieces per opening). Nil means one.
	PiecesPerUnit *float64 `json:"pieces_per_unit,omitempty"`
}

// Specificity counts the non-nil dimensional bounds. Rules with more
// bounds are considered more specific and win rule resolution ties.
func (r *StockLengthRule) Specificity() int {
	n := 0
	for _, b := range []*float64{r.MinWidth, r.MaxWidth, r.MinHeight, r.MaxHeight} {
		if b != nil {
			n++
		}
	}
	return n
}

// PricingRule is a generic per-part pricing rule applied when no stock
// rule or direct cost resolves. BasePrice is exposed to Formula as the
// basePrice variable.
type PricingRule struct {
	PartNumber string          `json:"part_number"`
	BasePrice  decimal.Decimal `json:"base_price"`
	Formula    string          `json:"formula,omitempty"`
	IsActive   bool            `json:"is_active"`
}
