package types

// AggregatedLineItem is one order-level BOM group. Hardware and
// extrusion groups pool quantities and cut lengths across lines; glass
// keeps distinct sizes in separate groups.
type AggregatedLineItem struct {
	// Key is the grouping key (part number, plus size for glass)
	Key string `json:"key"`

	// PartNumber is the grouped part
	PartNumber string `json:"part_number"`

	// PartType classifies the group for sorting
	PartType PartType `json:"part_type"`

	// Description comes from the first contributing line
	Description string `json:"description,omitempty"`

	// Unit is the unit of measure from the first contributing line
	Unit string `json:"unit,omitempty"`

	// TotalQuantity is the pooled quantity across lines
	TotalQuantity float64 `json:"total_quantity"`

	// Width/Height are set for glass groups (part of the key)
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// CutLengths collects every required cut, expanded by line quantity
	CutLengths []float64 `json:"cut_lengths,omitempty"`

	// TotalCutLength is the sum of CutLengths
	TotalCutLength float64 `json:"total_cut_length,omitempty"`

	// CalculatedLength accumulates formula-derived linear length for
	// LF/IN hardware
	CalculatedLength float64 `json:"calculated_length,omitempty"`

	// StockLength is the stock length used for the packing rollup
	StockLength float64 `json:"stock_length,omitempty"`

	// Packing is the stock-optimization rollup for extrusion groups
	Packing *PackingResult `json:"packing,omitempty"`
}

// CutListGroup is one row of the shop cut list: a distinct cut length
// of a part across all panels of a product/size.
type CutListGroup struct {
	// ProductName is the product the panels belong to
	ProductName string `json:"product_name"`

	// PanelSize is the display size shared by the grouped panels
	PanelSize string `json:"panel_size"`

	// PartNumber is the part being cut
	PartNumber string `json:"part_number"`

	// Description comes from the first contributing line
	Description string `json:"description,omitempty"`

	// CutLength is the shared cut length in inches
	CutLength float64 `json:"cut_length"`

	// QtyPerUnit is the pieces required per panel, taken from the first
	// line in the group
	QtyPerUnit float64 `json:"qty_per_unit"`

	// UnitCount is the number of distinct contributing panels
	UnitCount int `json:"unit_count"`

	// TotalQty is QtyPerUnit times UnitCount
	TotalQty float64 `json:"total_qty"`
}
