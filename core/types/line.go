package types

// LineItem is one raw BOM line produced for a panel of an order.
// Lines are immutable inputs to costing and aggregation.
type LineItem struct {
	// PartNumber references the catalog part
	PartNumber string `json:"part_number"`

	// Description is carried through to aggregated output
	Description string `json:"description,omitempty"`

	// PartType classifies the line for the costing cascade
	PartType PartType `json:"part_type"`

	// Formula optionally computes the cut or linear length from the
	// panel dimensions
	Formula string `json:"formula,omitempty"`

	// Quantity is the line quantity (pieces for discrete parts)
	Quantity float64 `json:"quantity"`

	// QtyPerUnit is the quantity required per assembled unit, used by
	// cut list grouping
	QtyPerUnit float64 `json:"qty_per_unit,omitempty"`

	// Unit is the unit of measure (EA, LF, IN, SF)
	Unit string `json:"unit,omitempty"`

	// CutLength is the required cut length in inches for stock parts
	CutLength float64 `json:"cut_length,omitempty"`

	// StockLength is the resolved stock length for the part, used by
	// aggregation packing rollups
	StockLength float64 `json:"stock_length,omitempty"`

	// Width/Height are the panel opening dimensions in inches
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// ProductName names the product the panel belongs to
	// (e.g. "Swing Door", "Fixed Panel", "Sliding Door")
	ProductName string `json:"product_name,omitempty"`

	// PanelID identifies the contributing panel within the order
	PanelID string `json:"panel_id,omitempty"`

	// PanelSize is the display size of the panel (e.g. `36" x 96"`)
	PanelSize string `json:"panel_size,omitempty"`
}

// Dimensions carries the named dimension values a formula may reference
type Dimensions struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Quantity float64 `json:"quantity"`
}

// Variables returns the dimension values as formula variables
func (d Dimensions) Variables() Variables {
	return Variables{
		"width":    d.Width,
		"height":   d.Height,
		"quantity": d.Quantity,
	}
}

// Variables maps case-insensitive identifiers to numeric values for
// formula substitution. Keys should be stored lowercase; Normalized
// lowercases keys for maps built by hand.
type Variables map[string]float64

// Normalized returns a copy with all keys lowercased
func (v Variables) Normalized() map[string]float64 {
	out := make(map[string]float64, len(v))
	for k, val := range v {
		out[lower(k)] = val
	}
	return out
}

// With returns a copy with one additional variable set
func (v Variables) With(name string, value float64) Variables {
	out := make(Variables, len(v)+1)
	for k, val := range v {
		out[k] = val
	}
	out[lower(name)] = value
	return out
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
