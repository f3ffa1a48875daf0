// Package order loads order files: the per-panel BOM lines a pricing
// run operates on.
package order

import (
	"encoding/json"
	"os"

	"shopcost/core/types"
	"shopcost/internal/errors"
)

// Order is one customer order: a set of BOM lines generated per panel,
// plus run-level pricing choices.
type Order struct {
	// ID identifies the order
	ID string `json:"id,omitempty"`

	// Customer is a display name carried into output
	Customer string `json:"customer,omitempty"`

	// Method optionally overrides the catalog's default costing method
	Method string `json:"method,omitempty"`

	// Finish optionally overrides the catalog's selected finish
	Finish string `json:"finish,omitempty"`

	// Lines are the raw BOM lines
	Lines []types.LineItem `json:"lines"`
}

// Load reads and validates an order file
func Load(path string) (*Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Order("failed to read order file", err).WithContext("path", path)
	}

	var o Order
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, errors.Order("failed to parse order file", err).WithContext("path", path)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

// Validate checks the order for structural problems. Pricing problems
// (unknown parts, bad formulas) are not errors here; the engine
// surfaces those as $0 lines.
func (o *Order) Validate() error {
	if len(o.Lines) == 0 {
		return errors.New(errors.TypeOrder, "order has no lines")
	}
	if o.Method != "" {
		if _, ok := types.ParseCostingMethod(o.Method); !ok {
			return errors.Newf(errors.TypeOrder, "unknown costing method %q", o.Method)
		}
	}
	for i, line := range o.Lines {
		if line.PartNumber == "" {
			return errors.Newf(errors.TypeOrder, "line %d has no part number", i)
		}
		if line.Quantity < 0 {
			return errors.Newf(errors.TypeOrder, "line %d (%s) has negative quantity", i, line.PartNumber)
		}
	}
	return nil
}

// CostingMethod resolves the order's method override, falling back to
// the given default
func (o *Order) CostingMethod(fallback types.CostingMethod) types.CostingMethod {
	if o.Method == "" {
		return fallback
	}
	if m, ok := types.ParseCostingMethod(o.Method); ok {
		return m
	}
	return fallback
}
