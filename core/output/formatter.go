// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"io"

	"shopcost/core/costing"
	"shopcost/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *PricingResult) error
}

// PricingResult contains the complete pricing output for one order
type PricingResult struct {
	// OrderID identifies the order that was priced
	OrderID string `json:"order_id,omitempty"`

	// Customer is the order's customer display name
	Customer string `json:"customer,omitempty"`

	// Method is the costing method the run used
	Method types.CostingMethod `json:"method"`

	// Finish is the finish selection applied to extrusions
	Finish string `json:"finish,omitempty"`

	// Summary holds every priced line and the order totals
	Summary costing.OrderSummary `json:"summary"`

	// BOM is the aggregated bill of materials
	BOM []types.AggregatedLineItem `json:"bom,omitempty"`

	// CutList is the shop cut list
	CutList []types.CutListGroup `json:"cut_list,omitempty"`

	// Metadata contains execution context
	Metadata RunMetadata `json:"metadata"`
}

// RunMetadata contains execution context
type RunMetadata struct {
	// RunID uniquely identifies this pricing run
	RunID string `json:"run_id"`

	// Timestamp is when the run was performed
	Timestamp string `json:"timestamp"`

	// Duration is how long the run took
	Duration string `json:"duration"`

	// CatalogPath is the catalog the run priced against
	CatalogPath string `json:"catalog_path,omitempty"`

	// Version is the tool version
	Version string `json:"version"`
}

// Options configures formatter construction
type Options struct {
	// ShowDetails includes the per-line audit narrative
	ShowDetails bool

	// ShowCutList includes the shop cut list section
	ShowCutList bool

	// Currency is the ISO display currency code ("" means USD)
	Currency string
}

// ForFormat returns the formatter for a format name
func ForFormat(name string, opts Options) (Formatter, bool) {
	switch Format(name) {
	case FormatCLI:
		return &CLIFormatter{
			ShowDetails: opts.ShowDetails,
			ShowCutList: opts.ShowCutList,
			Currency:    opts.Currency,
		}, true
	case FormatJSON:
		return &JSONFormatter{}, true
	default:
		return nil, false
	}
}
