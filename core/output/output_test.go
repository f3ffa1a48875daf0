package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"shopcost/core/costing"
	"shopcost/core/types"
)

func sampleResult() *PricingResult {
	return &PricingResult{
		OrderID:  "SO-1042",
		Customer: "Acme Glazing",
		Method:   types.MethodHybrid,
		Finish:   "Bronze Anodized",
		Summary: costing.OrderSummary{
			Lines: []costing.PricedLine{
				{
					Line: types.LineItem{PartNumber: "EX-100", PartType: types.PartTypeExtrusion, Quantity: 2},
					Breakdown: types.CostBreakdown{
						Method:    types.BasisFullStock,
						UnitCost:  decimal.NewFromFloat(60),
						TotalCost: decimal.NewFromFloat(120),
						Details:   "1 x 144\" stock at $60.00",
					},
				},
				{
					Line:      types.LineItem{PartNumber: "HW-GHOST", PartType: types.PartTypeHardware, Quantity: 1},
					Breakdown: types.CostBreakdown{Method: types.BasisNoCostFound},
				},
			},
			TotalCost:      decimal.NewFromFloat(120),
			MarkupEligible: decimal.NewFromFloat(120),
			NoCostParts:    []string{"HW-GHOST"},
		},
		BOM: []types.AggregatedLineItem{
			{
				Key:            "EX-100",
				PartNumber:     "EX-100",
				PartType:       types.PartTypeExtrusion,
				TotalQuantity:  2,
				CutLengths:     []float64{42, 42},
				TotalCutLength: 84,
				StockLength:    144,
				Packing:        &types.PackingResult{PiecesNeeded: 1, TotalStockLength: 144, WasteLength: 59.875, WastePercent: 41.6},
			},
		},
		CutList: []types.CutListGroup{
			{ProductName: "Swing Door", PanelSize: "36\" x 96\"", PartNumber: "EX-100", CutLength: 42, QtyPerUnit: 2, UnitCount: 1, TotalQty: 2},
		},
		Metadata: RunMetadata{RunID: "run-1", Duration: "1ms", Version: "0.1.0"},
	}
}

func TestCLIRender(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{ShowDetails: true, ShowCutList: true}
	if err := f.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"SO-1042",
		"Acme Glazing",
		"EX-100",
		"full_stock",
		"$120.00",
		"BILL OF MATERIALS",
		"CUT LIST",
		"Swing Door",
		"WARNING: no cost found for HW-GHOST",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCLIRenderHidesSections(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{ShowDetails: false, ShowCutList: false}
	if err := f.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "CUT LIST") {
		t.Error("cut list rendered with ShowCutList off")
	}
	if strings.Contains(out, "144\" stock at") {
		t.Error("details rendered with ShowDetails off")
	}
}

func TestJSONRender(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	if err := f.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["order_id"] != "SO-1042" {
		t.Errorf("order_id = %v", decoded["order_id"])
	}
	if _, ok := decoded["bom"]; !ok {
		t.Error("bom section missing")
	}
}

func TestForFormat(t *testing.T) {
	if f, ok := ForFormat("cli", Options{ShowDetails: true, ShowCutList: true}); !ok || f.Format() != FormatCLI {
		t.Errorf("cli lookup = %v, %v", f, ok)
	}
	if f, ok := ForFormat("json", Options{}); !ok || f.Format() != FormatJSON {
		t.Errorf("json lookup = %v, %v", f, ok)
	}
	if _, ok := ForFormat("yaml", Options{}); ok {
		t.Error("unknown format should not resolve")
	}
}

func TestCLIRenderCurrency(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		want     string
	}{
		{name: "default is dollars", currency: "", want: "$120.00"},
		{name: "known symbol", currency: "EUR", want: "\u20ac120.00"},
		{name: "unknown code prefixes", currency: "SEK", want: "SEK 120.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			f := &CLIFormatter{Currency: tt.currency}
			if err := f.Render(&buf, sampleResult()); err != nil {
				t.Fatalf("Render: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, buf.String())
			}
		})
	}
}
