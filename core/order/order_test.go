package order

import (
	"os"
	"path/filepath"
	"testing"

	"shopcost/core/types"
	"shopcost/internal/errors"
)

func writeOrder(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "order.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidOrder(t *testing.T) {
	path := writeOrder(t, `{
  "id": "SO-1042",
  "customer": "Acme Glazing",
  "method": "HYBRID",
  "lines": [
    {
      "part_number": "EX-100",
      "part_type": "Extrusion",
      "formula": "height + 1",
      "quantity": 2,
      "width": 36,
      "height": 95,
      "product_name": "Swing Door",
      "panel_id": "P1",
      "panel_size": "36\" x 96\""
    }
  ]
}`)

	o, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if o.ID != "SO-1042" || len(o.Lines) != 1 {
		t.Errorf("order = %+v", o)
	}
	if o.Lines[0].PartType != types.PartTypeExtrusion {
		t.Errorf("PartType = %s", o.Lines[0].PartType)
	}
	if got := o.CostingMethod(types.MethodFullStock); got != types.MethodHybrid {
		t.Errorf("CostingMethod = %s, want HYBRID", got)
	}
}

func TestCostingMethodFallback(t *testing.T) {
	o := &Order{}
	if got := o.CostingMethod(types.MethodPercentageBased); got != types.MethodPercentageBased {
		t.Errorf("CostingMethod = %s, want fallback", got)
	}
}

func TestLoadRejectsBadOrders(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: `{{{`},
		{name: "no lines", content: `{"id": "SO-1", "lines": []}`},
		{name: "missing part number", content: `{"lines": [{"quantity": 1}]}`},
		{name: "negative quantity", content: `{"lines": [{"part_number": "X", "quantity": -1}]}`},
		{name: "bad method", content: `{"method": "MAGIC", "lines": [{"part_number": "X", "quantity": 1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeOrder(t, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.IsType(err, errors.TypeOrder) {
				t.Errorf("error type = %v, want ORDER_ERROR", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error")
	}
}
