package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcost/core/types"
)

func extrusionLine(pn string, cutLength, qty float64) types.LineItem {
	return types.LineItem{
		PartNumber:  pn,
		PartType:    types.PartTypeExtrusion,
		CutLength:   cutLength,
		StockLength: 96,
		Quantity:    qty,
	}
}

func TestBOMPoolsIdenticalExtrusionLines(t *testing.T) {
	lines := []types.LineItem{
		extrusionLine("EX-100", 42, 1),
		extrusionLine("EX-100", 42, 1),
	}
	groups := BOM(lines, 0)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, 2.0, g.TotalQuantity)
	assert.Equal(t, []float64{42, 42}, g.CutLengths)
	assert.Equal(t, 84.0, g.TotalCutLength)
}

func TestBOMExpandsCutsByQuantity(t *testing.T) {
	lines := []types.LineItem{extrusionLine("EX-100", 30, 3)}
	groups := BOM(lines, 0)

	require.Len(t, groups, 1)
	assert.Equal(t, []float64{30, 30, 30}, groups[0].CutLengths)
}

func TestBOMPacksExtrusionGroups(t *testing.T) {
	lines := []types.LineItem{
		extrusionLine("EX-100", 40, 2),
		extrusionLine("EX-100", 40, 1),
	}
	groups := BOM(lines, 0)

	require.Len(t, groups, 1)
	require.NotNil(t, groups[0].Packing)
	// Three 40" cuts with kerf don't fit two to a piece plus one more:
	// 40+0.125+40 = 80.125 on the first piece, third cut opens another.
	assert.Equal(t, 2, groups[0].Packing.PiecesNeeded)
	assert.Equal(t, 192.0, groups[0].Packing.TotalStockLength)
}

func TestBOMPacksWithConfiguredKerf(t *testing.T) {
	// Two 44" cuts share one 96" piece under the standard kerf, but a
	// wide 10" kerf forces a second piece: 44+10+44 = 98 > 96.
	lines := []types.LineItem{extrusionLine("EX-100", 44, 2)}

	standard := BOM(lines, 0)
	require.Len(t, standard, 1)
	require.NotNil(t, standard[0].Packing)
	assert.Equal(t, 1, standard[0].Packing.PiecesNeeded)

	wide := BOM(lines, 10)
	require.Len(t, wide, 1)
	require.NotNil(t, wide[0].Packing)
	assert.Equal(t, 2, wide[0].Packing.PiecesNeeded)
}

func TestBOMGlassGroupsBySize(t *testing.T) {
	glass := func(w, h float64) types.LineItem {
		return types.LineItem{
			PartNumber: "GL-CLR",
			PartType:   types.PartTypeGlass,
			Width:      w,
			Height:     h,
			Quantity:   1,
		}
	}
	groups := BOM([]types.LineItem{glass(36, 48), glass(36, 48), glass(24, 48)}, 0)

	require.Len(t, groups, 2)
	sizes := map[string]float64{}
	for _, g := range groups {
		sizes[g.Key] = g.TotalQuantity
	}
	assert.Equal(t, 2.0, sizes["GL-CLR|36|48"])
	assert.Equal(t, 1.0, sizes["GL-CLR|24|48"])
}

func TestBOMLinearHardwareAccumulatesCalculatedLength(t *testing.T) {
	line := types.LineItem{
		PartNumber: "HW-TRACK",
		PartType:   types.PartTypeHardware,
		Formula:    "width * 2",
		Unit:       "LF",
		Quantity:   2,
		Width:      36,
	}
	groups := BOM([]types.LineItem{line, line}, 0)

	require.Len(t, groups, 1)
	// 72" per unit of quantity, qty 2 per line, two lines.
	assert.Equal(t, 288.0, groups[0].CalculatedLength)
	assert.Empty(t, groups[0].CutLengths)
}

func TestBOMSortsByTypeRankThenPartNumber(t *testing.T) {
	lines := []types.LineItem{
		{PartNumber: "OPT-1", PartType: types.PartTypeOption, Quantity: 1},
		{PartNumber: "GL-B", PartType: types.PartTypeGlass, Quantity: 1, Width: 36, Height: 48},
		{PartNumber: "HW-Z", PartType: types.PartTypeHardware, Quantity: 1},
		{PartNumber: "HW-A", PartType: types.PartTypeHardware, Quantity: 1},
		extrusionLine("EX-900", 40, 1),
		extrusionLine("EX-100", 40, 1),
		{PartNumber: "MISC", PartType: types.PartTypeOther, Quantity: 1},
	}
	groups := BOM(lines, 0)

	var keys []string
	for _, g := range groups {
		keys = append(keys, g.PartNumber)
	}
	assert.Equal(t, []string{"EX-100", "EX-900", "HW-A", "HW-Z", "GL-B", "OPT-1", "MISC"}, keys)
}

func TestBOMDropsZeroCutLengths(t *testing.T) {
	line := extrusionLine("EX-100", 0, 2)
	groups := BOM([]types.LineItem{line}, 0)

	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].CutLengths)
	assert.Nil(t, groups[0].Packing)
}

func cutLine(product, size, panel, pn string, cut, qtyPer float64) types.LineItem {
	return types.LineItem{
		PartNumber:  pn,
		PartType:    types.PartTypeExtrusion,
		ProductName: product,
		PanelSize:   size,
		PanelID:     panel,
		CutLength:   cut,
		QtyPerUnit:  qtyPer,
		Quantity:    qtyPer,
	}
}

func TestCutListGroupsAcrossPanels(t *testing.T) {
	lines := []types.LineItem{
		cutLine("Swing Door", `36" x 96"`, "P1", "EX-100", 95.5, 2),
		cutLine("Swing Door", `36" x 96"`, "P2", "EX-100", 95.5, 2),
		cutLine("Swing Door", `36" x 96"`, "P3", "EX-100", 95.5, 2),
	}
	groups := CutList(lines)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, 3, g.UnitCount)
	assert.Equal(t, 2.0, g.QtyPerUnit)
	assert.Equal(t, 6.0, g.TotalQty)
}

func TestCutListSeparatesByGroupKey(t *testing.T) {
	lines := []types.LineItem{
		cutLine("Swing Door", `36" x 96"`, "P1", "EX-100", 95.5, 2),
		cutLine("Swing Door", `36" x 96"`, "P1", "EX-100", 34.0, 2), // different cut
		cutLine("Swing Door", `30" x 96"`, "P2", "EX-100", 95.5, 2), // different size
		cutLine("Fixed Panel", `36" x 96"`, "P3", "EX-100", 95.5, 2), // different product
	}
	groups := CutList(lines)

	assert.Len(t, groups, 4)
}

func TestCutListFiltersToExtrusions(t *testing.T) {
	lines := []types.LineItem{
		{PartNumber: "HW-1", PartType: types.PartTypeHardware, Quantity: 1, PanelID: "P1"},
		{PartNumber: "GL-1", PartType: types.PartTypeGlass, Quantity: 1, PanelID: "P1"},
	}
	assert.Empty(t, CutList(lines))
}

func TestCutListSortOrder(t *testing.T) {
	lines := []types.LineItem{
		cutLine("Swing Door", `36" x 96"`, "P1", "EX-200", 95.5, 1),
		cutLine("Swing Door", `36" x 96"`, "P1", "EX-100", 95.5, 1),
		cutLine("Swing Door", `36" x 96"`, "P1", "EX-100", 34.0, 1),
		cutLine("Fixed Panel", `48" x 96"`, "P2", "EX-100", 95.5, 1),
	}
	groups := CutList(lines)

	require.Len(t, groups, 4)
	assert.Equal(t, "Fixed Panel", groups[0].ProductName)
	assert.Equal(t, "EX-100", groups[1].PartNumber)
	assert.Equal(t, 34.0, groups[1].CutLength)
	assert.Equal(t, 95.5, groups[2].CutLength)
	assert.Equal(t, "EX-200", groups[3].PartNumber)
}

func TestCutListQtyPerUnitFromFirstLine(t *testing.T) {
	lines := []types.LineItem{
		cutLine("Swing Door", `36" x 96"`, "P1", "EX-100", 95.5, 2),
		// Same group but a different QtyPerUnit; the first line wins.
		cutLine("Swing Door", `36" x 96"`, "P2", "EX-100", 95.5, 4),
	}
	groups := CutList(lines)

	require.Len(t, groups, 1)
	assert.Equal(t, 2.0, groups[0].QtyPerUnit)
	assert.Equal(t, 4.0, groups[0].TotalQty)
}
