// Package aggregate rolls per-panel BOM lines into order-level groups
// with deterministic ordering and stock-optimization rollups.
package aggregate

import (
	"fmt"
	"math"
	"sort"

	"shopcost/core/formula"
	"shopcost/core/packing"
	"shopcost/core/types"
)

// typeRank orders aggregated groups the way the shop reads a BOM:
// material first, then hardware, then glass, then options.
var typeRank = map[types.PartType]int{
	types.PartTypeExtrusion: 0,
	types.PartTypeCutStock:  0,
	types.PartTypeHardware:  1,
	types.PartTypeGlass:     2,
	types.PartTypeOption:    3,
}

func rankOf(t types.PartType) int {
	if r, ok := typeRank[t]; ok {
		return r
	}
	return 4
}

// BOM groups raw line items into order-level summaries. Hardware and
// extrusion lines pool quantities (and cut lengths) by part number;
// glass groups by part number plus size so distinct sizes stay
// separate. Extrusion groups get a packing rollup against the group's
// stock length, using the given kerf (non-positive means the standard
// saw kerf).
func BOM(lines []types.LineItem, kerf float64) []types.AggregatedLineItem {
	if kerf <= 0 {
		kerf = packing.DefaultKerf
	}
	groups := make(map[string]*types.AggregatedLineItem)
	var order []string

	for _, line := range lines {
		key := groupKey(line)
		g, ok := groups[key]
		if !ok {
			g = &types.AggregatedLineItem{
				Key:         key,
				PartNumber:  line.PartNumber,
				PartType:    line.PartType,
				Description: line.Description,
				Unit:        line.Unit,
			}
			if line.PartType == types.PartTypeGlass {
				g.Width = line.Width
				g.Height = line.Height
			}
			groups[key] = g
			order = append(order, key)
		}

		g.TotalQuantity += line.Quantity
		if g.StockLength == 0 && line.StockLength > 0 {
			g.StockLength = line.StockLength
		}

		switch {
		case line.PartType.IsStock():
			appendCuts(g, line)
		case line.PartType == types.PartTypeHardware && line.Formula != "" &&
			(line.Unit == "LF" || line.Unit == "IN"):
			// Linear hardware accumulates formula length per unit of
			// quantity instead of collecting cuts.
			length := formula.Evaluate(line.Formula, lineVariables(line))
			g.CalculatedLength += length * line.Quantity
		}
	}

	result := make([]types.AggregatedLineItem, 0, len(groups))
	for _, key := range order {
		g := groups[key]
		if g.PartType.IsStock() && g.StockLength > 0 && len(g.CutLengths) > 0 {
			packed := packing.Pack(g.CutLengths, g.StockLength, kerf)
			g.Packing = &packed
		}
		result = append(result, *g)
	}

	sort.SliceStable(result, func(i, j int) bool {
		ri, rj := rankOf(result[i].PartType), rankOf(result[j].PartType)
		if ri != rj {
			return ri < rj
		}
		return result[i].PartNumber < result[j].PartNumber
	})
	return result
}

// groupKey pools most parts by part number; glass keys include the size
// so distinct sizes aggregate separately.
func groupKey(line types.LineItem) string {
	if line.PartType == types.PartTypeGlass {
		return fmt.Sprintf("%s|%g|%g", line.PartNumber, line.Width, line.Height)
	}
	return line.PartNumber
}

// appendCuts expands a stock line's cut length by its quantity
func appendCuts(g *types.AggregatedLineItem, line types.LineItem) {
	if line.CutLength <= 0 {
		return
	}
	count := int(math.Round(line.Quantity))
	for i := 0; i < count; i++ {
		g.CutLengths = append(g.CutLengths, line.CutLength)
		g.TotalCutLength += line.CutLength
	}
}

func lineVariables(line types.LineItem) types.Variables {
	return types.Variables{
		"width":    line.Width,
		"height":   line.Height,
		"quantity": line.Quantity,
	}
}
