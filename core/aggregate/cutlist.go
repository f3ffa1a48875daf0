package aggregate

import (
	"fmt"
	"sort"

	"shopcost/core/types"
)

// CutList builds the shop cut list: extrusion lines only, grouped by
// product, panel size, part, and cut length. QtyPerUnit is assumed
// constant within a group and taken from the first line encountered;
// the unit count is the number of distinct contributing panels.
func CutList(lines []types.LineItem) []types.CutListGroup {
	type cutGroup struct {
		group  types.CutListGroup
		panels map[string]struct{}
	}

	groups := make(map[string]*cutGroup)
	var order []string

	for _, line := range lines {
		if line.PartType != types.PartTypeExtrusion {
			continue
		}
		key := fmt.Sprintf("%s|%s|%s|%g",
			line.ProductName, line.PanelSize, line.PartNumber, line.CutLength)

		g, ok := groups[key]
		if !ok {
			g = &cutGroup{
				group: types.CutListGroup{
					ProductName: line.ProductName,
					PanelSize:   line.PanelSize,
					PartNumber:  line.PartNumber,
					Description: line.Description,
					CutLength:   line.CutLength,
					QtyPerUnit:  line.QtyPerUnit,
				},
				panels: make(map[string]struct{}),
			}
			if g.group.QtyPerUnit == 0 {
				g.group.QtyPerUnit = line.Quantity
			}
			groups[key] = g
			order = append(order, key)
		}
		g.panels[line.PanelID] = struct{}{}
	}

	result := make([]types.CutListGroup, 0, len(groups))
	for _, key := range order {
		g := groups[key]
		g.group.UnitCount = len(g.panels)
		g.group.TotalQty = g.group.QtyPerUnit * float64(g.group.UnitCount)
		result = append(result, g.group)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.ProductName != b.ProductName {
			return a.ProductName < b.ProductName
		}
		if a.PanelSize != b.PanelSize {
			return a.PanelSize < b.PanelSize
		}
		if a.PartNumber != b.PartNumber {
			return a.PartNumber < b.PartNumber
		}
		return a.CutLength < b.CutLength
	})
	return result
}
