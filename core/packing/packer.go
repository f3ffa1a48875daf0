// Package packing computes how many stock pieces a set of required cuts
// consumes, including saw-kerf loss.
//
// Bin packing is NP-hard; this package implements the first-fit-
// decreasing heuristic with deterministic tie-breaking. Determinism is
// part of the contract, optimality is not.
package packing

import (
	"math"
	"sort"

	"shopcost/core/types"
)

// DefaultKerf is the saw kerf allowance in inches charged between
// adjacent cuts sharing one stock piece.
const DefaultKerf = 0.125

type bin struct {
	stockLength float64
	remaining   float64
	cuts        int
}

// fits reports whether a cut fits the bin's remaining capacity. Kerf is
// charged only when the bin already holds at least one cut: there is no
// saw cut before the first piece.
func (b *bin) fits(cut, kerf float64) bool {
	need := cut
	if b.cuts > 0 {
		need += kerf
	}
	return b.remaining >= need
}

func (b *bin) place(cut, kerf float64) {
	if b.cuts > 0 {
		b.remaining -= kerf
	}
	b.remaining -= cut
	b.cuts++
}

// Pack packs the cut lengths into stock pieces of a single length using
// first-fit-decreasing. Degenerate input (no cuts, non-positive stock
// length) yields an all-zero result. A cut longer than the stock length
// still occupies exactly one piece; it is never split or rejected.
func Pack(cutLengths []float64, stockLength, kerf float64) types.PackingResult {
	cuts := positiveSortedDesc(cutLengths)
	if len(cuts) == 0 || stockLength <= 0 {
		return types.PackingResult{}
	}
	if kerf < 0 {
		kerf = 0
	}

	var bins []*bin
	for _, cut := range cuts {
		placed := false
		for _, b := range bins {
			if b.fits(cut, kerf) {
				b.place(cut, kerf)
				placed = true
				break
			}
		}
		if !placed {
			b := &bin{stockLength: stockLength, remaining: stockLength}
			b.place(cut, kerf)
			bins = append(bins, b)
		}
	}

	return summarize(bins, cuts)
}

// PackMulti packs the cut lengths choosing among several candidate
// stock lengths. Existing open bins are still scanned first-fit; when a
// new bin must open, the smallest candidate that accommodates the cut
// is chosen, falling back to the largest candidate when none fits.
// Candidates are considered in ascending length order, which makes the
// choice deterministic.
func PackMulti(cutLengths, stockLengths []float64, kerf float64) types.MultiPackingResult {
	cuts := positiveSortedDesc(cutLengths)
	candidates := positiveSortedAsc(stockLengths)
	if len(cuts) == 0 || len(candidates) == 0 {
		return types.MultiPackingResult{}
	}
	if kerf < 0 {
		kerf = 0
	}

	var bins []*bin
	for _, cut := range cuts {
		placed := false
		for _, b := range bins {
			if b.fits(cut, kerf) {
				b.place(cut, kerf)
				placed = true
				break
			}
		}
		if placed {
			continue
		}
		length := candidates[len(candidates)-1]
		for _, c := range candidates {
			if c >= cut {
				length = c
				break
			}
		}
		b := &bin{stockLength: length, remaining: length}
		b.place(cut, kerf)
		bins = append(bins, b)
	}

	result := types.MultiPackingResult{
		PackingResult:  summarize(bins, cuts),
		PiecesByLength: make(map[float64]int, len(candidates)),
	}
	for _, b := range bins {
		result.PiecesByLength[b.stockLength]++
	}
	return result
}

func summarize(bins []*bin, cuts []float64) types.PackingResult {
	total := 0.0
	for _, b := range bins {
		total += b.stockLength
	}
	used := 0.0
	for _, c := range cuts {
		used += c
	}
	waste := total - used
	if waste < 0 {
		// An oversized cut consumed more than its piece provides.
		waste = 0
	}
	percent := 0.0
	if total > 0 {
		percent = round1(waste / total * 100)
	}
	return types.PackingResult{
		PiecesNeeded:     len(bins),
		TotalStockLength: total,
		WasteLength:      waste,
		WastePercent:     percent,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func positiveSortedDesc(lengths []float64) []float64 {
	out := filterPositive(lengths)
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))
	return out
}

func positiveSortedAsc(lengths []float64) []float64 {
	out := filterPositive(lengths)
	sort.Float64s(out)
	// Dedupe so equal candidates can't produce ambiguous choices.
	dedup := out[:0]
	for i, v := range out {
		if i == 0 || v != out[i-1] {
			dedup = append(dedup, v)
		}
	}
	return dedup
}

func filterPositive(lengths []float64) []float64 {
	out := make([]float64, 0, len(lengths))
	for _, v := range lengths {
		if v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
