// Package stockrule selects the best stock-length rule for a required
// cut length.
package stockrule

import "shopcost/core/types"

// Resolve picks the best-fitting active rule for a required length and
// optional opening dimensions. A nil return is an expected outcome
// meaning no rule covers the request, not an error.
//
// Selection is a deterministic total order:
//  1. highest specificity (count of non-nil dimensional bounds) wins
//  2. ties break by smallest stock length, minimizing waste
//  3. remaining ties keep the first rule in input order
func Resolve(rules []types.StockLengthRule, requiredLength float64, width, height *float64) *types.StockLengthRule {
	var best *types.StockLengthRule
	for i := range rules {
		r := &rules[i]
		if !matches(r, requiredLength, width, height) {
			continue
		}
		if best == nil || better(r, best) {
			best = r
		}
	}
	if best == nil {
		return nil
	}
	// Copy so callers can't mutate the context's rule slice.
	out := *best
	return &out
}

func matches(r *types.StockLengthRule, requiredLength float64, width, height *float64) bool {
	if !r.IsActive || r.StockLength <= 0 || r.StockLength < requiredLength {
		return false
	}
	return axisMatches(width, r.MinWidth, r.MaxWidth) &&
		axisMatches(height, r.MinHeight, r.MaxHeight)
}

// axisMatches checks one dimensional axis. Unbounded axes match
// everything. A bounded axis requires a supplied value inside whichever
// bounds are non-nil; a missing value only matches unbounded rules.
func axisMatches(value, min, max *float64) bool {
	if min == nil && max == nil {
		return true
	}
	if value == nil {
		return false
	}
	if min != nil && *value < *min {
		return false
	}
	if max != nil && *value > *max {
		return false
	}
	return true
}

func better(candidate, incumbent *types.StockLengthRule) bool {
	cs, is := candidate.Specificity(), incumbent.Specificity()
	if cs != is {
		return cs > is
	}
	return candidate.StockLength < incumbent.StockLength
}
