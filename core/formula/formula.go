// Package formula evaluates the constrained arithmetic sublanguage used
// by catalog and stock-rule formulas.
//
// Formulas come from user-authored configuration, so this is a dedicated
// tokenizer and recursive-descent parser over + - * /, parentheses, and
// decimal literals. It is deliberately not a general expression or code
// evaluator: an authored formula can compute a length, never execute
// logic.
//
// The evaluator never fails its caller. Empty input, malformed syntax,
// unresolved identifiers, and non-finite or pathologically large results
// all evaluate to 0 so that one bad formula surfaces as a visibly wrong
// $0 line instead of halting an entire order.
package formula

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"shopcost/core/types"
)

// maxResult bounds formula output before it can reach cut-length lists,
// keeping packing memory and loop cost bounded.
const maxResult = 1e9

var identPattern = regexp.MustCompile(`(?i)\b[a-z_][a-z0-9_]*\b`)

// Evaluate substitutes the named variables into expr (whole-word,
// case-insensitive) and evaluates the resulting arithmetic expression.
// The result is floored at 0; every failure mode returns 0.
func Evaluate(expr string, vars types.Variables) float64 {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0
	}

	substituted := substitute(expr, vars)

	val, err := parse(substituted)
	if err != nil {
		return 0
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	if val < 0 {
		return 0
	}
	if val > maxResult {
		return 0
	}
	return val
}

// substitute replaces every whole-word occurrence of a known variable
// with its numeric value. Unknown identifiers are left in place and
// rejected by the parser.
func substitute(expr string, vars types.Variables) string {
	if len(vars) == 0 {
		return expr
	}
	normalized := vars.Normalized()
	return identPattern.ReplaceAllStringFunc(expr, func(ident string) string {
		if val, ok := normalized[strings.ToLower(ident)]; ok {
			return strconv.FormatFloat(val, 'f', -1, 64)
		}
		return ident
	})
}
