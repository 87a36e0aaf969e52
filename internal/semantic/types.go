package semantic

import "github.com/cwbudde/go-pyjs/internal/ast"

// compatible implements the shallow compatibility rules: ANY is
// compatible with everything, INT and FLOAT are mutually compatible,
// every other pair requires identity. NONE is deliberately excluded
// from the INT/FLOAT carve-out; see arithmeticResult.
func compatible(x, y ast.TypeMarker) bool {
	if x == ast.ANY || y == ast.ANY {
		return true
	}
	if isNumeric(x) && isNumeric(y) {
		return true
	}
	return x == y
}

func isNumeric(t ast.TypeMarker) bool {
	return t == ast.INT || t == ast.FLOAT
}

// arithmeticResult implements the `+ - * / % **` typing rules: both
// operands numeric (INT/FLOAT/ANY) yields FLOAT if either is FLOAT,
// else INT; `+` over two STRING operands yields STRING. NONE is never
// accepted — the ANY-compatibility rule would otherwise let `null + 1`
// through silently.
func arithmeticResult(op string, left, right ast.TypeMarker) (ast.TypeMarker, bool) {
	if op == "+" && left == ast.STRING && right == ast.STRING {
		return ast.STRING, true
	}
	if left == ast.NONE || right == ast.NONE {
		return ast.ANY, false
	}
	numericOrAny := func(t ast.TypeMarker) bool { return t == ast.INT || t == ast.FLOAT || t == ast.ANY }
	if !numericOrAny(left) || !numericOrAny(right) {
		return ast.ANY, false
	}
	if left == ast.FLOAT || right == ast.FLOAT {
		return ast.FLOAT, true
	}
	return ast.INT, true
}
