package semantic

import (
	"github.com/cwbudde/go-pyjs/internal/ast"
	cerrors "github.com/cwbudde/go-pyjs/internal/errors"
	"github.com/cwbudde/go-pyjs/internal/symtab"
)

// inferType type-checks an expression and returns its inferred type,
// recording any TypeMismatch/UndefinedVariable diagnostics along the
// way.
func (a *Analyzer) inferType(expr ast.Expression) ast.TypeMarker {
	switch e := expr.(type) {
	case *ast.Literal:
		return a.inferLiteral(e)
	case *ast.Identifier:
		return a.inferIdentifier(e)
	case *ast.BinaryOperation:
		return a.inferBinary(e)
	case *ast.UnaryOperation:
		return a.inferUnary(e)
	case *ast.FunctionCall:
		return a.inferCall(e)
	default:
		a.report(cerrors.KindUnsupportedFeature, expr, "unsupported expression %T", expr)
		return ast.ANY
	}
}

func (a *Analyzer) inferLiteral(l *ast.Literal) ast.TypeMarker {
	switch l.Kind {
	case ast.IntLiteral:
		return ast.INT
	case ast.FloatLiteral:
		return ast.FLOAT
	case ast.StringLiteral, ast.FStringLiteral:
		return ast.STRING
	case ast.BoolLiteral:
		return ast.BOOLEAN
	case ast.NullLiteral:
		return ast.NONE
	case ast.ListLiteral:
		for _, el := range l.List {
			a.inferType(el)
		}
		return ast.LIST
	default:
		return ast.ANY
	}
}

// inferIdentifier enforces declared-before-use: function parameters,
// loop variables, and builtins are declared at their binding site and
// so are never "used before declared".
func (a *Analyzer) inferIdentifier(id *ast.Identifier) ast.TypeMarker {
	sym, ok := a.table.Lookup(id.Name)
	if !ok {
		a.report(cerrors.KindUndefinedVariable, id, "undefined variable %q", id.Name)
		return ast.ANY
	}
	return sym.Type
}

func (a *Analyzer) inferBinary(b *ast.BinaryOperation) ast.TypeMarker {
	left := a.inferType(b.Left)
	right := a.inferType(b.Right)

	switch b.Operator {
	case "and", "or":
		if (left != ast.BOOLEAN && left != ast.ANY) || (right != ast.BOOLEAN && right != ast.ANY) {
			a.report(cerrors.KindTypeMismatch, b, "logical %q requires boolean operands, got %s and %s", b.Operator, left, right)
		}
		return ast.BOOLEAN
	case "is", "is not":
		// Identity comparisons are valid for any pair, including
		// against null (`x is null`).
		return ast.BOOLEAN
	case "==", "!=", ">", "<", ">=", "<=":
		if !compatible(left, right) {
			a.report(cerrors.KindTypeMismatch, b, "cannot compare %s with %s", left, right)
		}
		return ast.BOOLEAN
	case "+", "-", "*", "/", "%", "**", "//":
		op := b.Operator
		if op == "//" {
			op = "/"
		}
		result, ok := arithmeticResult(op, left, right)
		if !ok {
			a.report(cerrors.KindTypeMismatch, b, "operator %q not defined for %s and %s", b.Operator, left, right)
			return ast.ANY
		}
		return result
	case "|", "^":
		if !compatible(left, ast.INT) || !compatible(right, ast.INT) {
			a.report(cerrors.KindTypeMismatch, b, "bitwise %q requires integer operands, got %s and %s", b.Operator, left, right)
		}
		return ast.INT
	default:
		a.report(cerrors.KindUnsupportedFeature, b, "unsupported operator %q", b.Operator)
		return ast.ANY
	}
}

func (a *Analyzer) inferUnary(u *ast.UnaryOperation) ast.TypeMarker {
	operand := a.inferType(u.Operand)
	switch u.Operator {
	case "not":
		if operand != ast.BOOLEAN && operand != ast.ANY {
			a.report(cerrors.KindTypeMismatch, u, "'not' requires a boolean operand, got %s", operand)
		}
		return ast.BOOLEAN
	case "+", "-":
		if !isNumeric(operand) && operand != ast.ANY {
			a.report(cerrors.KindTypeMismatch, u, "unary %q requires a numeric operand, got %s", u.Operator, operand)
			return ast.ANY
		}
		return operand
	default:
		a.report(cerrors.KindUnsupportedFeature, u, "unsupported unary operator %q", u.Operator)
		return ast.ANY
	}
}

func (a *Analyzer) inferCall(c *ast.FunctionCall) ast.TypeMarker {
	sym, ok := a.table.Lookup(c.Callee.Name)
	if !ok {
		a.report(cerrors.KindUndefinedVariable, c, "call to undefined function %q", c.Callee.Name)
		for _, arg := range c.Arguments {
			a.inferType(arg)
		}
		return ast.ANY
	}
	if sym.Kind != symtab.KindFunction {
		a.report(cerrors.KindTypeMismatch, c, "%q is not callable", c.Callee.Name)
	}
	for _, arg := range c.Arguments {
		a.inferType(arg)
	}
	return sym.ReturnType
}
