package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/go-pyjs/internal/ast"
)

// logicalOps maps the canonical logical/identity operator spellings to
// their target equivalents.
var logicalOps = map[string]string{
	"and":    "&&",
	"or":     "||",
	"is":     "===",
	"is not": "!==",
}

// precedence mirrors the parser's ladder rung by rung (logical-or
// lowest, power highest), so parenthesization follows the same
// ordering the parser used.
func precedence(op string) int {
	switch op {
	case "or":
		return 1
	case "and":
		return 2
	case "==", "!=", ">", "<", ">=", "<=", "is", "is not":
		return 3
	case "+", "-":
		return 4
	case "*", "/", "%", "//":
		return 5
	case "**":
		return 6
	default:
		return 0
	}
}

func isComparisonOp(op string) bool {
	switch op {
	case "==", "!=", ">", "<", ">=", "<=", "is", "is not":
		return true
	}
	return false
}

// exprString renders an expression to target text with exactly the
// parentheses required to preserve meaning.
func (g *Generator) exprString(expr ast.Expression) (string, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		return e.Name, nil
	case *ast.Literal:
		return g.literalString(e)
	case *ast.BinaryOperation:
		return g.binaryString(e)
	case *ast.UnaryOperation:
		return g.unaryString(e)
	case *ast.FunctionCall:
		return g.callString(e)
	default:
		return "", fmt.Errorf("codegen: unsupported expression %T", expr)
	}
}

func (g *Generator) literalString(l *ast.Literal) (string, error) {
	switch l.Kind {
	case ast.IntLiteral:
		return strconv.FormatInt(l.Int, 10), nil
	case ast.FloatLiteral:
		return strconv.FormatFloat(l.Float, 'g', -1, 64), nil
	case ast.StringLiteral:
		return quoteString(l.Str), nil
	case ast.FStringLiteral:
		return g.templateLiteral(l.Str)
	case ast.BoolLiteral:
		if l.Bool {
			return "true", nil
		}
		return "false", nil
	case ast.NullLiteral:
		return "null", nil
	case ast.ListLiteral:
		parts := make([]string, len(l.List))
		for i, el := range l.List {
			s, err := g.exprString(el)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	default:
		return "", fmt.Errorf("codegen: unsupported literal kind %v", l.Kind)
	}
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// templateLiteral rescans an f-string's raw body: each balanced
// `{expr}` segment becomes `${expr}` with its inner text copied
// verbatim (not re-parsed), and every other character is copied with
// backtick and dollar-sign escaped.
func (g *Generator) templateLiteral(body string) (string, error) {
	var sb strings.Builder
	sb.WriteByte('`')
	runes := []rune(body)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch ch {
		case '{':
			depth := 1
			j := i + 1
			for j < len(runes) && depth > 0 {
				if runes[j] == '{' {
					depth++
				} else if runes[j] == '}' {
					depth--
				}
				if depth > 0 {
					j++
				}
			}
			if depth != 0 {
				return "", fmt.Errorf("codegen: unbalanced braces in formatted string")
			}
			sb.WriteString("${")
			sb.WriteString(string(runes[i+1 : j]))
			sb.WriteString("}")
			i = j
		case '`':
			sb.WriteString("\\`")
		case '$':
			sb.WriteString("\\$")
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(ch)
		}
	}
	sb.WriteByte('`')
	return sb.String(), nil
}

func (g *Generator) binaryString(b *ast.BinaryOperation) (string, error) {
	op := b.Operator
	comment := ""
	if op == "//" {
		// `//` maps to plain division with a passthrough comment;
		// floor division is out of scope for the numeric subset.
		op = "/"
		comment = " /* // : floor division approximated as / */"
	}
	target := op
	if mapped, ok := logicalOps[op]; ok {
		target = mapped
	}

	left, err := g.exprString(b.Left)
	if err != nil {
		return "", err
	}
	right, err := g.exprString(b.Right)
	if err != nil {
		return "", err
	}

	left = g.maybeParenChild(b, b.Left, left, false)
	right = g.maybeParenChild(b, b.Right, right, true)

	return left + " " + target + " " + right + comment, nil
}

// maybeParenChild decides operand parenthesization: the left operand
// is parenthesized iff its operator's precedence is strictly lower
// than the current node's; the right iff lower-or-equal (strictly
// lower for right-associative `**`). Comparison operands nested inside
// a logical operator are always parenthesized to disambiguate reading,
// and a unary operand directly to the left of `**` is always
// parenthesized because the target's exponentiation operator forbids
// an unparenthesized unary there.
func (g *Generator) maybeParenChild(parent *ast.BinaryOperation, child ast.Expression, rendered string, isRight bool) string {
	if parent.Operator == "**" && !isRight {
		if _, isUnary := child.(*ast.UnaryOperation); isUnary {
			return "(" + rendered + ")"
		}
	}

	childBin, ok := child.(*ast.BinaryOperation)
	if !ok {
		return rendered
	}

	if (parent.Operator == "and" || parent.Operator == "or") && isComparisonOp(childBin.Operator) {
		return "(" + rendered + ")"
	}

	parentPrec := precedence(parent.Operator)
	childPrec := precedence(childBin.Operator)

	if isRight {
		if parent.Operator == "**" {
			if childPrec < parentPrec {
				return "(" + rendered + ")"
			}
			return rendered
		}
		if childPrec <= parentPrec {
			return "(" + rendered + ")"
		}
		return rendered
	}

	if childPrec < parentPrec {
		return "(" + rendered + ")"
	}
	return rendered
}

func (g *Generator) unaryString(u *ast.UnaryOperation) (string, error) {
	operand, err := g.exprString(u.Operand)
	if err != nil {
		return "", err
	}
	op := u.Operator
	if op == "not" {
		op = "!"
	}
	// A binary operand is never atomic, so it is always parenthesized
	// under a prefix operator: `not (x == y)` over a comparison operand
	// must emit `!(x == y)`, not `!x == y`.
	if _, isBinary := u.Operand.(*ast.BinaryOperation); isBinary {
		operand = "(" + operand + ")"
	}
	return op + operand, nil
}

func (g *Generator) callString(c *ast.FunctionCall) (string, error) {
	name := c.Callee.Name
	if name == "print" {
		name = "console.log"
	}
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		s, err := g.exprString(a)
		if err != nil {
			return "", err
		}
		args[i] = s
	}
	return name + "(" + strings.Join(args, ", ") + ")", nil
}
