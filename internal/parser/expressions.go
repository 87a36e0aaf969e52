package parser

import (
	"strconv"

	"github.com/cwbudde/go-pyjs/internal/ast"
	cerrors "github.com/cwbudde/go-pyjs/internal/errors"
	"github.com/cwbudde/go-pyjs/internal/token"
)

// parseExpression enters the precedence ladder at its lowest rung.
// The ladder itself is fixed, so every caller starts from logical-or;
// the precedence argument exists only so call sites read like a
// conventional Pratt parser entry point.
func (p *Parser) parseExpression(_ int) ast.Expression {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() ast.Expression {
	left := p.parseLogicalAnd()
	for left != nil && p.curIs(token.OR) {
		pos := p.advance().Pos
		right := p.parseLogicalAnd()
		if right == nil {
			return nil
		}
		left = &ast.BinaryOperation{BaseNode: ast.BaseNode{Position: pos}, Left: left, Right: right, Operator: "or"}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	left := p.parseComparison()
	for left != nil && p.curIs(token.AND) {
		pos := p.advance().Pos
		right := p.parseComparison()
		if right == nil {
			return nil
		}
		left = &ast.BinaryOperation{BaseNode: ast.BaseNode{Position: pos}, Left: left, Right: right, Operator: "and"}
	}
	return left
}

// comparisonOps maps comparison token types to their canonical
// operator spelling. Comparisons chain left-to-right as a sequence of
// binary operations; `a < b < c` is `(a < b) < c`, not a chained
// range check.
var comparisonOps = map[token.Type]string{
	token.EQ:         "==",
	token.NOT_EQ:     "!=",
	token.GREATER:    ">",
	token.LESS:       "<",
	token.GREATER_EQ: ">=",
	token.LESS_EQ:    "<=",
}

func (p *Parser) parseComparison() ast.Expression {
	left := p.parseAddition()
	for left != nil {
		if op, ok := comparisonOps[p.cur().Type]; ok {
			pos := p.advance().Pos
			right := p.parseAddition()
			if right == nil {
				return nil
			}
			left = &ast.BinaryOperation{BaseNode: ast.BaseNode{Position: pos}, Left: left, Right: right, Operator: op}
			continue
		}
		if p.curIs(token.IS) {
			pos := p.advance().Pos
			op := "is"
			if p.curIs(token.NOT) {
				p.advance()
				op = "is not"
			}
			right := p.parseAddition()
			if right == nil {
				return nil
			}
			left = &ast.BinaryOperation{BaseNode: ast.BaseNode{Position: pos}, Left: left, Right: right, Operator: op}
			continue
		}
		break
	}
	return left
}

func (p *Parser) parseAddition() ast.Expression {
	left := p.parseMultiplication()
	for left != nil && (p.curIs(token.PLUS) || p.curIs(token.MINUS)) {
		opTok := p.advance()
		right := p.parseMultiplication()
		if right == nil {
			return nil
		}
		left = &ast.BinaryOperation{BaseNode: ast.BaseNode{Position: opTok.Pos}, Left: left, Right: right, Operator: opTok.Lexeme}
	}
	return left
}

func (p *Parser) parseMultiplication() ast.Expression {
	left := p.parsePower()
	for left != nil && (p.curIs(token.ASTERISK) || p.curIs(token.SLASH) || p.curIs(token.PERCENT)) {
		opTok := p.advance()
		right := p.parsePower()
		if right == nil {
			return nil
		}
		left = &ast.BinaryOperation{BaseNode: ast.BaseNode{Position: opTok.Pos}, Left: left, Right: right, Operator: opTok.Lexeme}
	}
	return left
}

// parsePower is right-associative: `2 ** 3 ** 2` parses as
// `2 ** (3 ** 2)`.
func (p *Parser) parsePower() ast.Expression {
	base := p.parseUnary()
	if base == nil {
		return nil
	}
	if p.curIs(token.POWER) {
		pos := p.advance().Pos
		right := p.parsePower()
		if right == nil {
			return nil
		}
		return &ast.BinaryOperation{BaseNode: ast.BaseNode{Position: pos}, Left: base, Right: right, Operator: "**"}
	}
	return base
}

func (p *Parser) parseUnary() ast.Expression {
	switch p.cur().Type {
	case token.PLUS, token.MINUS:
		opTok := p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &ast.UnaryOperation{BaseNode: ast.BaseNode{Position: opTok.Pos}, Operator: opTok.Lexeme, Operand: operand}
	case token.NOT:
		pos := p.advance().Pos
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &ast.UnaryOperation{BaseNode: ast.BaseNode{Position: pos}, Operator: "not", Operand: operand}
	default:
		return p.parsePrimary()
	}
}

// parsePrimary parses identifiers (optionally followed by a call),
// parenthesized expressions, bracketed list literals, and atomic
// literals.
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur()
	switch tok.Type {
	case token.INT:
		p.advance()
		v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			p.fatalf(cerrors.KindUnexpectedToken, tok.Pos, "invalid integer literal %q", tok.Lexeme)
			return nil
		}
		return &ast.Literal{BaseNode: ast.BaseNode{Position: tok.Pos}, Kind: ast.IntLiteral, Int: v}
	case token.FLOAT:
		p.advance()
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			p.fatalf(cerrors.KindUnexpectedToken, tok.Pos, "invalid float literal %q", tok.Lexeme)
			return nil
		}
		return &ast.Literal{BaseNode: ast.BaseNode{Position: tok.Pos}, Kind: ast.FloatLiteral, Float: v}
	case token.STRING:
		p.advance()
		return &ast.Literal{BaseNode: ast.BaseNode{Position: tok.Pos}, Kind: ast.StringLiteral, Str: tok.Lexeme}
	case token.FSTRING:
		p.advance()
		return &ast.Literal{BaseNode: ast.BaseNode{Position: tok.Pos}, Kind: ast.FStringLiteral, Str: tok.Lexeme}
	case token.CHAR:
		p.advance()
		return &ast.Literal{BaseNode: ast.BaseNode{Position: tok.Pos}, Kind: ast.StringLiteral, Str: tok.Lexeme}
	case token.TRUE:
		p.advance()
		return &ast.Literal{BaseNode: ast.BaseNode{Position: tok.Pos}, Kind: ast.BoolLiteral, Bool: true}
	case token.FALSE:
		p.advance()
		return &ast.Literal{BaseNode: ast.BaseNode{Position: tok.Pos}, Kind: ast.BoolLiteral, Bool: false}
	case token.NULL:
		p.advance()
		return &ast.Literal{BaseNode: ast.BaseNode{Position: tok.Pos}, Kind: ast.NullLiteral}
	case token.VARIABLE:
		return p.parseIdentifierOrCall()
	case token.PRINT:
		return p.parseBuiltinCall("print")
	case token.TYPE_STR:
		return p.parseBuiltinCall("str")
	case token.LPAREN:
		p.advance()
		inner := p.parseExpression(lowest)
		if inner == nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return inner
	case token.LBRACK:
		return p.parseListLiteral()
	default:
		p.fatalf(cerrors.KindUnexpectedToken, tok.Pos, "unexpected token %s (%q) in expression", tok.Type, tok.Lexeme)
		return nil
	}
}

func (p *Parser) parseIdentifierOrCall() ast.Expression {
	tok := p.advance()
	ident := &ast.Identifier{BaseNode: ast.BaseNode{Position: tok.Pos}, Name: tok.Lexeme}
	if !p.curIs(token.LPAREN) {
		return ident
	}
	return p.finishCall(ident)
}

func (p *Parser) parseBuiltinCall(name string) ast.Expression {
	tok := p.advance()
	ident := &ast.Identifier{BaseNode: ast.BaseNode{Position: tok.Pos}, Name: name}
	if !p.curIs(token.LPAREN) {
		p.fatalf(cerrors.KindMissingToken, p.cur().Pos, "expected ( after %s", name)
		return nil
	}
	return p.finishCall(ident)
}

func (p *Parser) finishCall(callee *ast.Identifier) ast.Expression {
	p.advance() // '('
	var args []ast.Expression
	for !p.curIs(token.RPAREN) {
		arg := p.parseExpression(lowest)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return &ast.FunctionCall{BaseNode: ast.BaseNode{Position: callee.Position}, Callee: callee, Arguments: args}
}

// parseListLiteral parses `[ e1, e2, ... ]`. Elements may be any
// expression, not only nested literals.
func (p *Parser) parseListLiteral() ast.Expression {
	pos := p.cur().Pos
	p.advance() // '['
	lit := &ast.Literal{BaseNode: ast.BaseNode{Position: pos}, Kind: ast.ListLiteral}
	for !p.curIs(token.RBRACK) {
		el := p.parseExpression(lowest)
		if el == nil {
			return nil
		}
		lit.List = append(lit.List, el)
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	if !p.expect(token.RBRACK) {
		return nil
	}
	return lit
}
