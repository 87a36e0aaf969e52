package parser

import (
	"github.com/cwbudde/go-pyjs/internal/ast"
	cerrors "github.com/cwbudde/go-pyjs/internal/errors"
	"github.com/cwbudde/go-pyjs/internal/token"
)

// compoundOps maps compound-assignment tokens to the arithmetic
// operator they expand into: `x += e` becomes `x = x + e`.
var compoundOps = map[token.Type]string{
	token.PLUS_ASSIGN:    "+",
	token.MINUS_ASSIGN:   "-",
	token.TIMES_ASSIGN:   "*",
	token.DIVIDE_ASSIGN:  "/",
	token.PERCENT_ASSIGN: "%",
}

// parseStatement dispatches on the current token kind.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur().Type {
	case token.IMPORT:
		return p.parseImport()
	case token.DEF:
		return p.parseFunctionDeclaration()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileLoop()
	case token.FOR:
		return p.parseForLoop()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		return p.parseBreak()
	case token.CONTINUE:
		return p.parseContinue()
	case token.VARIABLE:
		if p.peekIs(token.ASSIGN) {
			return p.parseAssignment()
		}
		if _, ok := compoundOps[p.peek().Type]; ok {
			return p.parseCompoundAssignment()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) endStatement() {
	if p.curIs(token.NEWLINE) {
		p.advance()
	}
}

func (p *Parser) parseImport() ast.Statement {
	pos := p.cur().Pos
	p.advance() // 'import'
	if !p.curIs(token.VARIABLE) {
		p.fatalf(cerrors.KindUnexpectedToken, p.cur().Pos, "expected module name after import, got %s", p.cur().Type)
		return nil
	}
	name := p.advance().Lexeme
	p.endStatement()
	return &ast.Import{BaseNode: ast.BaseNode{Position: pos}, Module: name}
}

func (p *Parser) parseFunctionDeclaration() ast.Statement {
	pos := p.cur().Pos
	p.advance() // 'def'

	if !p.curIs(token.VARIABLE) {
		p.fatalf(cerrors.KindUnexpectedToken, p.cur().Pos, "expected function name, got %s", p.cur().Type)
		return nil
	}
	name := p.advance().Lexeme

	if !p.expect(token.LPAREN) {
		return nil
	}
	var params []string
	for !p.curIs(token.RPAREN) {
		if !p.curIs(token.VARIABLE) {
			p.fatalf(cerrors.KindUnexpectedToken, p.cur().Pos, "expected parameter name, got %s", p.cur().Type)
			return nil
		}
		params = append(params, p.advance().Lexeme)
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	if !p.expect(token.COLON) {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return &ast.FunctionDeclaration{
		BaseNode:   ast.BaseNode{Position: pos},
		Name:       name,
		Parameters: params,
		Body:       body,
		ReturnType: ast.ANY,
	}
}

func (p *Parser) parseIfStatement() ast.Statement {
	pos := p.cur().Pos
	p.advance() // 'if'
	cond := p.parseExpression(lowest)
	if cond == nil {
		return nil
	}
	if !p.expect(token.COLON) {
		return nil
	}
	thenBlock := p.parseBlock()
	if thenBlock == nil {
		return nil
	}

	stmt := &ast.IfStatement{BaseNode: ast.BaseNode{Position: pos}, Condition: cond, Then: thenBlock}

	p.skipStrayWithinBlock()
	switch {
	case p.curIs(token.ELIF):
		// An elif becomes a nested IfStatement as the else-branch,
		// never a flattened elseif list — reuse the same production
		// starting at the elif's own 'if'-shaped condition.
		elifPos := p.cur().Pos
		p.advance() // 'elif'
		elifCond := p.parseExpression(lowest)
		if elifCond == nil {
			return nil
		}
		if !p.expect(token.COLON) {
			return nil
		}
		elifBody := p.parseBlock()
		if elifBody == nil {
			return nil
		}
		nested := &ast.IfStatement{BaseNode: ast.BaseNode{Position: elifPos}, Condition: elifCond, Then: elifBody}
		stmt.Else = p.parseElifTail(nested)
	case p.curIs(token.ELSE):
		p.advance()
		if !p.expect(token.COLON) {
			return nil
		}
		elseBlock := p.parseBlock()
		if elseBlock == nil {
			return nil
		}
		stmt.Else = elseBlock
	}
	return stmt
}

// parseElifTail recurses to chain further `elif`/`else` clauses onto
// an already-parsed elif node, preserving the nested-IfStatement shape
// rather than flattening the chain.
func (p *Parser) parseElifTail(node *ast.IfStatement) ast.Node {
	p.skipStrayWithinBlock()
	switch {
	case p.curIs(token.ELIF):
		pos := p.cur().Pos
		p.advance()
		cond := p.parseExpression(lowest)
		if cond == nil {
			return node
		}
		if !p.expect(token.COLON) {
			return node
		}
		body := p.parseBlock()
		if body == nil {
			return node
		}
		next := &ast.IfStatement{BaseNode: ast.BaseNode{Position: pos}, Condition: cond, Then: body}
		node.Else = p.parseElifTail(next)
		return node
	case p.curIs(token.ELSE):
		p.advance()
		if !p.expect(token.COLON) {
			return node
		}
		elseBlock := p.parseBlock()
		if elseBlock == nil {
			return node
		}
		node.Else = elseBlock
		return node
	default:
		return node
	}
}

func (p *Parser) parseWhileLoop() ast.Statement {
	pos := p.cur().Pos
	p.advance() // 'while'
	cond := p.parseExpression(lowest)
	if cond == nil {
		return nil
	}
	if !p.expect(token.COLON) {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.WhileLoop{BaseNode: ast.BaseNode{Position: pos}, Condition: cond, Body: body}
}

func (p *Parser) parseForLoop() ast.Statement {
	pos := p.cur().Pos
	p.advance() // 'for'
	if !p.curIs(token.VARIABLE) {
		p.fatalf(cerrors.KindUnexpectedToken, p.cur().Pos, "expected loop variable, got %s", p.cur().Type)
		return nil
	}
	varPos := p.cur().Pos
	loopVar := &ast.Identifier{BaseNode: ast.BaseNode{Position: varPos}, Name: p.advance().Lexeme}

	if !p.expect(token.IN) {
		return nil
	}
	iterable := p.parseExpression(lowest)
	if iterable == nil {
		return nil
	}
	if !p.expect(token.COLON) {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.ForLoop{BaseNode: ast.BaseNode{Position: pos}, LoopVar: loopVar, Iterable: iterable, Body: body}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	pos := p.cur().Pos
	p.advance() // 'return'
	if p.curIs(token.NEWLINE) || p.curIs(token.DEDENT) || p.curIs(token.EOF) {
		p.endStatement()
		return &ast.ReturnStatement{BaseNode: ast.BaseNode{Position: pos}}
	}
	val := p.parseExpression(lowest)
	if val == nil {
		return nil
	}
	p.endStatement()
	return &ast.ReturnStatement{BaseNode: ast.BaseNode{Position: pos}, Value: val}
}

func (p *Parser) parseBreak() ast.Statement {
	pos := p.cur().Pos
	p.advance()
	p.endStatement()
	return &ast.BreakStatement{BaseNode: ast.BaseNode{Position: pos}}
}

func (p *Parser) parseContinue() ast.Statement {
	pos := p.cur().Pos
	p.advance()
	p.endStatement()
	return &ast.ContinueStatement{BaseNode: ast.BaseNode{Position: pos}}
}

func (p *Parser) parseAssignment() ast.Statement {
	pos := p.cur().Pos
	target := &ast.Identifier{BaseNode: ast.BaseNode{Position: pos}, Name: p.advance().Lexeme}
	p.advance() // '='
	val := p.parseExpression(lowest)
	if val == nil {
		return nil
	}
	p.endStatement()
	return &ast.Assignment{BaseNode: ast.BaseNode{Position: pos}, Target: target, Value: val}
}

// parseCompoundAssignment expands `x += e` into `x = x + e` at parse
// time, so every later stage only ever sees plain Assignment nodes.
func (p *Parser) parseCompoundAssignment() ast.Statement {
	pos := p.cur().Pos
	name := p.advance().Lexeme
	opTok := p.advance()
	op := compoundOps[opTok.Type]

	rhs := p.parseExpression(lowest)
	if rhs == nil {
		return nil
	}
	p.endStatement()

	target := &ast.Identifier{BaseNode: ast.BaseNode{Position: pos}, Name: name}
	expanded := &ast.BinaryOperation{
		BaseNode: ast.BaseNode{Position: pos},
		Left:     &ast.Identifier{BaseNode: ast.BaseNode{Position: pos}, Name: name},
		Right:    rhs,
		Operator: op,
	}
	return &ast.Assignment{BaseNode: ast.BaseNode{Position: pos}, Target: target, Value: expanded}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	pos := p.cur().Pos
	expr := p.parseExpression(lowest)
	if expr == nil {
		return nil
	}
	p.endStatement()
	return &ast.ExpressionStatement{BaseNode: ast.BaseNode{Position: pos}, Expr: expr}
}

// parseBlock parses the body following a ':'. It expects INDENT then
// statements until DEDENT (or EOF, `else`, `elif`, which terminate
// without consuming); when no INDENT follows, the block is a single
// inline statement.
func (p *Parser) parseBlock() *ast.Block {
	pos := p.cur().Pos

	if p.curIs(token.NEWLINE) {
		p.advance()
	}

	if !p.curIs(token.INDENT) {
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		return &ast.Block{BaseNode: ast.BaseNode{Position: pos}, Statements: []ast.Statement{stmt}}
	}
	p.advance() // INDENT

	block := &ast.Block{BaseNode: ast.BaseNode{Position: pos}}
	for !p.curIs(token.DEDENT) && !p.curIs(token.EOF) && !p.curIs(token.ELSE) && !p.curIs(token.ELIF) {
		p.skipStrayWithinBlock()
		if p.curIs(token.DEDENT) || p.curIs(token.EOF) || p.curIs(token.ELSE) || p.curIs(token.ELIF) {
			break
		}
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
		if p.failed() {
			return nil
		}
	}
	if p.curIs(token.DEDENT) {
		p.advance()
	}
	return block
}

// skipStrayWithinBlock skips stray NEWLINE tokens between statements
// without consuming a DEDENT that would terminate the block.
func (p *Parser) skipStrayWithinBlock() {
	for p.curIs(token.NEWLINE) {
		p.advance()
	}
}
