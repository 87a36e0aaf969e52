// Package parser implements a recursive-descent, precedence-climbing
// parser over the lexer's token stream. It consumes the whole token
// slice and produces a *ast.Program; there is no streaming between
// stages.
package parser

import (
	"fmt"

	"github.com/cwbudde/go-pyjs/internal/ast"
	cerrors "github.com/cwbudde/go-pyjs/internal/errors"
	"github.com/cwbudde/go-pyjs/internal/token"
)

// Precedence levels, lowest first: logical-or, logical-and,
// comparison, addition, multiplication, power, unary.
const (
	_ int = iota
	lowest
	logicalOr
	logicalAnd
	comparison
	addition
	multiplication
	power
	unary
)

// Parser turns a token slice into a *ast.Program. It is single-use:
// construct one per translation run.
type Parser struct {
	tokens []token.Token
	pos    int

	errs []*cerrors.CompilerError
}

// New creates a Parser over a complete token slice (the lexer's whole
// output).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns the parse-stage diagnostics recorded so far. Parse
// errors are fatal: the parser stops descending into further statements
// once the first is recorded, but still returns whatever partial
// Program it built so a caller inspecting it for debugging (e.g. the
// `parse` CLI subcommand) has something to show.
func (p *Parser) Errors() []*cerrors.CompilerError { return p.errs }

func (p *Parser) fatalf(kind cerrors.Kind, pos token.Position, format string, args ...any) {
	p.errs = append(p.errs, cerrors.New(cerrors.StageParse, kind, pos, fmt.Sprintf(format, args...)))
}

func (p *Parser) failed() bool { return len(p.errs) > 0 }

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

// peek looks one token ahead without advancing. The whole token stream
// is already buffered, so assignment detection needs no scanner
// savepoint/restore; lookahead is plain slice indexing.
func (p *Parser) peek() token.Token {
	return p.at(p.pos + 1)
}

func (p *Parser) at(i int) token.Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur().Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek().Type == t }

// expect advances past the current token if it matches t, else
// records a missing-token diagnostic and returns false.
func (p *Parser) expect(t token.Type) bool {
	if p.curIs(t) {
		p.advance()
		return true
	}
	p.fatalf(cerrors.KindMissingToken, p.cur().Pos, "expected %s, got %s (%q)", t, p.cur().Type, p.cur().Lexeme)
	return false
}

// skipStray advances past stray NEWLINE/DEDENT tokens at the top
// level.
func (p *Parser) skipStray() {
	for p.curIs(token.NEWLINE) || p.curIs(token.DEDENT) {
		p.advance()
	}
}

// Parse runs the whole recursive-descent pass over the token slice.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{BaseNode: ast.BaseNode{Position: p.cur().Pos}}

	for !p.curIs(token.EOF) && !p.failed() {
		p.skipStray()
		if p.curIs(token.EOF) || p.failed() {
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		if p.failed() {
			break
		}
	}

	return prog
}
