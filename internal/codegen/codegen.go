// Package codegen walks the analyzed AST and emits equivalent target
// program text: a curly-braced, C-family scripting language with
// lexical scoping and template literals. Expression visitors return
// owned strings; only statement visitors write directly to the output
// buffer.
package codegen

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-pyjs/internal/ast"
)

// Generator emits one translation unit. Construct one per run; nothing
// is shared across runs.
type Generator struct {
	out strings.Builder

	indent int

	// declared tracks names already bound with `let` in the output
	// stream, so a later Assignment to the same name in the same
	// (flattened, function-level) scope writes a plain assignment
	// instead of redeclaring it.
	declared map[string]bool

	usesRange bool
	usesStr   bool

	mainGuardSeen bool
	hasMainFunc   bool

	disableRangeShim bool
	disableStrShim   bool
}

// Option configures a Generator at construction time.
type Option func(*Generator)

// WithoutRangeShim suppresses the `range` runtime shim even when it is
// referenced, for projects that provide their own host implementation
// (internal/config "shim toggles").
func WithoutRangeShim() Option {
	return func(g *Generator) { g.disableRangeShim = true }
}

// WithoutStrShim suppresses the `str` runtime shim even when it is
// referenced (internal/config "shim toggles").
func WithoutStrShim() Option {
	return func(g *Generator) { g.disableStrShim = true }
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{declared: make(map[string]bool)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces the target program text for prog.
func (g *Generator) Generate(prog *ast.Program) (string, error) {
	g.scan(prog.Statements)

	g.writeLine(`"use strict";`)

	if g.usesRange && !g.disableRangeShim {
		g.out.WriteString("\n")
		g.writeShim(rangeShim)
	}
	if g.usesStr && !g.disableStrShim {
		g.out.WriteString("\n")
		g.writeShim(strShim)
	}

	g.out.WriteString("\n")
	for _, stmt := range prog.Statements {
		if g.isMainGuard(stmt) {
			continue
		}
		if err := g.emitStatement(stmt); err != nil {
			return "", err
		}
	}

	if g.mainGuardSeen && g.hasMainFunc {
		g.out.WriteString("\n")
		g.writeLine("main();")
	}

	return g.out.String(), nil
}

func (g *Generator) writeLine(s string) {
	g.out.WriteString(strings.Repeat("  ", g.indent))
	g.out.WriteString(s)
	g.out.WriteString("\n")
}

func (g *Generator) writeShim(src string) {
	g.out.WriteString(src)
	g.out.WriteString("\n")
}

// isMainGuard recognizes `if __name__ == "__main__":` at module level,
// which is suppressed from the output in favor of a trailing
// `main();` call.
func (g *Generator) isMainGuard(stmt ast.Statement) bool {
	ifs, ok := stmt.(*ast.IfStatement)
	if !ok {
		return false
	}
	bin, ok := ifs.Condition.(*ast.BinaryOperation)
	if !ok || bin.Operator != "==" {
		return false
	}
	left, ok := bin.Left.(*ast.Identifier)
	if !ok || left.Name != "__name__" {
		return false
	}
	right, ok := bin.Right.(*ast.Literal)
	if !ok || right.Kind != ast.StringLiteral || right.Str != "__main__" {
		return false
	}
	return true
}

func (g *Generator) emitStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.Import:
		g.writeLine(fmt.Sprintf("// import %s", s.Module))
		return nil
	case *ast.FunctionDeclaration:
		return g.emitFunctionDeclaration(s)
	case *ast.VariableDeclaration:
		return g.emitVariableDeclaration(s)
	case *ast.Assignment:
		return g.emitAssignment(s)
	case *ast.IfStatement:
		return g.emitIf(s)
	case *ast.WhileLoop:
		return g.emitWhile(s)
	case *ast.ForLoop:
		return g.emitFor(s)
	case *ast.Block:
		return g.emitBlockStatements(s)
	case *ast.ExpressionStatement:
		expr, err := g.exprString(s.Expr)
		if err != nil {
			return err
		}
		g.writeLine(expr + ";")
		return nil
	case *ast.ReturnStatement:
		if s.Value == nil {
			g.writeLine("return;")
			return nil
		}
		val, err := g.exprString(s.Value)
		if err != nil {
			return err
		}
		g.writeLine("return " + val + ";")
		return nil
	case *ast.BreakStatement:
		g.writeLine("break;")
		return nil
	case *ast.ContinueStatement:
		g.writeLine("continue;")
		return nil
	default:
		return fmt.Errorf("codegen: unsupported statement %T", stmt)
	}
}

func (g *Generator) emitFunctionDeclaration(f *ast.FunctionDeclaration) error {
	if f.Name == "main" {
		g.hasMainFunc = true
	}
	g.writeLine(fmt.Sprintf("function %s(%s) {", f.Name, strings.Join(f.Parameters, ", ")))
	g.indent++
	outer := g.declared
	g.declared = make(map[string]bool, len(outer))
	for k, v := range outer {
		g.declared[k] = v
	}
	for _, p := range f.Parameters {
		g.declared[p] = true
	}
	if err := g.emitBlockStatements(f.Body); err != nil {
		return err
	}
	g.declared = outer
	g.indent--
	g.writeLine("}")
	return nil
}

func (g *Generator) emitVariableDeclaration(v *ast.VariableDeclaration) error {
	if v.Initializer == nil {
		g.writeLine("let " + v.Name + ";")
		g.declared[v.Name] = true
		return nil
	}
	val, err := g.exprString(v.Initializer)
	if err != nil {
		return err
	}
	g.writeLine("let " + v.Name + " = " + val + ";")
	g.declared[v.Name] = true
	return nil
}

// emitAssignment decides between `let NAME = EXPR;` on first binding
// and a plain `NAME = EXPR;` afterwards, tracking which names have
// already been declared in the output stream.
func (g *Generator) emitAssignment(a *ast.Assignment) error {
	val, err := g.exprString(a.Value)
	if err != nil {
		return err
	}
	name := a.Target.Name
	if g.declared[name] {
		g.writeLine(name + " = " + val + ";")
		return nil
	}
	g.declared[name] = true
	g.writeLine("let " + name + " = " + val + ";")
	return nil
}

func (g *Generator) emitBlockStatements(b *ast.Block) error {
	for _, stmt := range b.Statements {
		if err := g.emitStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) emitIf(s *ast.IfStatement) error {
	cond, err := g.exprString(s.Condition)
	if err != nil {
		return err
	}
	g.writeLine(fmt.Sprintf("if (%s) {", cond))
	g.indent++
	if err := g.emitBlockStatements(s.Then); err != nil {
		return err
	}
	g.indent--

	switch e := s.Else.(type) {
	case nil:
		g.writeLine("}")
	case *ast.Block:
		g.writeLine("} else {")
		g.indent++
		if err := g.emitBlockStatements(e); err != nil {
			return err
		}
		g.indent--
		g.writeLine("}")
	case *ast.IfStatement:
		// elif chains emit `} else if (COND) { ... }` by detecting an
		// IfStatement as the else-branch.
		elifCond, err := g.exprString(e.Condition)
		if err != nil {
			return err
		}
		g.writeLine(fmt.Sprintf("} else if (%s) {", elifCond))
		g.indent++
		if err := g.emitBlockStatements(e.Then); err != nil {
			return err
		}
		g.indent--
		return g.emitElseTail(e.Else)
	}
	return nil
}

// emitElseTail continues an elif chain's else-branch without the
// leading `if (...) {` that emitIf already wrote for the first clause.
func (g *Generator) emitElseTail(elseNode ast.Node) error {
	switch e := elseNode.(type) {
	case nil:
		g.writeLine("}")
		return nil
	case *ast.Block:
		g.writeLine("} else {")
		g.indent++
		if err := g.emitBlockStatements(e); err != nil {
			return err
		}
		g.indent--
		g.writeLine("}")
		return nil
	case *ast.IfStatement:
		cond, err := g.exprString(e.Condition)
		if err != nil {
			return err
		}
		g.writeLine(fmt.Sprintf("} else if (%s) {", cond))
		g.indent++
		if err := g.emitBlockStatements(e.Then); err != nil {
			return err
		}
		g.indent--
		return g.emitElseTail(e.Else)
	default:
		return fmt.Errorf("codegen: unsupported else-branch %T", elseNode)
	}
}

func (g *Generator) emitWhile(w *ast.WhileLoop) error {
	cond, err := g.exprString(w.Condition)
	if err != nil {
		return err
	}
	g.writeLine(fmt.Sprintf("while (%s) {", cond))
	g.indent++
	if err := g.emitBlockStatements(w.Body); err != nil {
		return err
	}
	g.indent--
	g.writeLine("}")
	return nil
}

func (g *Generator) emitFor(f *ast.ForLoop) error {
	iter, err := g.exprString(f.Iterable)
	if err != nil {
		return err
	}
	g.writeLine(fmt.Sprintf("for (let %s of %s) {", f.LoopVar.Name, iter))
	g.indent++
	outerDeclared := g.declared[f.LoopVar.Name]
	g.declared[f.LoopVar.Name] = true
	if err := g.emitBlockStatements(f.Body); err != nil {
		return err
	}
	g.declared[f.LoopVar.Name] = outerDeclared
	g.indent--
	g.writeLine("}")
	return nil
}
