package codegen

import "github.com/cwbudde/go-pyjs/internal/ast"

// rangeShim emulates the source dialect's `range(start?, stop, step?)`,
// returning an array rather than a lazy iterator: the subset's
// `for ... in` form only ever walks the result once, so materializing
// it up front keeps the shim simple.
const rangeShim = `function range(a, b, c) {
  let start = 0, stop = a, step = 1;
  if (b !== undefined) { start = a; stop = b; }
  if (c !== undefined) { step = c; }
  if (step === 0) { throw new Error("range() step must not be zero"); }
  const out = [];
  if (step > 0) {
    for (let i = start; i < stop; i += step) out.push(i);
  } else {
    for (let i = start; i > stop; i += step) out.push(i);
  }
  return out;
}
`

// strShim emulates the source dialect's `str(value)` builtin coercion.
const strShim = `function str(v) {
  if (v === null) return "null";
  return String(v);
}
`

// scan walks the whole program once before any text is emitted so the
// header can decide which runtime shims to prepend and whether the
// `__name__ == "__main__"` guard (and thus the trailing `main();`
// call) is present. Both decisions need to see the whole tree, not
// just the statement being emitted at the time; a shim is written at
// most once per translation unit and only when referenced.
func (g *Generator) scan(stmts []ast.Statement) {
	for _, stmt := range stmts {
		if g.isMainGuard(stmt) {
			g.mainGuardSeen = true
			continue
		}
		g.scanStatement(stmt)
	}
}

func (g *Generator) scanStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.FunctionDeclaration:
		if s.Name == "main" {
			// hasMainFunc is also set while emitting; Generate reads
			// it after the last statement to decide about the
			// trailing call.
			g.hasMainFunc = true
		}
		g.scanStatement(s.Body)
	case *ast.VariableDeclaration:
		if s.Initializer != nil {
			g.scanExpr(s.Initializer)
		}
	case *ast.Assignment:
		g.scanExpr(s.Value)
	case *ast.IfStatement:
		g.scanExpr(s.Condition)
		g.scanStatement(s.Then)
		if s.Else != nil {
			g.scanElse(s.Else)
		}
	case *ast.WhileLoop:
		g.scanExpr(s.Condition)
		g.scanStatement(s.Body)
	case *ast.ForLoop:
		g.scanExpr(s.Iterable)
		g.scanStatement(s.Body)
	case *ast.Block:
		for _, inner := range s.Statements {
			g.scanStatement(inner)
		}
	case *ast.ExpressionStatement:
		g.scanExpr(s.Expr)
	case *ast.ReturnStatement:
		if s.Value != nil {
			g.scanExpr(s.Value)
		}
	case *ast.Import, *ast.BreakStatement, *ast.ContinueStatement:
		// no nested expressions to scan
	}
}

func (g *Generator) scanElse(node ast.Node) {
	switch e := node.(type) {
	case *ast.Block:
		for _, inner := range e.Statements {
			g.scanStatement(inner)
		}
	case *ast.IfStatement:
		g.scanExpr(e.Condition)
		g.scanStatement(e.Then)
		if e.Else != nil {
			g.scanElse(e.Else)
		}
	}
}

func (g *Generator) scanExpr(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.BinaryOperation:
		g.scanExpr(e.Left)
		g.scanExpr(e.Right)
	case *ast.UnaryOperation:
		g.scanExpr(e.Operand)
	case *ast.Literal:
		if e.Kind == ast.ListLiteral {
			for _, el := range e.List {
				g.scanExpr(el)
			}
		}
	case *ast.FunctionCall:
		switch e.Callee.Name {
		case "range":
			g.usesRange = true
		case "str":
			g.usesStr = true
		}
		for _, arg := range e.Arguments {
			g.scanExpr(arg)
		}
	}
}
