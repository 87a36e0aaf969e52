// Package semantic implements declaration/use checking and shallow
// type-compatibility checking over the lexically scoped symbol table
// in internal/symtab.
package semantic

import (
	"fmt"

	"github.com/cwbudde/go-pyjs/internal/ast"
	cerrors "github.com/cwbudde/go-pyjs/internal/errors"
	"github.com/cwbudde/go-pyjs/internal/symtab"
)

// Analyzer walks a *ast.Program once, collecting every diagnostic it
// finds rather than aborting on the first.
type Analyzer struct {
	table *symtab.Table
	errs  []*cerrors.CompilerError

	// returnStack tracks the declared return type of each enclosing
	// function, innermost last, so `return` statements can be checked
	// against it.
	returnStack []ast.TypeMarker
}

// New creates an Analyzer with a fresh module scope pre-populated with
// builtins.
func New() *Analyzer {
	return &Analyzer{table: symtab.New()}
}

// Analyze runs the pass and returns every diagnostic collected.
// Translation succeeds iff the returned slice is empty.
func (a *Analyzer) Analyze(prog *ast.Program) []*cerrors.CompilerError {
	for _, stmt := range prog.Statements {
		a.analyzeStatement(stmt)
	}
	return a.errs
}

func (a *Analyzer) report(kind cerrors.Kind, pos ast.Node, format string, args ...any) {
	a.errs = append(a.errs, cerrors.New(cerrors.StageSemantic, kind, pos.Pos(), fmt.Sprintf(format, args...)))
}

func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Import:
		// No declarations; imports carry no semantic weight in the
		// pedagogical subset.
	case *ast.FunctionDeclaration:
		a.analyzeFunctionDeclaration(s)
	case *ast.VariableDeclaration:
		a.analyzeVariableDeclaration(s)
	case *ast.Assignment:
		a.analyzeAssignment(s)
	case *ast.IfStatement:
		a.analyzeIfStatement(s)
	case *ast.WhileLoop:
		a.analyzeWhileLoop(s)
	case *ast.ForLoop:
		a.analyzeForLoop(s)
	case *ast.Block:
		a.analyzeBlock(s)
	case *ast.ExpressionStatement:
		a.inferType(s.Expr)
	case *ast.ReturnStatement:
		a.analyzeReturn(s)
	case *ast.BreakStatement, *ast.ContinueStatement:
		// break/continue carry no symbols to check.
	default:
		a.report(cerrors.KindUnsupportedFeature, stmt, "unsupported statement %T", stmt)
	}
}

// analyzeBlock does NOT push a scope: Block never introduces one of
// its own. Scoping is per-function, so a name bound inside a nested
// block is the same variable when rebound later in the function.
func (a *Analyzer) analyzeBlock(b *ast.Block) {
	for _, stmt := range b.Statements {
		a.analyzeStatement(stmt)
	}
}

func (a *Analyzer) analyzeFunctionDeclaration(f *ast.FunctionDeclaration) {
	sym := &symtab.Symbol{
		Name:       f.Name,
		Kind:       symtab.KindFunction,
		Type:       f.ReturnType,
		Pos:        f.Position,
		ReturnType: f.ReturnType,
	}
	for range f.Parameters {
		sym.ParamTypes = append(sym.ParamTypes, ast.ANY)
	}
	if !a.table.Declare(sym) {
		a.report(cerrors.KindRedeclaration, f, "function %q already declared in this scope", f.Name)
	}

	a.table.PushScope()
	for _, param := range f.Parameters {
		a.table.Declare(&symtab.Symbol{Name: param, Kind: symtab.KindParameter, Type: ast.ANY, Pos: f.Position})
	}
	a.returnStack = append(a.returnStack, f.ReturnType)
	a.analyzeBlock(f.Body)
	a.returnStack = a.returnStack[:len(a.returnStack)-1]
	a.table.PopScope()
}

func (a *Analyzer) analyzeVariableDeclaration(v *ast.VariableDeclaration) {
	declType := v.DeclaredType
	if v.Initializer != nil {
		initType := a.inferType(v.Initializer)
		if declType == ast.ANY {
			declType = initType
		} else if !compatible(declType, initType) {
			a.report(cerrors.KindTypeMismatch, v, "cannot initialize %q of type %s with value of type %s", v.Name, declType, initType)
		}
	}
	if !a.table.Declare(&symtab.Symbol{Name: v.Name, Kind: symtab.KindVariable, Type: declType, Pos: v.Position}) {
		a.report(cerrors.KindRedeclaration, v, "variable %q already declared in this scope", v.Name)
	}
}

// analyzeAssignment creates the variable on first use and re-binds it
// afterwards: an Assignment to an unknown name in the current scope
// chain declares it, an Assignment to a known name just checks
// compatibility.
func (a *Analyzer) analyzeAssignment(asn *ast.Assignment) {
	valType := a.inferType(asn.Value)

	if sym, ok := a.table.Lookup(asn.Target.Name); ok {
		if sym.Kind == symtab.KindFunction {
			a.report(cerrors.KindRedeclaration, asn, "cannot assign to function %q", asn.Target.Name)
			return
		}
		if !compatible(sym.Type, valType) {
			a.report(cerrors.KindTypeMismatch, asn, "cannot assign value of type %s to %q of type %s", valType, asn.Target.Name, sym.Type)
		}
		return
	}
	a.table.Declare(&symtab.Symbol{Name: asn.Target.Name, Kind: symtab.KindVariable, Type: valType, Pos: asn.Position})
}

func (a *Analyzer) analyzeIfStatement(s *ast.IfStatement) {
	a.checkCondition(s.Condition)
	a.analyzeBlock(s.Then)
	switch e := s.Else.(type) {
	case nil:
	case *ast.Block:
		a.analyzeBlock(e)
	case *ast.IfStatement:
		a.analyzeIfStatement(e)
	}
}

func (a *Analyzer) analyzeWhileLoop(w *ast.WhileLoop) {
	a.checkCondition(w.Condition)
	a.analyzeBlock(w.Body)
}

func (a *Analyzer) analyzeForLoop(f *ast.ForLoop) {
	a.inferType(f.Iterable)
	a.table.PushScope()
	a.table.Declare(&symtab.Symbol{Name: f.LoopVar.Name, Kind: symtab.KindParameter, Type: ast.ANY, Pos: f.LoopVar.Position})
	a.analyzeBlock(f.Body)
	a.table.PopScope()
}

func (a *Analyzer) analyzeReturn(r *ast.ReturnStatement) {
	if r.Value == nil {
		return
	}
	valType := a.inferType(r.Value)
	if len(a.returnStack) == 0 {
		return
	}
	want := a.returnStack[len(a.returnStack)-1]
	if !compatible(want, valType) {
		a.report(cerrors.KindTypeMismatch, r, "return value of type %s incompatible with declared return type %s", valType, want)
	}
}

// checkCondition enforces that if/while conditions are boolean or ANY.
func (a *Analyzer) checkCondition(cond ast.Expression) {
	t := a.inferType(cond)
	if t != ast.BOOLEAN && t != ast.ANY {
		a.report(cerrors.KindTypeMismatch, cond, "condition must be boolean, got %s", t)
	}
}
