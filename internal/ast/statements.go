package ast

import "strings"

// FunctionDeclaration binds a name to an ordered parameter list and a
// body. The grammar has no return-type annotation, so the parser
// always sets ReturnType to ANY.
type FunctionDeclaration struct {
	BaseNode
	Name       string
	Parameters []string
	Body       *Block
	ReturnType TypeMarker
}

func (f *FunctionDeclaration) statementNode() {}
func (f *FunctionDeclaration) String() string {
	return "def " + f.Name + "(" + strings.Join(f.Parameters, ", ") + "):"
}

// VariableDeclaration binds a name to an optional initializer with a
// declared type marker.
type VariableDeclaration struct {
	BaseNode
	Name         string
	Initializer  Expression // nil if no initializer
	DeclaredType TypeMarker
}

func (v *VariableDeclaration) statementNode() {}
func (v *VariableDeclaration) String() string {
	if v.Initializer == nil {
		return v.Name
	}
	return v.Name + " = " + v.Initializer.String()
}

// Assignment rebinds an existing (or first-bound) name to a new
// value. Compound assignment forms are expanded by the parser before
// an Assignment node is ever constructed.
type Assignment struct {
	BaseNode
	Target *Identifier
	Value  Expression
}

func (a *Assignment) statementNode() {}
func (a *Assignment) String() string {
	return a.Target.Name + " = " + a.Value.String()
}

// IfStatement is a conditional. Else is nil when there is no else
// clause, a *Block when written as `else:`, and an *IfStatement when
// the source was an `elif`. Nesting is explicit, never flattened.
type IfStatement struct {
	BaseNode
	Condition Expression
	Then      *Block
	Else      Node // nil | *Block | *IfStatement
}

func (s *IfStatement) statementNode() {}
func (s *IfStatement) String() string {
	out := "if " + s.Condition.String() + ":\n" + s.Then.String()
	if s.Else != nil {
		out += "else:\n" + s.Else.String()
	}
	return out
}

// WhileLoop is a condition-first loop.
type WhileLoop struct {
	BaseNode
	Condition Expression
	Body      *Block
}

func (w *WhileLoop) statementNode() {}
func (w *WhileLoop) String() string {
	return "while " + w.Condition.String() + ":\n" + w.Body.String()
}

// ForLoop iterates LoopVar over Iterable.
type ForLoop struct {
	BaseNode
	LoopVar  *Identifier
	Iterable Expression
	Body     *Block
}

func (f *ForLoop) statementNode() {}
func (f *ForLoop) String() string {
	return "for " + f.LoopVar.Name + " in " + f.Iterable.String() + ":\n" + f.Body.String()
}

// ExpressionStatement wraps an expression evaluated for its side
// effects, e.g. a bare function call.
type ExpressionStatement struct {
	BaseNode
	Expr Expression
}

func (e *ExpressionStatement) statementNode() {}
func (e *ExpressionStatement) String() string { return e.Expr.String() }

// ReturnStatement optionally carries a value; Value is nil for a bare
// `return`.
type ReturnStatement struct {
	BaseNode
	Value Expression
}

func (r *ReturnStatement) statementNode() {}
func (r *ReturnStatement) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}

// BreakStatement exits the nearest enclosing loop.
type BreakStatement struct {
	BaseNode
}

func (b *BreakStatement) statementNode() {}
func (b *BreakStatement) String() string { return "break" }

// ContinueStatement skips to the next iteration of the nearest
// enclosing loop.
type ContinueStatement struct {
	BaseNode
}

func (c *ContinueStatement) statementNode() {}
func (c *ContinueStatement) String() string { return "continue" }

// Import records a module name; it carries no runtime effect in the
// pedagogical subset and is emitted as a comment.
type Import struct {
	BaseNode
	Module string
}

func (i *Import) statementNode() {}
func (i *Import) String() string { return "import " + i.Module }
