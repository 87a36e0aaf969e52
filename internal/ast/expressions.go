package ast

import (
	"fmt"
	"strings"
)

// Identifier is a bare name reference.
type Identifier struct {
	BaseNode
	Name string
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) String() string  { return i.Name }

// LiteralKind tags the shape of a Literal's payload.
type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	FloatLiteral
	StringLiteral
	FStringLiteral // formatted string: raw body, interpolation resolved at codegen
	BoolLiteral
	NullLiteral
	ListLiteral
)

// Literal holds a reduced compile-time value: integer, float, string,
// boolean, null, or a list of element expressions. List elements are
// ordinary Expressions rather than being restricted to nested Literals,
// so computed elements like `[a + 1, f(b)]` parse without a separate
// node variant.
type Literal struct {
	BaseNode
	Kind  LiteralKind
	Int   int64
	Float float64
	Str   string // also holds the raw f-string body for FStringLiteral
	Bool  bool
	List  []Expression
}

func (l *Literal) expressionNode() {}

func (l *Literal) String() string {
	switch l.Kind {
	case IntLiteral:
		return fmt.Sprintf("%d", l.Int)
	case FloatLiteral:
		return fmt.Sprintf("%g", l.Float)
	case StringLiteral:
		return fmt.Sprintf("%q", l.Str)
	case FStringLiteral:
		return "f" + fmt.Sprintf("%q", l.Str)
	case BoolLiteral:
		if l.Bool {
			return "true"
		}
		return "false"
	case NullLiteral:
		return "null"
	case ListLiteral:
		parts := make([]string, len(l.List))
		for i, e := range l.List {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "<literal>"
	}
}

// BinaryOperation is a two-operand expression. Operator uses canonical
// target-neutral spellings: `and`, `or`, `is`, `is not` for
// logical/identity, while comparison and arithmetic operators
// (including `//`) pass through verbatim.
type BinaryOperation struct {
	BaseNode
	Left     Expression
	Right    Expression
	Operator string
}

func (b *BinaryOperation) expressionNode() {}
func (b *BinaryOperation) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// UnaryOperation is a single-operand expression: `+`, `-`, or `not`.
type UnaryOperation struct {
	BaseNode
	Operand  Expression
	Operator string
}

func (u *UnaryOperation) expressionNode() {}
func (u *UnaryOperation) String() string {
	if u.Operator == "not" {
		return "(" + u.Operator + " " + u.Operand.String() + ")"
	}
	return "(" + u.Operator + u.Operand.String() + ")"
}

// FunctionCall is a call to a named function: callee(args...).
type FunctionCall struct {
	BaseNode
	Callee    *Identifier
	Arguments []Expression
}

func (f *FunctionCall) expressionNode() {}
func (f *FunctionCall) String() string {
	parts := make([]string, len(f.Arguments))
	for i, a := range f.Arguments {
		parts[i] = a.String()
	}
	return f.Callee.Name + "(" + strings.Join(parts, ", ") + ")"
}
