package parser

import (
	"fmt"
	"testing"

	"github.com/cwbudde/go-pyjs/internal/ast"
	"github.com/cwbudde/go-pyjs/internal/lexer"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, lexErrs := lexer.New(src).Tokenize()
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lex errors: %v", lexErrs)
	}
	p := New(toks)
	prog := p.Parse()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	return prog
}

func TestParseAssignment(t *testing.T) {
	prog := parseSource(t, "x = 5\n")
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	asn, ok := prog.Statements[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("expected *ast.Assignment, got %T", prog.Statements[0])
	}
	if asn.Target.Name != "x" {
		t.Errorf("target = %q, want x", asn.Target.Name)
	}
	lit, ok := asn.Value.(*ast.Literal)
	if !ok || lit.Kind != ast.IntLiteral || lit.Int != 5 {
		t.Errorf("value = %#v, want IntLiteral(5)", asn.Value)
	}
}

func TestParseCompoundAssignmentExpandsAtParseTime(t *testing.T) {
	prog := parseSource(t, "x += 1\n")
	asn := prog.Statements[0].(*ast.Assignment)
	bin, ok := asn.Value.(*ast.BinaryOperation)
	if !ok {
		t.Fatalf("expected x += 1 to expand to a BinaryOperation, got %T", asn.Value)
	}
	if bin.Operator != "+" {
		t.Errorf("operator = %q, want +", bin.Operator)
	}
	left, ok := bin.Left.(*ast.Identifier)
	if !ok || left.Name != "x" {
		t.Errorf("left operand = %#v, want Identifier(x)", bin.Left)
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	prog := parseSource(t, "def add(a, b):\n    return a + b\n")
	fn, ok := prog.Statements[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected *ast.FunctionDeclaration, got %T", prog.Statements[0])
	}
	if fn.Name != "add" {
		t.Errorf("name = %q, want add", fn.Name)
	}
	if len(fn.Parameters) != 2 || fn.Parameters[0] != "a" || fn.Parameters[1] != "b" {
		t.Errorf("parameters = %v, want [a b]", fn.Parameters)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body.Statements))
	}
	if _, ok := fn.Body.Statements[0].(*ast.ReturnStatement); !ok {
		t.Errorf("expected ReturnStatement, got %T", fn.Body.Statements[0])
	}
}

func TestParseInlineBlockWithoutIndent(t *testing.T) {
	prog := parseSource(t, "def f(): return 1\n")
	fn := prog.Statements[0].(*ast.FunctionDeclaration)
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected inline block with 1 statement, got %d", len(fn.Body.Statements))
	}
}

func TestParseElifChainNestsAsIfStatement(t *testing.T) {
	prog := parseSource(t, "if a:\n    x = 1\nelif b:\n    x = 2\nelse:\n    x = 3\n")
	ifs := prog.Statements[0].(*ast.IfStatement)

	elif, ok := ifs.Else.(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected elif to produce a nested IfStatement, got %T", ifs.Else)
	}
	if _, ok := elif.Else.(*ast.Block); !ok {
		t.Fatalf("expected the trailing else to be a *ast.Block, got %T", elif.Else)
	}
}

func TestParseWhileLoop(t *testing.T) {
	prog := parseSource(t, "while x < 10:\n    x = x + 1\n")
	if _, ok := prog.Statements[0].(*ast.WhileLoop); !ok {
		t.Fatalf("expected *ast.WhileLoop, got %T", prog.Statements[0])
	}
}

func TestParseForLoop(t *testing.T) {
	prog := parseSource(t, "for i in range(10):\n    print(i)\n")
	f, ok := prog.Statements[0].(*ast.ForLoop)
	if !ok {
		t.Fatalf("expected *ast.ForLoop, got %T", prog.Statements[0])
	}
	if f.LoopVar.Name != "i" {
		t.Errorf("loop var = %q, want i", f.LoopVar.Name)
	}
	if _, ok := f.Iterable.(*ast.FunctionCall); !ok {
		t.Errorf("iterable = %#v, want *ast.FunctionCall", f.Iterable)
	}
}

func TestParseListLiteral(t *testing.T) {
	prog := parseSource(t, "x = [1, 2, 3]\n")
	asn := prog.Statements[0].(*ast.Assignment)
	lit := asn.Value.(*ast.Literal)
	if lit.Kind != ast.ListLiteral || len(lit.List) != 3 {
		t.Fatalf("expected a 3-element list literal, got %#v", lit)
	}
}

func TestParseListLiteralWithComputedElements(t *testing.T) {
	// List elements may be any expression, not only nested literals.
	prog := parseSource(t, "x = [a + 1, f(b)]\n")
	asn := prog.Statements[0].(*ast.Assignment)
	lit := asn.Value.(*ast.Literal)
	if len(lit.List) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(lit.List))
	}
	if _, ok := lit.List[0].(*ast.BinaryOperation); !ok {
		t.Errorf("element 0 = %#v, want *ast.BinaryOperation", lit.List[0])
	}
}

func TestOperatorPrecedenceLadder(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"2 ** 3 ** 2", "(2 ** (3 ** 2))"}, // right-associative
		{"a > b and c < d or e == f", "(((a > b) and (c < d)) or (e == f))"},
		{"not a == b", "((not a) == b)"}, // unary binds tighter than comparison in this ladder
		{"not (a == b)", "(not (a == b))"},
	}
	for _, tt := range tests {
		toks, _ := lexer.New(tt.src).Tokenize()
		p := New(toks)
		expr := p.parseExpression(lowest)
		if len(p.Errors()) != 0 {
			t.Fatalf("%q: unexpected parse errors: %v", tt.src, p.Errors())
		}
		got := expr.String()
		if got != tt.want {
			t.Errorf("%q: AST string = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestParseReturnWithAndWithoutValue(t *testing.T) {
	prog := parseSource(t, "def f():\n    return\n")
	fn := prog.Statements[0].(*ast.FunctionDeclaration)
	ret := fn.Body.Statements[0].(*ast.ReturnStatement)
	if ret.Value != nil {
		t.Errorf("bare return should have nil Value, got %#v", ret.Value)
	}

	prog = parseSource(t, "def g():\n    return 1\n")
	fn = prog.Statements[0].(*ast.FunctionDeclaration)
	ret = fn.Body.Statements[0].(*ast.ReturnStatement)
	if ret.Value == nil {
		t.Errorf("return 1 should carry a Value")
	}
}

func TestParseImport(t *testing.T) {
	prog := parseSource(t, "import math\n")
	imp, ok := prog.Statements[0].(*ast.Import)
	if !ok {
		t.Fatalf("expected *ast.Import, got %T", prog.Statements[0])
	}
	if imp.Module != "math" {
		t.Errorf("module = %q, want math", imp.Module)
	}
}

func TestParseErrorCarriesPosition(t *testing.T) {
	toks, _ := lexer.New("def f(:\n").Tokenize()
	p := New(toks)
	p.Parse()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected a parse error for malformed parameter list")
	}
	err := p.Errors()[0]
	if err.Pos.Line == 0 {
		t.Errorf("expected a nonzero line in parse error position")
	}
}

func TestRoundTripReparse(t *testing.T) {
	// Re-pretty-printing the AST and re-parsing should yield a
	// structurally identical AST, checked via the String() form.
	src := "def fib(n):\n    if n <= 1:\n        return n\n    else:\n        return fib(n-1) + fib(n-2)\n"
	prog := parseSource(t, src)
	again := parseSource(t, prog.String()+"\n")
	if fmt.Sprint(prog.String()) == "" || prog.String() != again.String() {
		t.Fatalf("round-trip mismatch:\nfirst:  %s\nsecond: %s", prog.String(), again.String())
	}
}
