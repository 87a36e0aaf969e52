package translate

import (
	"strings"
	"testing"

	cerrors "github.com/cwbudde/go-pyjs/internal/errors"
)

// End-to-end scenarios: trivial assignment, a `__main__`-guarded
// function, recursive fibonacci with correct parenthesization, a
// for-loop over range, logical operators mixed with comparisons, and a
// formatted string.

func TestTranslateTrivialAssignment(t *testing.T) {
	out, err := Translate("x = 5\ny = x + 10\n", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{`let x = 5;`, `let y = x + 10;`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTranslateMainGuardBecomesTrailingCall(t *testing.T) {
	src := "def main():\n    print(\"hello\")\n\nif __name__ == \"__main__\":\n    main()\n"
	out, err := Translate(src, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "__name__") {
		t.Errorf("the __main__ guard should be suppressed from the output:\n%s", out)
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), "main();") {
		t.Errorf("expected a trailing main(); call, got:\n%s", out)
	}
}

func TestTranslateRecursiveFibonacci(t *testing.T) {
	src := "def fib(n):\n    if n <= 1:\n        return n\n    else:\n        return fib(n - 1) + fib(n - 2)\n"
	out, err := Translate(src, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"function fib(n) {",
		"if (n <= 1) {",
		"return fib(n - 1) + fib(n - 2);",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTranslateForLoopOverRange(t *testing.T) {
	out, err := Translate("for i in range(5):\n    print(i)\n", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"function range(", "for (let i of range(5)) {", "console.log(i);"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTranslateLogicalWithComparisons(t *testing.T) {
	src := "a = 1\nb = 2\nc = 3\nd = 4\ne = 5\nf = 5\nresult = (a > b) and (c < d) or (e == f)\n"
	out, err := Translate(src, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "let result = (a > b) && (c < d) || (e == f);"
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
}

func TestTranslateFormattedString(t *testing.T) {
	out, err := Translate("name = \"world\"\nmsg = f\"hello, {name}!\"\n", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "let msg = `hello, ${name}!`;"
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
}

func TestTranslateLexErrorReported(t *testing.T) {
	_, err := Translate("x = 5 @ 2\n", Options{File: "bad.s"})
	if err == nil {
		t.Fatalf("expected a lex-stage error")
	}
	list, ok := err.(cerrors.List)
	if !ok || len(list) == 0 {
		t.Fatalf("expected a cerrors.List, got %T: %v", err, err)
	}
	if list[0].Stage != cerrors.StageLex {
		t.Errorf("stage = %s, want %s", list[0].Stage, cerrors.StageLex)
	}
	if list[0].File != "bad.s" {
		t.Errorf("file = %q, want %q", list[0].File, "bad.s")
	}
}

func TestTranslateParseErrorReported(t *testing.T) {
	_, err := Translate("def f(:\n", Options{})
	if err == nil {
		t.Fatalf("expected a parse-stage error")
	}
	list, ok := err.(cerrors.List)
	if !ok || len(list) == 0 {
		t.Fatalf("expected a cerrors.List, got %T: %v", err, err)
	}
	if list[0].Stage != cerrors.StageParse {
		t.Errorf("stage = %s, want %s", list[0].Stage, cerrors.StageParse)
	}
}

func TestTranslateSemanticErrorsAccumulate(t *testing.T) {
	_, err := Translate("print(a)\nprint(b)\n", Options{})
	if err == nil {
		t.Fatalf("expected semantic-stage errors")
	}
	list, ok := err.(cerrors.List)
	if !ok {
		t.Fatalf("expected a cerrors.List, got %T: %v", err, err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 accumulated semantic diagnostics, got %d: %v", len(list), list)
	}
	for _, e := range list {
		if e.Stage != cerrors.StageSemantic {
			t.Errorf("stage = %s, want %s", e.Stage, cerrors.StageSemantic)
		}
	}
}

func TestTranslateTwoSpaceIndent(t *testing.T) {
	// Indent width is whatever the source uses consistently; a 2-space
	// body opens and closes a block like a 4-space one.
	src := "if true:\n  x = 1\n"
	out, err := Translate(src, Options{})
	if err != nil {
		t.Fatalf("unexpected error with default options: %v", err)
	}
	if !strings.Contains(out, "let x = 1;") {
		t.Errorf("output missing assignment:\n%s", out)
	}
}
