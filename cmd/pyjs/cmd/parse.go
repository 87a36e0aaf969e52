package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-pyjs/internal/ast"
	"github.com/cwbudde/go-pyjs/internal/lexer"
	"github.com/cwbudde/go-pyjs/internal/parser"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and display the AST",
	Long: `parse runs the lexer and parser stages only and prints the
resulting AST, either as a single-line-per-node tree (--dump-ast) or
as the re-serialized source form produced by each node's String().`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure instead of re-serialized source")
}

func runParse(_ *cobra.Command, args []string) error {
	source, filename, err := readInput(args)
	if err != nil {
		return err
	}

	if parseDumpAST {
		return dumpProgramAST(source, filename)
	}

	prog, errs := parseOnly(source, filename)
	if len(errs) > 0 {
		return reportParseErrors(filename, errs)
	}
	fmt.Println(prog.String())
	return nil
}

func parseOnly(source, filename string) (*ast.Program, []error) {
	toks, lexErrs := lexer.New(source).Tokenize()
	if len(lexErrs) > 0 {
		errs := make([]error, len(lexErrs))
		for i, e := range lexErrs {
			errs[i] = e
		}
		return nil, errs
	}
	p := parser.New(toks)
	prog := p.Parse()
	if perrs := p.Errors(); len(perrs) > 0 {
		errs := make([]error, len(perrs))
		for i, e := range perrs {
			errs[i] = e
		}
		return prog, errs
	}
	return prog, nil
}

func reportParseErrors(filename string, errs []error) error {
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}
	return fmt.Errorf("parsing %q failed with %d error(s)", filename, len(errs))
}

func dumpProgramAST(source, filename string) error {
	prog, errs := parseOnly(source, filename)
	if len(errs) > 0 {
		return reportParseErrors(filename, errs)
	}
	fmt.Println("Program")
	for _, stmt := range prog.Statements {
		dumpNode(stmt, 1)
	}
	return nil
}

func dumpNode(node ast.Node, depth int) {
	prefix := strings.Repeat("  ", depth)
	switch n := node.(type) {
	case *ast.FunctionDeclaration:
		fmt.Printf("%sFunctionDeclaration %s(%s)\n", prefix, n.Name, strings.Join(n.Parameters, ", "))
		for _, s := range n.Body.Statements {
			dumpNode(s, depth+1)
		}
	case *ast.VariableDeclaration:
		fmt.Printf("%sVariableDeclaration %s\n", prefix, n.Name)
	case *ast.Assignment:
		fmt.Printf("%sAssignment %s\n", prefix, n.Target.Name)
		dumpNode(n.Value, depth+1)
	case *ast.IfStatement:
		fmt.Printf("%sIfStatement\n", prefix)
		dumpNode(n.Condition, depth+1)
		for _, s := range n.Then.Statements {
			dumpNode(s, depth+1)
		}
		if n.Else != nil {
			dumpNode(n.Else, depth)
		}
	case *ast.Block:
		fmt.Printf("%sBlock\n", prefix)
		for _, s := range n.Statements {
			dumpNode(s, depth+1)
		}
	case *ast.WhileLoop:
		fmt.Printf("%sWhileLoop\n", prefix)
		dumpNode(n.Condition, depth+1)
		for _, s := range n.Body.Statements {
			dumpNode(s, depth+1)
		}
	case *ast.ForLoop:
		fmt.Printf("%sForLoop %s\n", prefix, n.LoopVar.Name)
		dumpNode(n.Iterable, depth+1)
		for _, s := range n.Body.Statements {
			dumpNode(s, depth+1)
		}
	case *ast.ReturnStatement:
		fmt.Printf("%sReturnStatement\n", prefix)
		if n.Value != nil {
			dumpNode(n.Value, depth+1)
		}
	case *ast.BreakStatement:
		fmt.Printf("%sBreakStatement\n", prefix)
	case *ast.ContinueStatement:
		fmt.Printf("%sContinueStatement\n", prefix)
	case *ast.Import:
		fmt.Printf("%sImport %s\n", prefix, n.Module)
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", prefix)
		dumpNode(n.Expr, depth+1)
	case *ast.BinaryOperation:
		fmt.Printf("%sBinaryOperation %s\n", prefix, n.Operator)
		dumpNode(n.Left, depth+1)
		dumpNode(n.Right, depth+1)
	case *ast.UnaryOperation:
		fmt.Printf("%sUnaryOperation %s\n", prefix, n.Operator)
		dumpNode(n.Operand, depth+1)
	case *ast.Identifier:
		fmt.Printf("%sIdentifier %s\n", prefix, n.Name)
	case *ast.Literal:
		fmt.Printf("%sLiteral %s\n", prefix, n.String())
	case *ast.FunctionCall:
		fmt.Printf("%sFunctionCall %s\n", prefix, n.Callee.Name)
		for _, a := range n.Arguments {
			dumpNode(a, depth+1)
		}
	default:
		fmt.Printf("%s%T\n", prefix, node)
	}
}
