// Package translate composes the four pipeline stages into a single
// entry point: Translate(source) returns the target program text. Each
// translation run owns its own lexer/parser/analyzer/generator state;
// nothing is shared across runs.
package translate

import (
	"strings"

	"github.com/cwbudde/go-pyjs/internal/codegen"
	cerrors "github.com/cwbudde/go-pyjs/internal/errors"
	"github.com/cwbudde/go-pyjs/internal/lexer"
	"github.com/cwbudde/go-pyjs/internal/parser"
	"github.com/cwbudde/go-pyjs/internal/semantic"
)

// Options configures a single translation run. File is used only to
// decorate diagnostics; file I/O is a driver-level concern and never
// happens inside the core.
type Options struct {
	File         string
	LexerOptions []lexer.Option
	CodegenOpts  []codegen.Option
}

// Translate runs tokenize, parse, analyze and emit over source and
// returns the target program text. On any stage failure it returns a
// cerrors.List: the parse and codegen lists carry the first diagnostic
// only, while the lex and semantic lists may carry many because the
// lexer and the analyzer collect every one before the run aborts.
func Translate(source string, opts Options) (string, error) {
	lx := lexer.New(source, opts.LexerOptions...)
	toks, lexErrs := lx.Tokenize()
	if len(lexErrs) > 0 {
		return "", withSource(lexErrsToList(lexErrs), source, opts.File)
	}

	p := parser.New(toks)
	prog := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		return "", withSource(cerrors.List(errs), source, opts.File)
	}

	analyzer := semantic.New()
	if diags := analyzer.Analyze(prog); len(diags) > 0 {
		return "", withSource(cerrors.List(diags), source, opts.File)
	}

	gen := codegen.New(opts.CodegenOpts...)
	out, err := gen.Generate(prog)
	if err != nil {
		return "", cerrors.List{cerrors.New(cerrors.StageCodegen, cerrors.KindUnsupportedFeature, prog.Pos(), err.Error())}
	}
	return out, nil
}

func lexErrsToList(lexErrs []lexer.LexError) cerrors.List {
	list := make(cerrors.List, len(lexErrs))
	for i, e := range lexErrs {
		list[i] = cerrors.New(cerrors.StageLex, lexKind(e), e.Pos, e.Message)
	}
	return list
}

// lexKind recovers the diagnostic family from a LexError's message so
// the driver can report it uniformly alongside the other stages; the
// lexer itself stays a flat error list.
func lexKind(e lexer.LexError) cerrors.Kind {
	switch {
	case strings.HasPrefix(e.Message, "unclosed string"):
		return cerrors.KindUnclosedString
	case strings.HasPrefix(e.Message, "invalid number"):
		return cerrors.KindInvalidNumber
	default:
		return cerrors.KindInvalidCharacter
	}
}

func withSource(list cerrors.List, source, file string) cerrors.List {
	for _, e := range list {
		e.WithSource(source, file)
	}
	return list
}
