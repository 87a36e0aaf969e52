// Package errors formats translator diagnostics with source context
// and a caret pointing at the offending column.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-pyjs/internal/token"
)

// Stage identifies which pipeline stage raised a diagnostic.
type Stage string

const (
	StageLex      Stage = "lex"
	StageParse    Stage = "parse"
	StageSemantic Stage = "semantic"
	StageCodegen  Stage = "codegen"
)

// Kind names the diagnostic family within a stage.
type Kind string

const (
	KindInvalidCharacter   Kind = "invalid character"
	KindUnclosedString     Kind = "unclosed string"
	KindInvalidNumber      Kind = "invalid number"
	KindUnexpectedToken    Kind = "unexpected token"
	KindMissingToken       Kind = "missing token"
	KindUndefinedVariable  Kind = "undefined variable"
	KindRedeclaration      Kind = "redeclaration"
	KindTypeMismatch       Kind = "type mismatch"
	KindUnsupportedFeature Kind = "unsupported feature"
)

// CompilerError is a single diagnostic: stage, kind, position and
// message, plus optional source text to render a caret under the
// offending column.
type CompilerError struct {
	Stage   Stage
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New constructs a CompilerError.
func New(stage Stage, kind Kind, pos token.Position, message string) *CompilerError {
	return &CompilerError{Stage: stage, Kind: kind, Pos: pos, Message: message}
}

// WithSource attaches the source buffer and file name used to render
// the caret diagnostic; it returns the receiver for chaining.
func (e *CompilerError) WithSource(source, file string) *CompilerError {
	e.Source = source
	e.File = file
	return e
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the diagnostic with a source-line excerpt and caret.
// If color is true, ANSI color codes highlight the caret.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	header := fmt.Sprintf("%s error", e.Stage)
	if e.File != "" {
		sb.WriteString(fmt.Sprintf("%s in %s:%d:%d: %s", header, e.File, e.Pos.Line, e.Pos.Column, e.Message))
	} else {
		sb.WriteString(fmt.Sprintf("%s at %d:%d: %s", header, e.Pos.Line, e.Pos.Column, e.Message))
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		sb.WriteString("\n")
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(prefix)+max(0, e.Pos.Column-1)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(line int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// List collects diagnostics from a single stage. The lexer and the
// semantic stage report every error they find before the pipeline
// aborts; the parser stops at its first.
type List []*CompilerError

func (l List) Error() string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "\n")
}
