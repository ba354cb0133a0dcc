package ibtl

import (
	"errors"
	"fmt"
)

// Stage identifies the compiler stage which raised an error.
type Stage int8

// Stages of the translation pipeline.
const (
	LexStage Stage = iota
	ParseStage
	SemanticStage
)

func (s Stage) String() string {
	switch s {
	case LexStage:
		return "lexer"
	case ParseStage:
		return "parser"
	case SemanticStage:
		return "semantic"
	}
	return "unknown"
}

// Reasons for compile errors. Compile errors wrap one of these, so clients
// may check them with errors.Is.
var (
	ErrUnrecognizedChar   = errors.New("unrecognized character")
	ErrMalformedNumber    = errors.New("malformed numeral")
	ErrUnterminatedString = errors.New("unterminated string")

	ErrMismatchedParen = errors.New("mismatched parenthesis")
	ErrSyntax          = errors.New("syntax error")
	ErrArity           = errors.New("wrong number of operands")

	ErrUnbound      = errors.New("unbound identifier")
	ErrUnassigned   = errors.New("identifier read before assignment")
	ErrRedeclared   = errors.New("identifier already declared")
	ErrTypeMismatch = errors.New("illegal operand type")
	ErrNotBoolean   = errors.New("predicate is not boolean")
	ErrNoValue      = errors.New("statement has no value")
)

// CompileError is implemented by all errors a compile run may end with.
// There is exactly one per failed compile; the first error aborts translation.
type CompileError interface {
	error
	Stage() Stage
}

// Pos is a position in the source text. Lines and columns start at 1.
// The zero Pos means 'unknown'.
type Pos struct {
	Line, Col int
}

// IsKnown is a predicate: does p denote a real position?
func (p Pos) IsKnown() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if !p.IsKnown() {
		return "?"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// --- Lexer errors ----------------------------------------------------------

// LexError is raised for malformed literals and characters the lexer does not
// know about.
type LexError struct {
	Message string
	Pos     Pos
	Err     error
}

// Lexf creates a LexError at pos, wrapping reason.
func Lexf(reason error, pos Pos, format string, args ...interface{}) *LexError {
	return &LexError{Message: fmt.Sprintf(format, args...), Pos: pos, Err: reason}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error on line %d: %s", e.Pos.Line, e.Message)
}

// Stage is part of interface CompileError.
func (e *LexError) Stage() Stage { return LexStage }

func (e *LexError) Unwrap() error { return e.Err }

// --- Parser errors ---------------------------------------------------------

// ParseError is raised for grammar violations.
type ParseError struct {
	Message string
	Pos     Pos
	Err     error
}

// Parsef creates a ParseError at pos, wrapping reason.
func Parsef(reason error, pos Pos, format string, args ...interface{}) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos, Err: reason}
}

func (e *ParseError) Error() string {
	if e.Pos.IsKnown() {
		return fmt.Sprintf("parser error at %s: %s", e.Pos, e.Message)
	}
	return "parser error: " + e.Message
}

// Stage is part of interface CompileError.
func (e *ParseError) Stage() Stage { return ParseStage }

func (e *ParseError) Unwrap() error { return e.Err }

// --- Semantic errors -------------------------------------------------------

// SemanticError is raised when a well-formed program violates typing or
// binding rules.
type SemanticError struct {
	Message string
	Err     error
}

// Semanticf creates a SemanticError wrapping reason.
func Semanticf(reason error, format string, args ...interface{}) *SemanticError {
	return &SemanticError{Message: fmt.Sprintf(format, args...), Err: reason}
}

func (e *SemanticError) Error() string {
	return "semantic error: " + e.Message
}

// Stage is part of interface CompileError.
func (e *SemanticError) Stage() Stage { return SemanticStage }

func (e *SemanticError) Unwrap() error { return e.Err }

var _ CompileError = &LexError{}
var _ CompileError = &ParseError{}
var _ CompileError = &SemanticError{}
