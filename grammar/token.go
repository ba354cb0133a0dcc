package grammar

import (
	"fmt"

	"github.com/npillmayer/ibtl"
)

// TokKind is the lexical category of a token.
type TokKind int

// Token categories. Minus is provisional: the parser rewrites it to
// UnaryOperator or BinaryOperator.
const (
	EOF TokKind = iota
	LeftParen
	RightParen
	Assignment
	BinaryOperator
	UnaryOperator
	Minus
	IntLiteral
	RealLiteral
	StringLiteral
	BoolLiteral
	Statement
	TypeKeyword
	Identifier
)

var tokKindNames = [...]string{
	EOF:            "EOF",
	LeftParen:      "'('",
	RightParen:     "')'",
	Assignment:     "assignment",
	BinaryOperator: "binary operator",
	UnaryOperator:  "unary operator",
	Minus:          "minus",
	IntLiteral:     "int literal",
	RealLiteral:    "real literal",
	StringLiteral:  "string literal",
	BoolLiteral:    "bool literal",
	Statement:      "statement",
	TypeKeyword:    "type",
	Identifier:     "identifier",
}

func (k TokKind) String() string {
	if k >= 0 && int(k) < len(tokKindNames) {
		return tokKindNames[k]
	}
	return fmt.Sprintf("TokKind(%d)", int(k))
}

// IsLiteral is a predicate: is k one of the literal kinds?
func (k TokKind) IsLiteral() bool {
	return k >= IntLiteral && k <= BoolLiteral
}

// IsOperand is a predicate: may a token of kind k stand as a leaf operand?
func (k TokKind) IsOperand() bool {
	return k.IsLiteral() || k == Identifier
}

// Token is a lexical token. Text is the literal spelling from the source,
// including the quotes of string literals.
type Token struct {
	Kind TokKind
	Text string
	Pos  ibtl.Pos
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

// keywords maps reserved words to their token category. Every other word is
// an identifier.
var keywords = map[string]TokKind{
	"true":   BoolLiteral,
	"false":  BoolLiteral,
	"and":    BinaryOperator,
	"or":     BinaryOperator,
	"not":    UnaryOperator,
	"sin":    UnaryOperator,
	"cos":    UnaryOperator,
	"tan":    UnaryOperator,
	"int":    TypeKeyword,
	"real":   TypeKeyword,
	"bool":   TypeKeyword,
	"string": TypeKeyword,
	"let":    Statement,
	"while":  Statement,
	"if":     Statement,
	"stdout": Statement,
}

// wordKind classifies a word lexeme as keyword or identifier.
func wordKind(lexeme string) TokKind {
	if k, ok := keywords[lexeme]; ok {
		return k
	}
	return Identifier
}
