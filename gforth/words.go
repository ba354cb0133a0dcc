package gforth

import (
	"strings"

	"github.com/npillmayer/ibtl"
)

// Preamble is emitted once at the top of every non-empty program. It defines
// integer exponentiation as word '^' ( base exp -- base^exp ), avoiding a
// detour over floats.
const Preamble = ": ^ 1 swap 0 u+do over * loop nip ;\n\n"

// Flush is the word terminating the code of every top-level form.
const Flush = "CR"

// Words for operators on int operands.
var intWords = map[string]string{
	"+": "+", "-": "-", "*": "*", "/": "/", "%": "mod", "^": "^",
	"==": "=", "=": "=", "!=": "<>",
	"<": "<", ">": ">", "<=": "<=", ">=": ">=",
}

// Words for operators on real operands.
var realWords = map[string]string{
	"+": "f+", "-": "f-", "*": "f*", "/": "f/", "%": "fmod", "^": "f**",
	"==": "f=", "=": "f=", "!=": "f<>",
	"<": "f<", ">": "f>", "<=": "f<=", ">=": "f>=",
}

// Words for operators on bool operands.
var boolWords = map[string]string{
	"and": "and", "or": "or",
	"==": "=", "=": "=", "!=": "<>",
}

var trigWords = map[string]string{
	"sin": "fsin", "cos": "fcos", "tan": "ftan",
}

// isPredicate is a predicate: does operator op yield a bool?
func isPredicate(op string) bool {
	switch op {
	case "not", "and", "or", "==", "=", "!=", "<", ">", "<=", ">=":
		return true
	}
	return false
}

func isLogical(op string) bool {
	return op == "and" || op == "or"
}

// Storage words, by type of variable: definition, fetch, store, and the word
// duplicating a value of the type.
type storage struct {
	define, fetch, store, dup string
}

var storageWords = map[ibtl.ValueType]storage{
	ibtl.IntType:    {"variable", "@", "!", "dup"},
	ibtl.BoolType:   {"variable", "@", "!", "dup"},
	ibtl.RealType:   {"fvariable", "f@", "f!", "fdup"},
	ibtl.StringType: {"2variable", "2@", "2!", "2dup"},
}

// Print words, by type of value.
var printWords = map[ibtl.ValueType]string{
	ibtl.IntType:    ".",
	ibtl.BoolType:   ".",
	ibtl.RealType:   "f.",
	ibtl.StringType: "type",
}

// --- Literals --------------------------------------------------------------

// realLiteral makes sure a real literal carries an exponent, as Gforth
// recognizes floats by their 'e'.
func realLiteral(lexeme string) string {
	if strings.ContainsAny(lexeme, "eE") {
		return lexeme
	}
	return lexeme + "e"
}

// stringLiteral converts a quoted IBTL string to a Gforth string literal,
// which leaves ( c-addr u ) on the stack. Strings with escape sequences use
// the escape-aware form s\".
func stringLiteral(lexeme string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(lexeme, `"`), `"`)
	if strings.Contains(inner, `\`) {
		return `s\" ` + inner + `"`
	}
	return `s" ` + inner + `"`
}

// toReal returns the code for v as a real, converting ints.
func toReal(v ibtl.Value) string {
	if v.Type == ibtl.IntType {
		return v.Code + " s>f"
	}
	return v.Code
}

// join concatenates code fragments, separated by blanks and skipping empty
// ones.
func join(fragments ...string) string {
	var nonEmpty []string
	for _, f := range fragments {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.Join(nonEmpty, " ")
}
