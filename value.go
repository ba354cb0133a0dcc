package ibtl

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ibtl'.
func tracer() tracing.Trace {
	return tracing.Select("ibtl")
}

// ValueType represents the type of a value.
type ValueType int8

// Value types of IBTL. Unbound marks a symbol which has not been declared;
// Void is the type of statements which leave nothing on the target stack.
const (
	Unbound ValueType = iota
	IntType
	RealType
	BoolType
	StringType
	VoidType
)

var valueTypeNames = [...]string{
	Unbound:    "unbound",
	IntType:    "int",
	RealType:   "real",
	BoolType:   "bool",
	StringType: "string",
	VoidType:   "void",
}

func (t ValueType) String() string {
	if int(t) < len(valueTypeNames) {
		return valueTypeNames[t]
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

// IsNumeric is a predicate: is t int or real?
func (t ValueType) IsNumeric() bool {
	return t == IntType || t == RealType
}

// TypeFromKeyword returns the value type for a type keyword of the language
// (int, real, bool, string).
func TypeFromKeyword(kw string) (ValueType, bool) {
	switch kw {
	case "int":
		return IntType, true
	case "real":
		return RealType, true
	case "bool":
		return BoolType, true
	case "string":
		return StringType, true
	}
	tracer().Debugf("not a type keyword: %q", kw)
	return Unbound, false
}

// --- Value -----------------------------------------------------------------

// Value is the result of translating a subtree of a program: the type of the
// value the subtree computes, and the Gforth code which computes it.
//
// Values are produced bottom-up and consumed by the parent node; they do not
// outlive the translation of their parent.
type Value struct {
	Type ValueType
	Code string
}

// MakeValue creates a value of type t computed by code.
func MakeValue(t ValueType, code string) Value {
	return Value{Type: t, Code: code}
}

// HasValue is a predicate: does the value leave something on the stack?
func (v Value) HasValue() bool {
	return v.Type != VoidType && v.Type != Unbound
}

func (v Value) String() string {
	return fmt.Sprintf("⟨%s: %s⟩", v.Type, v.Code)
}
