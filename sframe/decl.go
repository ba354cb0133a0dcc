package sframe

import (
	"fmt"

	"github.com/npillmayer/ibtl"
)

// Entry is the symbol table entry of an identifier.
type Entry struct {
	Name     string
	Type     ibtl.ValueType // ibtl.Unbound until declared by let
	Assigned bool
}

// IsDeclared is a predicate: has the identifier been bound by a let?
func (e *Entry) IsDeclared() bool {
	return e.Type != ibtl.Unbound
}

func (e *Entry) String() string {
	state := "unassigned"
	if e.Assigned {
		state = "assigned"
	}
	return fmt.Sprintf("%s:%s[%s]", e.Name, e.Type, state)
}

// declare transitions e from unbound to type t.
func (e *Entry) declare(t ibtl.ValueType) error {
	if e.IsDeclared() {
		return ibtl.Semanticf(ibtl.ErrRedeclared, "%q already declared as %s", e.Name, e.Type)
	}
	if t == ibtl.Unbound || t == ibtl.VoidType {
		return ibtl.Semanticf(ibtl.ErrTypeMismatch, "cannot declare %q as %s", e.Name, t)
	}
	e.Type = t
	return nil
}

// assign marks e as written. Assignment may happen any number of times.
func (e *Entry) assign() error {
	if !e.IsDeclared() {
		return ibtl.Semanticf(ibtl.ErrUnbound, "assignment to unbound identifier %q", e.Name)
	}
	e.Assigned = true
	return nil
}

// read checks that e may be read.
func (e *Entry) read() error {
	if !e.IsDeclared() {
		return ibtl.Semanticf(ibtl.ErrUnbound, "unrecognized identifier %q", e.Name)
	}
	if !e.Assigned {
		return ibtl.Semanticf(ibtl.ErrUnassigned, "%q read before it has been assigned a value", e.Name)
	}
	return nil
}
