package sframe

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/ibtl"
)

// SymbolTable maps identifier names to entries. Entries are kept ordered by
// name.
//
// Declare, Assign and Read are the only gates for identifier use. Clients
// call them at the point an identifier is referenced; each either succeeds or
// returns an ibtl.SemanticError.
type SymbolTable struct {
	entries *treemap.Map // string -> *Entry
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		entries: treemap.NewWithStringComparator(),
	}
}

// Lookup finds the entry for name, if present.
func (st *SymbolTable) Lookup(name string) (*Entry, bool) {
	e, found := st.entries.Get(name)
	if !found {
		return nil, false
	}
	return e.(*Entry), true
}

// Observe returns the entry for name, creating an unbound one if name has not
// been seen before.
func (st *SymbolTable) Observe(name string) *Entry {
	if e, found := st.Lookup(name); found {
		return e
	}
	e := &Entry{Name: name}
	st.entries.Put(name, e)
	tracer().Debugf("new symbol %q", name)
	return e
}

// Declare binds name to type t. Binding a name a second time is an error.
func (st *SymbolTable) Declare(name string, t ibtl.ValueType) (*Entry, error) {
	e := st.Observe(name)
	if err := e.declare(t); err != nil {
		return e, err
	}
	tracer().Debugf("symbol %q declared as %s", name, t)
	return e, nil
}

// Assign records an assignment to name. name must have been declared.
func (st *SymbolTable) Assign(name string) (*Entry, error) {
	e := st.Observe(name)
	if err := e.assign(); err != nil {
		return e, err
	}
	tracer().Debugf("symbol %q assigned", name)
	return e, nil
}

// Read checks that name is declared and has been assigned.
func (st *SymbolTable) Read(name string) (*Entry, error) {
	e := st.Observe(name)
	return e, e.read()
}

// Size returns the number of entries, including unbound ones.
func (st *SymbolTable) Size() int {
	return st.entries.Size()
}

// Each calls f for every entry, in order of names.
func (st *SymbolTable) Each(f func(*Entry)) {
	st.entries.Each(func(_ interface{}, e interface{}) {
		f(e.(*Entry))
	})
}
