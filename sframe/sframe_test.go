package sframe

import (
	"errors"
	"testing"

	"github.com/npillmayer/ibtl"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDeclare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.sframe")
	defer teardown()
	//
	st := NewSymbolTable()
	e, err := st.Declare("x", ibtl.RealType)
	if err != nil {
		t.Fatal(err)
	}
	if e.Type != ibtl.RealType || e.Assigned {
		t.Errorf("expected x to be a fresh real, is %s", e)
	}
	if _, err = st.Declare("x", ibtl.IntType); !errors.Is(err, ibtl.ErrRedeclared) {
		t.Errorf("expected re-declaration to fail, have %v", err)
	}
	if e, _ = st.Lookup("x"); e.Type != ibtl.RealType {
		t.Errorf("expected failed re-declaration to leave x a real, is %s", e.Type)
	}
}

func TestReadDiscipline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.sframe")
	defer teardown()
	//
	st := NewSymbolTable()
	if _, err := st.Read("y"); !errors.Is(err, ibtl.ErrUnbound) {
		t.Errorf("expected read of undeclared y to fail as unbound, have %v", err)
	}
	st.Declare("y", ibtl.IntType)
	if _, err := st.Read("y"); !errors.Is(err, ibtl.ErrUnassigned) {
		t.Errorf("expected read of unassigned y to fail, have %v", err)
	}
	if _, err := st.Assign("y"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if _, err := st.Assign("y"); err != nil {
			t.Errorf("expected repeated assignment to succeed, have %v", err)
		}
		if _, err := st.Read("y"); err != nil {
			t.Errorf("expected read after assignment to succeed, have %v", err)
		}
	}
}

func TestAssignUnbound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.sframe")
	defer teardown()
	//
	st := NewSymbolTable()
	_, err := st.Assign("z")
	var semerr *ibtl.SemanticError
	if !errors.As(err, &semerr) || !errors.Is(err, ibtl.ErrUnbound) {
		t.Errorf("expected semantic error for assignment to unbound z, have %v", err)
	}
	if e, ok := st.Lookup("z"); !ok || e.IsDeclared() {
		t.Errorf("expected z to be observed as unbound")
	}
}

func TestEachIsOrdered(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.sframe")
	defer teardown()
	//
	st := NewSymbolTable()
	for _, name := range []string{"c", "a", "b"} {
		st.Declare(name, ibtl.BoolType)
	}
	var names string
	st.Each(func(e *Entry) {
		names += e.Name
	})
	if names != "abc" || st.Size() != 3 {
		t.Errorf("expected entries a, b, c in order, have %q", names)
	}
}
