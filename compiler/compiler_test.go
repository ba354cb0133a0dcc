package compiler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/ibtl"
	"github.com/npillmayer/ibtl/gforth"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.compiler")
	defer teardown()
	//
	for _, tc := range []struct {
		name   string
		source string
		target string
	}{
		{"int addition", "(+ 1 2)", "1 2 + CR"},
		{"mixed addition", "(+ 1.0 2)", "1.0e 2 s>f f+ CR"},
		{"if else", "(if (> 5 3) 7 2)", "5 3 > if 7 else 2 endif CR"},
		{"string concat", `(stdout (+ "a" "b"))`, `s" a" s" b" s+ type CR`},
		{"exponent", "(^ 2 10)", "2 10 ^ CR"},
		{"unary minus", "(- 4)", "4 negate CR"},
		{"counting loop", `
			(let (i int) (total real))
			(:= i 0)
			(:= total 0.5)
			(while (< i 10)
				(:= total (+ total i))
				(:= i (+ i 1)))
			(stdout total)`,
			"variable i fvariable total CR\n" +
				"0 i ! CR\n" +
				"0.5e total f! CR\n" +
				"begin i @ 10 < while total f@ i @ s>f f+ total f! i @ 1 + i ! repeat CR\n" +
				"total f@ f. CR"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			target, err := Compile(tc.source)
			require.NoError(t, err)
			assert.Equal(t, gforth.Preamble+tc.target, target)
		})
	}
}

func TestCompileEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.compiler")
	defer teardown()
	//
	for _, src := range []string{"", "   \n\t "} {
		target, err := Compile(src)
		require.NoError(t, err)
		assert.Empty(t, target)
	}
}

func TestCompileErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.compiler")
	defer teardown()
	//
	for _, tc := range []struct {
		name   string
		source string
		stage  ibtl.Stage
		reason error
	}{
		{"unrecognized char", "(+ 1 @)", ibtl.LexStage, ibtl.ErrUnrecognizedChar},
		{"unterminated string", `(stdout "abc)`, ibtl.LexStage, ibtl.ErrUnterminatedString},
		{"malformed number", "(+ 1.2.3 4)", ibtl.LexStage, ibtl.ErrMalformedNumber},
		{"open paren", "(+ 1 2", ibtl.ParseStage, ibtl.ErrMismatchedParen},
		{"surplus paren", "(+ 1 2))", ibtl.ParseStage, ibtl.ErrMismatchedParen},
		{"minus arity", "(- 1 2 3)", ibtl.ParseStage, ibtl.ErrArity},
		{"unbound", "(stdout x)", ibtl.SemanticStage, ibtl.ErrUnbound},
		{"unassigned", "(let (x int)) (stdout x)", ibtl.SemanticStage, ibtl.ErrUnassigned},
		{"redeclared", "(let (x int) (x int))", ibtl.SemanticStage, ibtl.ErrRedeclared},
		{"string minus", `(- "a" "b")`, ibtl.SemanticStage, ibtl.ErrTypeMismatch},
		{"string plus int", `(+ "a" 1)`, ibtl.SemanticStage, ibtl.ErrTypeMismatch},
		{"int predicate", "(if 1 2 3)", ibtl.SemanticStage, ibtl.ErrNotBoolean},
	} {
		t.Run(tc.name, func(t *testing.T) {
			target, err := Compile(tc.source)
			require.Error(t, err)
			assert.Empty(t, target)
			assert.True(t, errors.Is(err, tc.reason), "expected %v, have %v", tc.reason, err)
			var cerr ibtl.CompileError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tc.stage, cerr.Stage())
		})
	}
}

func TestLexErrorHasPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.compiler")
	defer teardown()
	//
	_, err := Compile("(+ 1 2)\n(+ 3 #)")
	var lexerr *ibtl.LexError
	require.True(t, errors.As(err, &lexerr), "expected a lexer error, have %v", err)
	assert.Equal(t, 2, lexerr.Pos.Line)
}

func TestTranslateKeepsSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.compiler")
	defer teardown()
	//
	tl, err := Translate("(let (b bool) (s string)) (:= b true)")
	require.NoError(t, err)
	assert.Len(t, tl.Program, 2)
	assert.Equal(t, 2, tl.Symbols.Size())
	b, found := tl.Symbols.Lookup("b")
	require.True(t, found)
	assert.Equal(t, ibtl.BoolType, b.Type)
	assert.True(t, b.Assigned)
	s, found := tl.Symbols.Lookup("s")
	require.True(t, found)
	assert.False(t, s.Assigned)
}

// Tests calling CompileAll do not install the testing trace adapter: its
// tracers keep per-key state and are not safe for concurrent use.

func TestCompileAll(t *testing.T) {
	var sources []string
	for i := 0; i < 20; i++ {
		sources = append(sources, fmt.Sprintf("(let (x int)) (:= x %d) (stdout (* x x))", i))
	}
	targets, err := CompileAll(context.Background(), sources)
	require.NoError(t, err)
	require.Len(t, targets, len(sources))
	for i, target := range targets {
		single, err := Compile(sources[i])
		require.NoError(t, err)
		assert.Equal(t, single, target, "unit %d out of order", i)
	}
}

func TestCompileAllFails(t *testing.T) {
	targets, err := CompileAll(context.Background(), []string{"(+ 1 2)", "(stdout y)", "(+ 3 4)"})
	require.Error(t, err)
	assert.Nil(t, targets)
	var uerr *UnitError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, 1, uerr.Index)
	assert.True(t, errors.Is(err, ibtl.ErrUnbound))
}

func TestCompileAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CompileAll(ctx, []string{"(+ 1 2)"})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCompileAllUnitsAreIndependent(t *testing.T) {
	types := []string{"int", "real", "bool", "string"}
	values := []string{"7", "7.5", "true", `"seven"`}
	var sources []string
	for i := 0; i < 64; i++ {
		k := i % len(types)
		sources = append(sources, fmt.Sprintf("(let (v %s) (w %s)) (:= v %s) (:= w v) (stdout w)",
			types[k], types[k], values[k]))
	}
	targets, err := CompileAll(context.Background(), sources)
	require.NoError(t, err, "units must not see each other's declarations")
	for i, target := range targets {
		assert.Contains(t, target, "variable v", "unit %d", i)
		assert.Contains(t, target, "w", "unit %d", i)
	}
	assert.Contains(t, targets[1], "fvariable v fvariable w")
	assert.Contains(t, targets[3], "2variable v 2variable w")
}
