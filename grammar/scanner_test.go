package grammar

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/ibtl"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWordKind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		s    string
		kind TokKind
	}{
		{s: "true", kind: BoolLiteral},
		{s: "false", kind: BoolLiteral},
		{s: "and", kind: BinaryOperator},
		{s: "not", kind: UnaryOperator},
		{s: "tan", kind: UnaryOperator},
		{s: "real", kind: TypeKeyword},
		{s: "stdout", kind: Statement},
		{s: "while", kind: Statement},
		{s: "x_1", kind: Identifier},
		{s: "lettuce", kind: Identifier},
	} {
		if k := wordKind(x.s); k != x.kind {
			t.Errorf("test %d: %q classified as %s, expected %s", i, x.s, k, x.kind)
		}
	}
}

func TestLexerNextToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.grammar")
	defer teardown()
	//
	input := `(let (x_1 real)) (:= x_1 (+ 1.5 -2)) (stdout "hi there") >= 3e-2 7. != not`
	var expect = []struct {
		kind TokKind
		text string
	}{
		{LeftParen, "("}, {Statement, "let"}, {LeftParen, "("}, {Identifier, "x_1"},
		{TypeKeyword, "real"}, {RightParen, ")"}, {RightParen, ")"},
		{LeftParen, "("}, {Assignment, ":="}, {Identifier, "x_1"}, {LeftParen, "("},
		{BinaryOperator, "+"}, {RealLiteral, "1.5"}, {Minus, "-"}, {IntLiteral, "2"},
		{RightParen, ")"}, {RightParen, ")"},
		{LeftParen, "("}, {Statement, "stdout"}, {StringLiteral, `"hi there"`}, {RightParen, ")"},
		{BinaryOperator, ">="}, {RealLiteral, "3e-2"}, {RealLiteral, "7."},
		{BinaryOperator, "!="}, {UnaryOperator, "not"},
	}
	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != len(expect) {
		t.Fatalf("expected %d tokens, have %d: %v", len(expect), len(tokens), tokens)
	}
	for i, tok := range tokens {
		t.Logf("token = %s", tok)
		if tok.Kind != expect[i].kind || tok.Text != expect[i].text {
			t.Errorf("token #%d: expected %s %q, have %s", i, expect[i].kind, expect[i].text, tok)
		}
	}
}

func TestLexerPeek(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.grammar")
	defer teardown()
	//
	lex, err := NewLexer("(* 2 3)")
	if err != nil {
		t.Fatal(err)
	}
	p1, _ := lex.Peek()
	p2, _ := lex.Peek()
	if p1 != p2 || p1.Kind != LeftParen {
		t.Errorf("expected repeated peeks to deliver '(', have %s and %s", p1, p2)
	}
	n, _ := lex.Next()
	if n != p1 {
		t.Errorf("expected Next to deliver peeked token, have %s", n)
	}
	n, _ = lex.Next()
	if n.Kind != BinaryOperator || n.Text != "*" {
		t.Errorf("expected '*' after '(', have %s", n)
	}
	for i := 0; i < 3; i++ {
		lex.Next()
	}
	for i := 0; i < 2; i++ {
		if n, err = lex.Next(); n.Kind != EOF || err != nil {
			t.Errorf("expected EOF at end of input, have %s (%v)", n, err)
		}
	}
}

func TestLexerPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.grammar")
	defer teardown()
	//
	tokens, err := Tokenize("(+ 1\n   23)")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[2].Pos.Line != 1 || tokens[3].Pos.Line != 2 {
		t.Errorf("expected '1' on line 1 and '23' on line 2, have %s and %s",
			tokens[2].Pos, tokens[3].Pos)
	}
	if tokens[1].Pos.Col-tokens[0].Pos.Col != 1 {
		t.Errorf("expected '+' next to '(', have %s and %s", tokens[0].Pos, tokens[1].Pos)
	}
}

func TestLexerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input  string
		reason error
	}{
		{input: "(+ 1.2.3 4)", reason: ibtl.ErrMalformedNumber},
		{input: "(+ .5 4)", reason: ibtl.ErrMalformedNumber},
		{input: "(+ 1e 4)", reason: ibtl.ErrMalformedNumber},
		{input: `(stdout "abc)`, reason: ibtl.ErrUnterminatedString},
		{input: "(+ 1 @)", reason: ibtl.ErrUnrecognizedChar},
		{input: "(: x 1)", reason: ibtl.ErrUnrecognizedChar},
	} {
		_, err := Tokenize(x.input)
		if err == nil {
			t.Errorf("test %d: expected %q to fail", i, x.input)
			continue
		}
		t.Logf("error = %v", err)
		var lexerr *ibtl.LexError
		if !errors.As(err, &lexerr) {
			t.Errorf("test %d: expected a lexer error, have %T", i, err)
		}
		if !errors.Is(err, x.reason) {
			t.Errorf("test %d: expected reason %q, have %v", i, x.reason, err)
		}
	}
}

func TestLexerReportsWholeRune(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.grammar")
	defer teardown()
	//
	_, err := Tokenize("(let (é int))")
	if !errors.Is(err, ibtl.ErrUnrecognizedChar) {
		t.Fatalf("expected unrecognized character, have %v", err)
	}
	if !strings.Contains(err.Error(), "'é'") {
		t.Errorf("expected error to name 'é', have %q", err.Error())
	}
}

func TestLexerStuckAfterError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ibtl.grammar")
	defer teardown()
	//
	lex, _ := NewLexer("@ 1")
	_, err1 := lex.Next()
	_, err2 := lex.Next()
	if err1 == nil || err1 != err2 {
		t.Errorf("expected lexer to repeat its first error, have %v and %v", err1, err2)
	}
}
