package grammar

import (
	"errors"
	"unicode/utf8"

	"github.com/npillmayer/ibtl"
	lex "github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Lexer delivers the tokens of an IBTL source text one at a time, on demand.
// It supports a lookahead of one token.
//
// After the first error, the lexer is stuck: every further call to Next or Peek
// returns the same error.
type Lexer struct {
	scanner *lex.Scanner
	peeked  *Token
	err     error
	atEOF   bool
	eofPos  ibtl.Pos
}

// NewLexer creates a lexer for source.
func NewLexer(source string) (*Lexer, error) {
	lexer, err := compiledLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lexer.Scanner([]byte(source))
	if err != nil {
		return nil, err
	}
	return &Lexer{scanner: scanner}, nil
}

// Next returns the next token and consumes it. At the end of input, Next returns
// a token of kind EOF, as often as it is called.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		t := *l.peeked
		l.peeked = nil
		return t, nil
	}
	return l.scan()
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	t, err := l.scan()
	if err != nil {
		return t, err
	}
	l.peeked = &t
	return t, nil
}

func (l *Lexer) scan() (Token, error) {
	if l.err != nil {
		return Token{Kind: EOF, Pos: l.eofPos}, l.err
	}
	if l.atEOF {
		return Token{Kind: EOF, Pos: l.eofPos}, nil
	}
	tok, err, eof := l.scanner.Next()
	if eof {
		l.atEOF = true
		tracer().Debugf("EOF for IBTL input")
		return Token{Kind: EOF, Pos: l.eofPos}, nil
	}
	if err != nil {
		l.err = l.translateError(err)
		tracer().Errorf("%v", l.err)
		return Token{Kind: EOF, Pos: l.eofPos}, l.err
	}
	lmtok := tok.(*lex.Token)
	t := Token{
		Kind: TokKind(lmtok.Type),
		Text: lmtok.Value.(string),
		Pos:  ibtl.Pos{Line: lmtok.StartLine, Col: lmtok.StartColumn},
	}
	l.eofPos = ibtl.Pos{Line: lmtok.EndLine, Col: lmtok.EndColumn + 1}
	tracer().Debugf("IBTL lexer accepting %s at %s", t, t.Pos)
	return t, nil
}

// translateError makes sure every error leaving the lexer is an ibtl.LexError.
func (l *Lexer) translateError(err error) error {
	var lexerr *ibtl.LexError
	if errors.As(err, &lexerr) {
		return lexerr
	}
	if ui, ok := err.(*machines.UnconsumedInput); ok {
		pos := ibtl.Pos{Line: ui.StartLine, Col: ui.StartColumn}
		if ui.StartTC < len(ui.Text) {
			r, _ := utf8.DecodeRune(ui.Text[ui.StartTC:])
			return ibtl.Lexf(ibtl.ErrUnrecognizedChar, pos, "unrecognized character %q", r)
		}
		return ibtl.Lexf(ibtl.ErrUnrecognizedChar, pos, "unrecognized input")
	}
	return ibtl.Lexf(ibtl.ErrUnrecognizedChar, l.eofPos, "%v", err)
}

// Tokenize splits source into tokens, up to but not including EOF.
func Tokenize(source string) ([]Token, error) {
	l, err := NewLexer(source)
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for {
		t, err := l.Next()
		if err != nil {
			return tokens, err
		}
		if t.Kind == EOF {
			return tokens, nil
		}
		tokens = append(tokens, t)
	}
}
