package grammar

/*
BSD License

Copyright (c) 2019–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */

import (
	"sync"

	"github.com/npillmayer/ibtl"
	lex "github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token patterns. lexmachine selects the longest match; for matches of equal
// length the pattern added first wins.
//
// Malformed numerals and unterminated strings have patterns of their own, each
// matching strictly more input than any well-formed prefix of it. Their
// actions raise lexer errors.
func addPatterns(lexer *lex.Lexer) {
	lexer.Add([]byte(`( |\t|\n|\r)+`), skip) // skip whitespace
	lexer.Add([]byte(`\(`), makeToken(LeftParen))
	lexer.Add([]byte(`\)`), makeToken(RightParen))
	lexer.Add([]byte(`:=`), makeToken(Assignment))
	lexer.Add([]byte(`\+|\*|/|%|\^`), makeToken(BinaryOperator))
	lexer.Add([]byte(`-`), makeToken(Minus))
	lexer.Add([]byte(`>|<|=|>=|<=|==|!=`), makeToken(BinaryOperator))
	//
	lexer.Add([]byte(`[0-9]+`), makeToken(IntLiteral))
	lexer.Add([]byte(`[0-9]+\.[0-9]*`), makeToken(RealLiteral))
	lexer.Add([]byte(`[0-9]+(\.[0-9]*)?e(\+|-)?[0-9]+`), makeToken(RealLiteral))
	lexer.Add([]byte(`[0-9]+\.[0-9]*\.([0-9]|\.)*`), lexFailure(ibtl.ErrMalformedNumber,
		"numeral with more than one radix point"))
	lexer.Add([]byte(`[0-9]+(\.[0-9]*)?e(\+|-)?`), lexFailure(ibtl.ErrMalformedNumber,
		"exponent without digits"))
	lexer.Add([]byte(`\.[0-9]*`), lexFailure(ibtl.ErrMalformedNumber,
		"numeral without leading digits"))
	//
	lexer.Add([]byte(`"([^"\\]|\\.)*"`), makeToken(StringLiteral))
	lexer.Add([]byte(`"([^"\\]|\\.)*`), lexFailure(ibtl.ErrUnterminatedString,
		"string literal not terminated"))
	//
	lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeWord())
}

var lexerOnce sync.Once // monitors one-time compilation of the lexer DFA
var ibtlLexer *lex.Lexer
var lexerErr error

// compiledLexer returns the lexmachine lexer for IBTL. It is compiled once and
// shared by all scanners; lexmachine scanners keep their state to themselves.
func compiledLexer() (*lex.Lexer, error) {
	lexerOnce.Do(func() {
		tracer().Debugf("compiling IBTL lexer DFA")
		ibtlLexer = lex.NewLexer()
		addPatterns(ibtlLexer)
		lexerErr = ibtlLexer.Compile()
		if lexerErr != nil {
			tracer().Errorf("cannot compile lexer: %v", lexerErr)
		}
	})
	return ibtlLexer, lexerErr
}

func skip(*lex.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(kind TokKind) lex.Action {
	return func(s *lex.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

func makeWord() lex.Action {
	return func(s *lex.Scanner, m *machines.Match) (interface{}, error) {
		lexeme := string(m.Bytes)
		return s.Token(int(wordKind(lexeme)), lexeme, m), nil
	}
}

func lexFailure(reason error, msg string) lex.Action {
	return func(s *lex.Scanner, m *machines.Match) (interface{}, error) {
		pos := ibtl.Pos{Line: m.StartLine, Col: m.StartColumn}
		return nil, ibtl.Lexf(reason, pos, "%s: %s", msg, string(m.Bytes))
	}
}
