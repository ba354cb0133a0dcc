/*
Package grammar implements the front end of the IBTL compiler: tokens, the
lexer, the abstract syntax tree and a recursive-descent parser.

IBTL programs are sequences of fully parenthesized forms in prefix notation:

    (let (x int) (y real))
    (:= x 3)
    (:= y (+ x 0.5))
    (stdout (sin y))

The lexer is driven by the parser and delivers one token at a time, with a
single token of lookahead. A '-' is ambiguous for the lexer; it is delivered
as a Minus token and classified as unary or binary by the parser, once the
operands of the enclosing form have been counted.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ibtl.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("ibtl.grammar")
}
