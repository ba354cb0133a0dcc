/*
Package gforth translates IBTL syntax trees to Gforth.

Translation is a single post-order walk of the AST. Each subtree yields an
ibtl.Value: the type of the value it computes together with the Gforth code
computing it. Types flow bottom-up; mixed int/real arithmetic is coerced by
converting the int side with 's>f'. Identifiers are checked against the symbol
table at the point they are referenced.

The first semantic error aborts the translation; no partial output is
produced.
*/
package gforth

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ibtl.gforth'
func tracer() tracing.Trace {
	return tracing.Select("ibtl.gforth")
}
