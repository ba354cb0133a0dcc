/*
Package sframe holds the symbol frame of an IBTL compilation unit.

IBTL has a single, global scope. Every identifier of a program has one entry,
keyed by its name, recording its declared type and whether it has been assigned
a value yet. The code generator drives the entries through their life cycle:

    unbound ──(let)──▶ declared ──(:=)──▶ assigned ──(:=)──▶ assigned …

An identifier may only be read once it is assigned.

A symbol table lives for exactly one compile run; it is never shared between
compile runs.
*/
package sframe

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ibtl.sframe'
func tracer() tracing.Trace {
	return tracing.Select("ibtl.sframe")
}
