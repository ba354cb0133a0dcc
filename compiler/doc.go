/*
Package compiler glues the stages of the IBTL translation together.

A compilation unit runs through lexing and parsing (package grammar), then
through the combined analysis and code generation pass (package gforth),
which binds identifiers in a fresh symbol frame (package sframe).
Every call of Compile is independent of every other one: there is no state
shared between calls, so clients may compile different sources concurrently.
CompileAll does exactly that for a batch of sources.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compiler

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ibtl.compiler'.
func tracer() tracing.Trace {
	return tracing.Select("ibtl.compiler")
}
