// Package ibtl is a compiler for IBTL, a small fully-parenthesized prefix
// language, translating it to Gforth.
//
// The translation pipeline is split into packages:
//
//   grammar   tokens, lexer, AST and the recursive-descent parser
//   sframe    the symbol frame of a compilation unit
//   gforth    type inference and Gforth code generation
//   compiler  the Compile entry point gluing the stages together
//
// This package holds what all of them share: value types, the compile error
// taxonomy and application-wide configuration for the ibtl command.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package ibtl

import (
	"context"
	"os"

	"github.com/knadh/koanf"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context = context.Background()

// Exit exits the application with errcode.
func Exit(errcode int) {
	os.Exit(errcode)
}
