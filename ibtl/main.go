// Command ibtl compiles IBTL programs to Gforth.
//
// Called with file arguments, ibtl compiles every file and writes the
// resulting Gforth code to an output file. Called without arguments it
// enters an interactive REPL, compiling one line at a time.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/ibtl"
	"github.com/npillmayer/ibtl/ibtl/cli"
)

func main() {
	var stop context.CancelFunc
	ibtl.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.Execute()
}
