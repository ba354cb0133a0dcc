// Package cli implements the ibtl command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/npillmayer/ibtl"
	"github.com/npillmayer/ibtl/compiler"
	"github.com/npillmayer/ibtl/grammar"
	"github.com/npillmayer/ibtl/ibtl/ui/termui"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// defaultOutput is the file batch mode writes to if no output is configured.
const defaultOutput = "stutest.out"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ibtl [files...]",
	Short: "A compiler from IBTL to Gforth",
	Long: `Welcome to IBTL V0.1 (experimental)

IBTL compiles programs written in a fully parenthesized prefix language to
Gforth source code.

If called with one or more files, IBTL compiles each of them and writes the
Gforth code to an output file. If called without files, or with flag -i, it
will prompt for IBTL statements in a terminal REPL and print the Gforth
equivalent of each of them.

`,
	Run: runIbtlCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by ibtl.main().
func Execute() {
	if rootCmd.Execute() != nil {
		ibtl.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().StringP("output", "o", defaultOutput, "Output file for batch mode, '-' for stdout")
}

func runIbtlCmd(cmd *cobra.Command, args []string) {
	if len(args) == 0 || ibtl.Configuration.Bool("interactive") {
		runIbtlCmdIntpr(cmd, args)
		return
	}
	if err := compileFiles(args, ibtl.Configuration.String("output")); err != nil {
		fmt.Fprintf(os.Stderr, "ibtl: %v\n", err)
		ibtl.Exit(1)
	}
}

// --- Batch mode ------------------------------------------------------------

// compileFiles compiles every file in files and writes the Gforth code for
// all of them to output, in the order of files.
func compileFiles(files []string, output string) error {
	tracing.Infof("ibtl compiler called for %d files", len(files))
	sources := make([]string, len(files))
	for i, f := range files {
		src, err := ioutil.ReadFile(f)
		if err != nil {
			return err
		}
		sources[i] = string(src)
	}
	targets, err := compiler.CompileAll(ibtl.SignalContext, sources)
	if err != nil {
		if uerr, ok := err.(*compiler.UnitError); ok {
			return fmt.Errorf("%s: %w", files[uerr.Index], uerr.Err)
		}
		return err
	}
	if output == "-" {
		return writeTargets(os.Stdout, targets)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err = writeTargets(f, targets); err != nil {
		f.Close()
		return err
	}
	tracer().Infof("Gforth code written to %s", output)
	return f.Close()
}

// writeTargets writes the non-empty targets to w, each one ending with a newline.
func writeTargets(w io.Writer, targets []string) error {
	for _, target := range targets {
		if target == "" {
			continue
		}
		if _, err := io.WriteString(w, target+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// --- Interactive mode ------------------------------------------------------

func runIbtlCmdIntpr(cmd *cobra.Command, args []string) {
	tracing.Infof("ibtl interpreter called")
	icmd := &ibtlCmdIntpr{}
	icmd.BaseREPL = termui.NewBaseREPL("ibtl", "0.1 experimental")
	icmd.Interpreter = icmd
	icmd.Helper = func(w io.Writer) {
		io.WriteString(w, `
Every other line is compiled as an IBTL program, e.g.

  (let (x real)) (:= x 2) (stdout (* x 1.5))

`)
	}
	icmd.addSubcmdStatements()
	icmd.Prompt(true)
}

type ibtlCmdIntpr struct {
	*termui.BaseREPL
}

// InterpretCommand compiles command and prints the Gforth code or the error.
func (icmd *ibtlCmdIntpr) InterpretCommand(command string) {
	command = strings.Trim(command, "\x00")
	stdout, stderr := icmd.Outputs()
	target, err := compiler.Compile(command)
	if err != nil {
		printItem(stderr, err)
		return
	}
	printItem(stdout, target)
}

func (icmd *ibtlCmdIntpr) addSubcmdStatements() {
	icmd.AddCommand("tokens", termui.AdminCommand{
		Args: "<ibtl>",
		Help: "list the tokens of an IBTL text",
		Run:  icmd.tokens,
	})
	icmd.AddCommand("symbols", termui.AdminCommand{
		Args: "<ibtl>",
		Help: "compile an IBTL text and list its symbols",
		Run:  icmd.symbols,
	})
}

func (icmd *ibtlCmdIntpr) tokens(source string) {
	stdout, stderr := icmd.Outputs()
	tokens, err := grammar.Tokenize(source)
	printItem(stdout, tokens)
	if err != nil {
		printItem(stderr, err)
	}
}

func (icmd *ibtlCmdIntpr) symbols(source string) {
	stdout, stderr := icmd.Outputs()
	t, err := compiler.Translate(source)
	if err != nil {
		printItem(stderr, err)
		return
	}
	printItem(stdout, t.Symbols)
}
