package compiler

import (
	"context"

	"github.com/npillmayer/ibtl/gforth"
	"github.com/npillmayer/ibtl/grammar"
	"github.com/npillmayer/ibtl/sframe"
	"golang.org/x/sync/errgroup"
)

// Translation is the result of a successful compile run.
type Translation struct {
	Program grammar.Program     // top-level forms
	Symbols *sframe.SymbolTable // identifiers bound during generation
	Target  string              // Gforth source text
}

// Compile translates an IBTL source text to Gforth.
// Errors are of type ibtl.CompileError; the first one aborts the translation
// and no partial output is returned.
func Compile(source string) (string, error) {
	t, err := Translate(source)
	if err != nil {
		return "", err
	}
	return t.Target, nil
}

// Translate is like Compile, but will return the intermediate artifacts of
// the translation as well.
func Translate(source string) (*Translation, error) {
	prog, err := grammar.Parse(source)
	if err != nil {
		tracer().Infof("compile aborted: %v", err)
		return nil, err
	}
	symtab := sframe.NewSymbolTable()
	target, err := gforth.Generate(prog, symtab)
	if err != nil {
		tracer().Infof("compile aborted: %v", err)
		return nil, err
	}
	tracer().Debugf("compiled %d forms, %d symbols", len(prog), symtab.Size())
	return &Translation{
		Program: prog,
		Symbols: symtab,
		Target:  target,
	}, nil
}

// CompileAll compiles independent sources concurrently. Targets are returned
// in the order of sources. If any source fails to compile, CompileAll returns
// the first error reported and no targets.
//
// ctx may cancel compilation of sources which have not been started yet.
func CompileAll(ctx context.Context, sources []string) ([]string, error) {
	targets := make([]string, len(sources))
	group, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			target, err := Compile(src)
			if err != nil {
				return &UnitError{Index: i, Err: err}
			}
			targets[i] = target
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return targets, nil
}

// UnitError tells which of the sources handed to CompileAll failed.
type UnitError struct {
	Index int
	Err   error
}

func (e *UnitError) Error() string {
	return e.Err.Error()
}

func (e *UnitError) Unwrap() error { return e.Err }
