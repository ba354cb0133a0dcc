// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'ibtl.cli'.
func trace() tracing.Trace {
	return tracing.Select("ibtl.cli")
}

// Formatter renders items produced by an interpreter to a writer.
// It returns false if it does not know how to render item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter renders strings, errors and tables.
type DefaultFormatter struct{}

// Format is part of interface Formatter.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case nil:
		return false, nil
	case string:
		_, err := io.WriteString(w, t+"\n")
		return true, err
	case error:
		_, err := io.WriteString(w, prtxt.FgRed.Sprintf("▶ %s\n", t.Error()))
		return true, err
	case table.Writer:
		_, err := io.WriteString(w, t.Render()+"\n")
		return true, err
	}
	_, err := fmt.Fprintf(w, "▶ object of type %T\n", item)
	return true, err
}
