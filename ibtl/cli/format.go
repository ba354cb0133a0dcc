package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/ibtl/grammar"
	"github.com/npillmayer/ibtl/ibtl/ui/termui"
	"github.com/npillmayer/ibtl/sframe"
)

// Formatter renders compiler artifacts in the REPL.
type Formatter struct {
	termui.DefaultFormatter
}

// Format is part of interface termui.Formatter.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("Format called for item %T", item)
	switch t := item.(type) {
	case []grammar.Token:
		item = tokensAsTable(t)
	case *sframe.SymbolTable:
		item = symbolsAsTable(t)
	}
	return f.DefaultFormatter.Format(item, w)
}

// --- Property tables for various types -------------------------------------

func tokensAsTable(tokens []grammar.Token) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("%d tokens", len(tokens))
	tw.AppendHeader(table.Row{"kind", "lexeme", "position"})
	for _, t := range tokens {
		tw.AppendRow(table.Row{t.Kind.String(), t.Text, t.Pos.String()})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func symbolsAsTable(symtab *sframe.SymbolTable) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("%d symbols", symtab.Size())
	tw.AppendHeader(table.Row{"identifier", "type", "assigned"})
	symtab.Each(func(e *sframe.Entry) {
		assigned := "–"
		if e.Assigned {
			assigned = "yes"
		}
		tw.AppendRow(table.Row{e.Name, e.Type.String(), assigned})
	})
	tw.SetStyle(table.StyleLight)
	return tw
}

func printItem(w io.Writer, item interface{}) {
	if _, err := (Formatter{}).Format(item, w); err != nil {
		fmt.Fprintf(w, "cannot display %T: %v\n", item, err)
	}
}
