package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Printer prints diagnostics to a writer, colorizing the "error:" banner
// only when the writer is a real terminal, checked via
// isatty.IsTerminal.
type Printer struct {
	w      io.Writer
	color  bool
}

// NewPrinter builds a Printer for w. If w is *os.File, color is enabled
// only when it refers to an actual terminal.
func NewPrinter(w io.Writer) *Printer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Printer{w: w, color: color}
}

func (p *Printer) Print(errs []*DiagnosticError) {
	for _, e := range errs {
		if p.color {
			fmt.Fprintf(p.w, "\x1b[31m%s\x1b[0m\n", e.Error())
		} else {
			fmt.Fprintln(p.w, e.Error())
		}
	}
}
