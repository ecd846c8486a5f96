// Package fernsrc holds the source-location value type shared by the
// lexer, parser, AST, and diagnostics packages.
package fernsrc

import "fmt"

// Location is an immutable source span. It is copied by value; nothing
// in the compiler ever takes its address as a mutation target.
type Location struct {
	File       string
	FirstLine  int
	LastLine   int
	FirstCol   int
	LastCol    int
	DocComment string // doc comment immediately preceding the node, if any
}

// Single returns a zero-width location at line/col within file.
func Single(file string, line, col int) Location {
	return Location{File: file, FirstLine: line, LastLine: line, FirstCol: col, LastCol: col}
}

// Span returns the smallest Location covering both a and b.
func Span(a, b Location) Location {
	loc := Location{File: a.File, FirstLine: a.FirstLine, FirstCol: a.FirstCol}
	loc.LastLine, loc.LastCol = b.LastLine, b.LastCol
	return loc
}

// String renders the location the way fernc prints it in diagnostics:
// "<file>:<line>[-<line>][.<col>[-.<col>]]".
func (l Location) String() string {
	if l.FirstLine == l.LastLine {
		if l.FirstCol == l.LastCol {
			return fmt.Sprintf("%s:%d.%d", l.File, l.FirstLine, l.FirstCol)
		}
		return fmt.Sprintf("%s:%d.%d-.%d", l.File, l.FirstLine, l.FirstCol, l.LastCol)
	}
	return fmt.Sprintf("%s:%d-%d.%d-.%d", l.File, l.FirstLine, l.LastLine, l.FirstCol, l.LastCol)
}
