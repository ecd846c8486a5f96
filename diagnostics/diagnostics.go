// Package diagnostics implements the compiler-exception taxonomy of the
// error-handling design: every user-facing failure is a *DiagnosticError
// carrying a primary location and, for call/ambiguity errors, a list of
// candidate locations.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/fernvibe/fernc/fernsrc"
)

// ErrorCode identifies the kind of compiler-exception. Stable across
// releases since downstream tooling (LSP-style consumers) may match on it.
type ErrorCode string

const (
	Parse                ErrorCode = "E_PARSE"
	FileNotFound         ErrorCode = "E_FILE_NOT_FOUND"
	PreviousDeclaration  ErrorCode = "E_PREV_DECL"
	UnresolvedReference  ErrorCode = "E_UNRESOLVED_REF"
	Call                 ErrorCode = "E_CALL"
	AmbiguousCall        ErrorCode = "E_AMBIGUOUS_CALL"
	Cast                 ErrorCode = "E_CAST"
	Member               ErrorCode = "E_MEMBER"
	Super                ErrorCode = "E_SUPER"
	SuperBase            ErrorCode = "E_SUPER_BASE"
	This                 ErrorCode = "E_THIS"
	Get                  ErrorCode = "E_GET"
	Query                ErrorCode = "E_QUERY"
	NotAssignable        ErrorCode = "E_NOT_ASSIGNABLE"
	Assignment           ErrorCode = "E_ASSIGNMENT"
	InitialValue         ErrorCode = "E_INITIAL_VALUE"
	Base                 ErrorCode = "E_BASE"
	Condition            ErrorCode = "E_CONDITION"
	Index                ErrorCode = "E_INDEX"
	Return               ErrorCode = "E_RETURN"
	ReturnType           ErrorCode = "E_RETURN_TYPE"
	Yield                ErrorCode = "E_YIELD"
	YieldType            ErrorCode = "E_YIELD_TYPE"
	Constructor          ErrorCode = "E_CONSTRUCTOR"
	Sequence             ErrorCode = "E_SEQUENCE"
)

// DiagnosticError is the sole error type surfaced across pass boundaries.
// It is never wrapped; a pass either returns/collects it as-is or lets it
// propagate to the driver frame that prints it.
type DiagnosticError struct {
	Code       ErrorCode
	Location   fernsrc.Location
	Message    string
	Candidates []fernsrc.Location // extra locations, e.g. competing overloads
	Note       string             // optional "note: in ..." quoting the offending construct
}

func New(code ErrorCode, loc fernsrc.Location, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Location: loc, Message: fmt.Sprintf(format, args...)}
}

func (e *DiagnosticError) WithCandidates(locs ...fernsrc.Location) *DiagnosticError {
	e.Candidates = append(e.Candidates, locs...)
	return e
}

func (e *DiagnosticError) WithNote(note string) *DiagnosticError {
	e.Note = note
	return e
}

// Error renders "<file>:<line>...: error: <message>" followed by an
// optional "note: in ..." line.
func (e *DiagnosticError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: error: %s", e.Location, e.Message)
	for _, c := range e.Candidates {
		fmt.Fprintf(&b, "\n%s: note: candidate", c)
	}
	if e.Note != "" {
		fmt.Fprintf(&b, "\nnote: in %s", e.Note)
	}
	return b.String()
}

// DedupeKey identifies a diagnostic by location and code so that one
// malformed construct doesn't cascade into duplicate errors across
// resolver passes.
func (e *DiagnosticError) DedupeKey() string {
	return fmt.Sprintf("%d:%d:%s", e.Location.FirstLine, e.Location.FirstCol, e.Code)
}
