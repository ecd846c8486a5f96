package parser_test

import (
	"strings"
	"testing"

	"github.com/fernvibe/fernc/diagnostics"
	"github.com/fernvibe/fernc/parser"
)

// parseErrors runs the parser over input and returns all diagnostics.
func parseErrors(input string) []*diagnostics.DiagnosticError {
	p := parser.New("t.fn", input)
	p.ParseProgram()
	return p.Errors
}

func expectParseError(t *testing.T, input string) *diagnostics.DiagnosticError {
	t.Helper()
	errs := parseErrors(input)
	if len(errs) == 0 {
		t.Fatalf("expected a parse error, got none\ninput: %s", input)
	}
	return errs[0]
}

func expectNoParseErrors(t *testing.T, input string) {
	t.Helper()
	errs := parseErrors(input)
	if len(errs) > 0 {
		var msgs []string
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("expected no errors, got:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}
}

func TestParseError_UnterminatedExpression(t *testing.T) {
	expectParseError(t, "program P() { x = ; }")
}

func TestParseError_MissingSemicolon(t *testing.T) {
	expectParseError(t, "program P() { x = 5 }")
}

func TestParseError_UnclosedBlock(t *testing.T) {
	err := expectParseError(t, "program P() { x = 5;")
	if err.Code != diagnostics.Parse {
		t.Errorf("code = %v, want %v", err.Code, diagnostics.Parse)
	}
}

func TestParseError_BadTopLevelToken(t *testing.T) {
	expectParseError(t, "42;")
}

func TestParseError_UnclosedParamListReported(t *testing.T) {
	// The program's parameter list is never closed; the parser must
	// report at least one error for it.
	errs := parseErrors(`
		program Bad(
		type Meters;
	`)
	if len(errs) == 0 {
		t.Fatal("expected at least one error from the malformed program")
	}
}

func TestParseError_MissingWhileAfterDoBlock(t *testing.T) {
	expectParseError(t, "program P() { do { x = 1; } (x < 10); }")
}

func TestParseError_DeepRecursionGuard(t *testing.T) {
	var b strings.Builder
	b.WriteString("x = ")
	for i := 0; i < parser.MaxRecursionDepth+20; i++ {
		b.WriteString("(")
	}
	b.WriteString("1")
	for i := 0; i < parser.MaxRecursionDepth+20; i++ {
		b.WriteString(")")
	}
	b.WriteString(";")
	expectParseError(t, b.String())
}

func TestNoErrors_WellFormedProgram(t *testing.T) {
	expectNoParseErrors(t, `
		package geometry;
		export Vec2;

		class Vec2 {
			x: Real <- 0.0;
			y: Real <- 0.0;

			function length() -> Real {
				return x;
			}
		}

		function main() -> Integer {
			auto v <- Vec2();
			return 0;
		}
	`)
}
