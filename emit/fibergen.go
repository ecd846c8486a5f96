package emit

import (
	"fmt"
	"strings"

	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/fiber"
)

// FiberDeclClass emits the concrete backing class for one fiber
// declaration: a subclass of FiberState<Yield> holding one member per
// parameter and per promoted local, an integer `label_` cursor, a
// `value_` slot the last yield wrote into, and a query() method whose
// body is the fiber's statements with every yield turned into a
// label/return/resume triple. Fiber resumption re-entrance is guarded
// by the label_ switch itself, independent of generic instantiation's
// own state-field guard.
func FiberDeclClass(decl *ast.FunctionDecl) string {
	sm := fiber.Lower(decl)
	className := fiberStateName(Mangle(decl.Name))
	yieldType := CType(sm.YieldType)

	var b strings.Builder
	fmt.Fprintf(&b, "class %s : public FiberState<%s> {\npublic:\n", className, yieldType)

	for _, param := range sm.Params {
		fmt.Fprintf(&b, "    %s %s;\n", paramCType(param), Mangle(param.Name))
	}
	for _, local := range sm.Locals {
		fmt.Fprintf(&b, "    %s %s;\n", ctypeOrAuto(local), local.Name)
	}
	b.WriteString("    int label_ = 0;\n\n")

	b.WriteString("    bool query() override {\n")
	b.WriteString("        switch (label_) {\n")
	b.WriteString("            case 0: break;\n")
	for _, y := range sm.Yields {
		fmt.Fprintf(&b, "            case %d: goto LABEL_%d;\n", y.Label, y.Label)
	}
	fmt.Fprintf(&b, "            case %d: goto END_;\n", sm.FinalLabel)
	b.WriteString("            default: break;\n")
	b.WriteString("        }\n")

	p := &printer{indent: 2, localNames: sm.LocalNames, yieldLabels: yieldLabelIndex(sm)}
	if decl.Body != nil {
		b.WriteString(p.pad())
		b.WriteString(stripOuterBraces(p.stmt(decl.Body)))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "        this->label_ = %d;\n", sm.FinalLabel)
	b.WriteString("        END_:;\n")
	b.WriteString("        return false;\n")
	b.WriteString("    }\n")
	b.WriteString("};\n")
	return b.String()
}

func yieldLabelIndex(sm *fiber.StateMachine) map[*ast.YieldStmt]int {
	out := make(map[*ast.YieldStmt]int, len(sm.Yields))
	for _, y := range sm.Yields {
		out[y.Stmt] = y.Label
	}
	return out
}

func ctypeOrAuto(local *fiber.LocalSlot) string {
	if local.Type == nil {
		return "auto"
	}
	return CType(local.Type)
}

// stripOuterBraces removes the leading "{" and trailing "}" that
// printer.stmt wraps a BracesStmt body in, since query() provides its
// own enclosing braces and the labels/gotos inside must live directly
// in its scope, not a nested one (a goto cannot jump into an inner
// block past a variable's initialization in standard C++).
func stripOuterBraces(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
