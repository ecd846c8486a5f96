package emit

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/config"
)

// Emitter renders one resolved ast.Program into three output
// artifacts: a per-file .cpp source with every out-of-line
// implementation, and a per-package .hpp (target-language declarations)
// plus, when Config.EmitBih is set, a .bih (surface-language
// declarations for another fernc compile unit importing this package
// by name).
type Emitter struct {
	Config *config.Config
}

func New(cfg *config.Config) *Emitter {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Emitter{Config: cfg}
}

// EmitProgram renders prog and returns every output file's content,
// keyed by output file name (not yet joined with Config.OutDir --
// that's WriteIfChanged's job, so tests can inspect content without
// touching disk).
func (em *Emitter) EmitProgram(prog *ast.Program) map[string][]byte {
	out := map[string][]byte{}

	base := strings.TrimSuffix(filepath.Base(prog.File), filepath.Ext(prog.File))
	pkg := base
	if prog.Package != nil && prog.Package.Name != "" {
		pkg = prog.Package.Name
	}

	out[base+".cpp"] = []byte(em.source(prog, pkg))
	out[pkg+".hpp"] = []byte(em.header(prog, pkg))
	if em.Config.EmitBih {
		out[pkg+".bih"] = []byte(em.bih(prog, pkg))
	}
	return out
}

// source renders the .cpp: every class body (constructors/members are
// defined inline in the class, per ClassDefinition), every fiber's
// backing state class, and every free function/operator body.
func (em *Emitter) source(prog *ast.Program, pkg string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#include \"%s.hpp\"\n\n", pkg)

	forEachDecl(prog, func(d ast.Statement) {
		switch n := d.(type) {
		case *ast.ClassDecl:
			em.emitClassAndInstantiations(&b, n)
		case *ast.FunctionDecl:
			em.emitFunctionAndInstantiations(&b, n)
		case *ast.OperatorDecl:
			if n.Owner == nil {
				b.WriteString(OperatorDefinition(n))
				b.WriteString("\n")
			}
		case *ast.GlobalVariableDecl:
			em.globalDefinition(&b, n)
		}
	})
	return b.String()
}

func (em *Emitter) emitClassAndInstantiations(b *strings.Builder, n *ast.ClassDecl) {
	if !n.IsGeneric() {
		b.WriteString(ClassDefinition(n))
		b.WriteString("\n")
	}
	for _, inst := range n.Instantiations {
		if cd, ok := inst.Decl.(*ast.ClassDecl); ok {
			b.WriteString(ClassDefinition(cd))
			b.WriteString("\n")
		}
	}
}

func (em *Emitter) emitFunctionAndInstantiations(b *strings.Builder, n *ast.FunctionDecl) {
	if n.IsFiber {
		b.WriteString(FiberDeclClass(n))
		b.WriteString("\n")
	}
	if !n.IsGeneric() {
		b.WriteString(FunctionDefinition(n))
		b.WriteString("\n")
	}
	for _, inst := range n.Instantiations {
		if fd, ok := inst.Decl.(*ast.FunctionDecl); ok {
			if fd.IsFiber {
				b.WriteString(FiberDeclClass(fd))
				b.WriteString("\n")
			}
			b.WriteString(FunctionDefinition(fd))
			b.WriteString("\n")
		}
	}
}

func (em *Emitter) globalDefinition(b *strings.Builder, n *ast.GlobalVariableDecl) {
	init := ""
	if n.Init != nil {
		init = " = " + newPrinter().expr(n.Init)
	}
	fmt.Fprintf(b, "namespace Globals { %s %s%s; }\n", CType(n.VarType), Mangle(n.Name), init)
}

// header renders the .hpp: forward declarations and signatures only,
// no bodies, so multiple .cpp files in the same package can include it
// without violating the one-definition rule.
func (em *Emitter) header(prog *ast.Program, pkg string) string {
	var b strings.Builder
	guard := strings.ToUpper(Mangle(pkg)) + "_HPP"
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guard, guard)
	b.WriteString("#include \"runtime.hpp\"\n\n")

	forEachDecl(prog, func(d ast.Statement) {
		switch n := d.(type) {
		case *ast.BasicTypeDecl:
			fmt.Fprintf(&b, "// basic type %s\n", n.Name)
		case *ast.ClassDecl:
			if !n.IsGeneric() {
				fmt.Fprintf(&b, "class %s;\n", Mangle(n.Name))
			}
		case *ast.FunctionDecl:
			if !n.IsGeneric() && n.Owner == nil {
				fmt.Fprintf(&b, "%s;\n", FunctionSignature(n))
			}
		case *ast.GlobalVariableDecl:
			fmt.Fprintf(&b, "namespace Globals { extern %s %s; }\n", CType(n.VarType), Mangle(n.Name))
		}
	})

	b.WriteString("\n#endif\n")
	return b.String()
}

// bih renders the surface-language interface summary another fernc
// compile unit reads to import this package by name, distinct from the
// .hpp's target-language forward declarations.
func (em *Emitter) bih(prog *ast.Program, pkg string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "package %s;\n\n", pkg)
	forEachDecl(prog, func(d ast.Statement) {
		switch n := d.(type) {
		case *ast.ClassDecl:
			fmt.Fprintf(&b, "class %s;\n", n.Name)
		case *ast.FunctionDecl:
			if n.Owner == nil {
				fmt.Fprintf(&b, "function %s;\n", n.Name)
			}
		case *ast.GlobalVariableDecl:
			fmt.Fprintf(&b, "global %s;\n", n.Name)
		}
	})
	return b.String()
}

func forEachDecl(prog *ast.Program, f func(ast.Statement)) {
	for _, d := range prog.Decls {
		f(d)
	}
}
