// Command fernc is the one-shot batch compiler driver: read one or more
// .bi source files (directly, or via a fern.yaml manifest's Sources
// list), run the parse/resolve/emit pipeline over them against one
// shared global scope, print any diagnostics, and write the emitted
// .bih/.hpp/.cpp files. Autotools invocation, dynamic loading of built
// programs, and environment-variable search paths belong to a separate
// build-driver layer and are not handled here.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fernvibe/fernc/config"
	"github.com/fernvibe/fernc/diagnostics"
	"github.com/fernvibe/fernc/emit"
	"github.com/fernvibe/fernc/fernsrc"
	"github.com/fernvibe/fernc/generics"
	"github.com/fernvibe/fernc/manifest"
	"github.com/fernvibe/fernc/parser"
	"github.com/fernvibe/fernc/pipeline"
	"github.com/fernvibe/fernc/resolve"
	"github.com/fernvibe/fernc/scope"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("fernc", flag.ContinueOnError)
	strict := fs.Bool("strict", false, "promote warnings to hard errors")
	noBih := fs.Bool("no-bih", false, "skip emitting .bih package-interface files")
	outDir := fs.String("o", ".", "output directory for emitted files")
	dialect := fs.String("dialect", string(config.DialectCpp17), "target dialect (cpp17, cpp20)")
	manifestPath := fs.String("manifest", "", "path to a fern.yaml package manifest")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Default()
	cfg.StrictMode = *strict
	cfg.EmitBih = !*noBih
	cfg.OutDir = *outDir
	cfg.TargetDialect = config.Dialect(*dialect)

	sources := fs.Args()
	if *manifestPath != "" {
		m, err := manifest.Load(*manifestPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		dir := filepath.Dir(*manifestPath)
		for _, s := range m.Package.Sources {
			sources = append(sources, filepath.Join(dir, s))
		}
	}
	if len(sources) == 0 {
		fmt.Fprintln(os.Stderr, "usage: fernc [flags] <file.bi...>")
		return 2
	}

	return compileFiles(sources, cfg)
}

// compileFiles runs the four-pass pipeline over each source file in
// turn against one shared global scope. A file goes through all four
// passes, bodies included, before the next file's declarations are
// entered, so a body sees the signatures of its own file and of files
// processed before it, not of later ones. It then emits each file's
// output only if the whole
// package came out error-free -- no partial output files are left on
// disk, since the emitter runs only after all passes complete.
func compileFiles(paths []string, cfg *config.Config) int {
	global := scope.New(nil, scope.KindGlobal)
	inst := generics.New()
	inst.Bind(global)

	printer := diagnostics.NewPrinter(os.Stderr)

	contexts := make([]*pipeline.PipelineContext, 0, len(paths))
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			printer.Print([]*diagnostics.DiagnosticError{
				diagnostics.New(diagnostics.FileNotFound, fernsrc.Single(path, 1, 1), "%s", err),
			})
			return 1
		}
		ctx := pipeline.NewContext(path, string(src), cfg)
		ctx.GlobalScope = global
		contexts = append(contexts, ctx)
	}

	parse := &parser.Processor{}
	for _, ctx := range contexts {
		parse.Process(ctx)
	}

	resolverProc := &resolve.Processor{Instantiator: inst}
	for _, ctx := range contexts {
		resolverProc.Process(ctx)
	}

	hadErrors := false
	for _, ctx := range contexts {
		if ctx.HasErrors() {
			hadErrors = true
			printer.Print(ctx.Errors)
		}
	}
	if hadErrors {
		return 1
	}

	emitter := emit.New(cfg)
	emitProc := emit.NewProcessor(emitter)
	for _, ctx := range contexts {
		emitProc.Process(ctx)
		for name, content := range ctx.Emitted {
			if _, err := emit.WriteIfChanged(cfg.OutDir, name, content); err != nil {
				fmt.Fprintf(os.Stderr, "fernc: writing %s: %s\n", name, err)
				return 1
			}
		}
	}
	return 0
}
