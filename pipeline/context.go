package pipeline

import (
	"github.com/fernvibe/fernc/ast"
	"github.com/fernvibe/fernc/config"
	"github.com/fernvibe/fernc/diagnostics"
	"github.com/fernvibe/fernc/manifest"
	"github.com/fernvibe/fernc/scope"
)

// PipelineContext is threaded through every Processor.Process call: a
// single file's source text in, a lowered and emitted output out, with
// every intermediate pass's state visible to the passes after it.
type PipelineContext struct {
	FilePath string
	Source   string

	// AstRoot holds the parser's output once the parse stage has run.
	AstRoot *ast.Program

	// GlobalScope is shared across every file in a compilation unit; the
	// resolver passes populate it (package-level functions, classes,
	// operators, global variables). resolve.Processor runs all four
	// passes over one file at a time, so a file's bodies are resolved
	// before the declarations of files processed after it are entered.
	GlobalScope *scope.Scope

	// Manifest is the package metadata loaded from fern.yaml, nil for a
	// single-file compile with no manifest.
	Manifest *manifest.Manifest

	Config *config.Config

	// Emitted holds the generated header/source file bodies, keyed by
	// output file name, once the emit stage has run.
	Emitted map[string][]byte

	Errors []*diagnostics.DiagnosticError
}

// NewContext builds the initial PipelineContext for one source file.
func NewContext(filePath, source string, cfg *config.Config) *PipelineContext {
	return &PipelineContext{
		FilePath: filePath,
		Source:   source,
		Config:   cfg,
		Emitted:  make(map[string][]byte),
	}
}

// AddError appends a diagnostic, deduplicating by DedupeKey so repeated
// passes over the same malformed node don't pile up identical errors.
func (ctx *PipelineContext) AddError(errs ...*diagnostics.DiagnosticError) {
	seen := make(map[string]bool, len(ctx.Errors))
	for _, e := range ctx.Errors {
		seen[e.DedupeKey()] = true
	}
	for _, e := range errs {
		if e == nil {
			continue
		}
		key := e.DedupeKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		ctx.Errors = append(ctx.Errors, e)
	}
}

func (ctx *PipelineContext) HasErrors() bool { return len(ctx.Errors) > 0 }
