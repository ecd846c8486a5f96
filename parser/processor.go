package parser

import (
	"github.com/fernvibe/fernc/pipeline"
)

// Processor wires the parser into the pipeline. fernc's Parser
// tokenizes its own source (there is no separate lexer stage in the
// pipeline, since the pre-tokenized-slice design means lexing and
// parsing share one constructor call), so Process only needs
// ctx.Source and ctx.FilePath.
type Processor struct{}

func (pp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	p := New(ctx.FilePath, ctx.Source)
	ctx.AstRoot = p.ParseProgram()
	ctx.AddError(p.Errors...)
	return ctx
}
