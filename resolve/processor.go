package resolve

import (
	"github.com/fernvibe/fernc/pipeline"
	"github.com/fernvibe/fernc/scope"
)

// Processor wires the four resolver passes into the pipeline: Typer,
// ResolverSuper, ResolverHeader, ResolverSource, run in that fixed
// order over the same GlobalScope.
//
// Instantiator is supplied by the generics package; it is nil-safe, so
// a caller that only wants the four structural passes (e.g. a resolve
// package test) can use the zero value.
type Processor struct {
	Instantiator Instantiator
}

func (rp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}
	if ctx.GlobalScope == nil {
		ctx.GlobalScope = scope.New(nil, scope.KindGlobal)
	}
	global := ctx.GlobalScope
	if rp.Instantiator != nil {
		rp.Instantiator.Bind(global)
	}

	typer := NewTyper(global)
	typer.Run(ctx.AstRoot)
	ctx.AddError(typer.Errors...)

	super := NewResolverSuper(global, nil)
	super.Instantiator = rp.Instantiator
	super.Run(ctx.AstRoot)
	ctx.AddError(super.Errors...)

	header := NewResolverHeader(global, nil)
	header.Instantiator = rp.Instantiator
	header.Run(ctx.AstRoot)
	ctx.AddError(header.Errors...)

	source := NewResolverSource(global, nil)
	source.Instantiator = rp.Instantiator
	source.Run(ctx.AstRoot)
	ctx.AddError(source.Errors...)

	return ctx
}
