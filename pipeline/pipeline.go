// Package pipeline wires the compiler's stages -- parse, the four
// resolver passes, generic instantiation, fiber lowering, emission --
// into one ordered Run.
package pipeline

// Processor is one stage of the compilation pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline runs a fixed sequence of Processors over one PipelineContext.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order. Stages continue to run even after
// earlier stages record errors, so a single pass over the pipeline
// collects the fullest possible diagnostic set -- useful for tooling
// that wants both parse and semantic errors from one request.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}
