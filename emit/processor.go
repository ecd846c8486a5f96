package emit

import "github.com/fernvibe/fernc/pipeline"

// Processor wires the emitter into the pipeline as its final stage,
// in the same shape as parser.Processor and resolve.Processor. It only
// runs when the earlier stages left no errors, so no partial output
// files are ever written -- the emitter runs only after every pass
// completes.
type Processor struct {
	Emitter *Emitter
}

func NewProcessor(e *Emitter) *Processor { return &Processor{Emitter: e} }

func (ep *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.HasErrors() || ctx.AstRoot == nil {
		return ctx
	}
	em := ep.Emitter
	if em == nil {
		em = New(ctx.Config)
	}
	for name, content := range em.EmitProgram(ctx.AstRoot) {
		ctx.Emitted[name] = content
	}
	return ctx
}
