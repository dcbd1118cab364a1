// Package pipeline runs the engine's solve path as an ordered sequence of
// stages over a shared context. pkg/api.Solve uses two stages: construct
// and run a tableau, then extract a result. Parsing happens before the
// pipeline, in the caller. Every stage runs even after an earlier one
// records an error.
package pipeline

import "github.com/bradleypallen/tableaux-go/internal/diagnostics"

// Processor is one pipeline stage: it reads/writes Context and returns the
// (possibly same) context to pass to the next stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// ProcessorFunc adapts a plain function to Processor.
type ProcessorFunc func(ctx *Context) *Context

func (f ProcessorFunc) Process(ctx *Context) *Context { return f(ctx) }

// Context carries whatever a stage produces for the next one to consume.
// In pkg/api.Solve the caller puts the root signed formulas in Payload,
// the construct stage stores the tableau.Outcome in Result, and the extract
// stage replaces it with an api.Result; SignName, Formula and Err are left
// unset there. Payload is
// an any so internal/tableau (which would otherwise import internal/pipeline
// and internal/pipeline would import internal/tableau) stays decoupled from
// this package; stages type-assert the shape they expect.
type Context struct {
	SignName string
	Formula  any // formula.Formula, for a stage that parses
	Payload  any // stage-specific working state (e.g. []signed.Formula)
	Result   any // stage-specific result (e.g. tableau.Outcome)
	Err      *diagnostics.Error
}

// Pipeline runs a fixed sequence of stages over one Context.
type Pipeline struct {
	stages []Processor
}

// New builds a Pipeline from stages, run in order by Run.
func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run executes every stage in order, even once ctx.Err is set, so later
// stages can still attach their own diagnostics.
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, stage := range p.stages {
		ctx = stage.Process(ctx)
	}
	return ctx
}
