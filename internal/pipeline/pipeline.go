// Package pipeline wires the parse and analysis stages together behind a
// small Processor interface, the same shape the CLI, the lint service, and
// the embeddable library all drive a single source file through.
package pipeline

import (
	"github.com/methodray/methodray/internal/analyzer"
	"github.com/methodray/methodray/internal/ast"
	"github.com/methodray/methodray/internal/diagnostics"
)

// PipelineContext threads one compilation unit through a Pipeline's stages.
// Each Processor reads what earlier stages produced and fills in its own
// field. Every stage always runs; ParseStage records no diagnostics of its
// own (the parser recovers from bad input), so TypeErrors is the only
// diagnostic output.
type PipelineContext struct {
	File   string
	Source string

	Program *ast.Program

	Driver     *analyzer.Driver
	TypeErrors []*diagnostics.TypeError
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline running processors in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// No stage halts the pipeline; each one runs in order.
	}
	return ctx
}
