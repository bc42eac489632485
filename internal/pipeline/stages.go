package pipeline

import (
	"github.com/methodray/methodray/internal/analyzer"
	"github.com/methodray/methodray/internal/parser"
)

// ParseStage turns ctx.Source into ctx.Program using the recursive-descent
// parser. A syntax error recovers to best-effort statements rather than
// halting the pipeline (the parser always returns a usable, if partial,
// Program — see internal/parser's fallback productions).
type ParseStage struct{}

func (ParseStage) Process(ctx *PipelineContext) *PipelineContext {
	ctx.Program = parser.New(ctx.File, ctx.Source).ParseProgram(ctx.File)
	return ctx
}

// AnalyzeStage installs ctx.Program into a shared Driver and drives it to
// quiescence, copying out the TypeErrors produced. The Driver is supplied
// by the caller rather than created here so multiple files can share one
// registry and scope manager across a single AnalyzeStage's lifetime (the
// CLI's multi-file invocation and the lint service's per-request Driver
// both build on this).
type AnalyzeStage struct {
	Driver *analyzer.Driver
}

func (s AnalyzeStage) Process(ctx *PipelineContext) *PipelineContext {
	ctx.Driver = s.Driver
	if ctx.Program != nil {
		s.Driver.Install(ctx.Program)
	}
	s.Driver.Finish()
	ctx.TypeErrors = s.Driver.TypeErrors()
	return ctx
}
