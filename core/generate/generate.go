// Package generate is the caller-facing entry point of souschef: it turns
// narration text into a structured recipe record by building a generation
// prompt, driving a remote job to completion through core/jobs, and
// recovering a record from the output through core/recipe.
//
// Generation never leaves the caller without a record: on any driver
// failure the minimal fallback record built from the original input text is
// returned alongside the failure, so a UI can always display something.
package generate

import (
	"context"
	"log/slog"

	"souschef/core/recipe"
	"souschef/providers/runner"
	"souschef/providers/source"
)

// Driver drives one submitted job to completion. It is satisfied by
// *jobs.Driver.
type Driver interface {
	SubmitAndAwait(ctx context.Context, req runner.JobRequest) (string, error)
}

// Option configures a [Generator].
type Option func(*Generator)

// WithModel sets the model identifier forwarded to the runner.
func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

// WithGenerationConfig sets sampling parameters forwarded to the runner
// unmodified.
func WithGenerationConfig(config *runner.GenerationConfig) Option {
	return func(g *Generator) {
		g.config = config
	}
}

// Generator produces recipe records from narration text. It is stateless
// between invocations and safe to reuse across requests.
type Generator struct {
	driver Driver
	model  string
	config *runner.GenerationConfig
}

// New creates a Generator on top of the given job driver.
func New(driver Driver, opts ...Option) *Generator {
	g := &Generator{driver: driver}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FromText generates a recipe record from already-transcribed narration
// text. The returned record is always valid and displayable; the error, when
// non-nil, reports why generation degraded to the fallback record.
func (g *Generator) FromText(ctx context.Context, text string) (recipe.Record, error) {
	output, err := g.driver.SubmitAndAwait(ctx, runner.JobRequest{
		Model:            g.model,
		Prompt:           buildPrompt(text),
		SystemPrompt:     systemPrompt,
		GenerationConfig: g.config,
	})
	if err != nil {
		slog.Warn("generation job unusable, building fallback record", "error", err.Error())
		return recipe.Fallback(text), err
	}
	return recipe.Extract([]string{output}), nil
}

// FromSource resolves the transcript from src first, then generates as
// [Generator.FromText]. A source failure also degrades to a fallback
// record so the caller still receives a displayable result.
func (g *Generator) FromSource(ctx context.Context, src source.Source) (recipe.Record, error) {
	text, err := src.Transcript(ctx)
	if err != nil {
		slog.Warn("transcript source failed, building fallback record", "error", err.Error())
		return recipe.Fallback(""), err
	}
	return g.FromText(ctx, text)
}
