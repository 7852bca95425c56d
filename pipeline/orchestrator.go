package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/revelaction/arbre/analysis"
	"github.com/revelaction/arbre/render"
)

// Orchestrator drives the analyzer line by line and prints the results of
// every configured stage.
type Orchestrator struct {
	Analyzer Analyzer
	Renderer *render.Renderer

	// Stages printed for every line, in this order
	Stages []render.Stage

	Out io.Writer
	Log *zap.Logger

	// Collect, if not nil, receives the sentences of every analyzed line.
	Collect func([]analysis.Sentence)
}

// NewOrchestrator returns an Orchestrator printing all stages to out.
func NewOrchestrator(a Analyzer, r *render.Renderer, out io.Writer) *Orchestrator {
	return &Orchestrator{
		Analyzer: a,
		Renderer: r,
		Stages:   render.Stages(),
		Out:      out,
		Log:      zap.NewNop(),
	}
}

// Run processes the lines of the scanner until end of input. Errors the
// analyzer reports for a single line are logged and the line is skipped.
func (o *Orchestrator) Run(ctx context.Context, lines *bufio.Scanner) error {
	for lines.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := o.Line(ctx, lines.Text())
		if err == nil {
			continue
		}

		var aerr *AnalyzerError
		if errors.As(err, &aerr) {
			o.Log.Warn("line skipped", zap.String("line", aerr.Line), zap.String("error", aerr.Msg))
			continue
		}

		return err
	}

	if err := lines.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return nil
}

// Line analyzes one line and prints its sections.
func (o *Orchestrator) Line(ctx context.Context, line string) error {
	sentences, err := o.Analyzer.Analyze(ctx, line)
	if err != nil {
		return err
	}

	if o.Collect != nil {
		o.Collect(sentences)
	}

	for _, stage := range o.Stages {
		if err := o.Renderer.Results(o.Out, sentences, stage); err != nil {
			return fmt.Errorf("render %s results: %w", stage, err)
		}
	}

	return nil
}
