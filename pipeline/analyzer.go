package pipeline

import (
	"context"
	"fmt"

	"github.com/revelaction/arbre/analysis"
)

// Analyzer runs the analysis stages over one line of input text, producing
// its sentences.
type Analyzer interface {
	Analyze(ctx context.Context, line string) ([]analysis.Sentence, error)
}

// AnalyzerFunc adapts a function to the Analyzer interface.
type AnalyzerFunc func(ctx context.Context, line string) ([]analysis.Sentence, error)

func (f AnalyzerFunc) Analyze(ctx context.Context, line string) ([]analysis.Sentence, error) {
	return f(ctx, line)
}

// AnalyzerError is an error reported by the analyzer for a single line. The
// analyzer is still usable afterwards.
type AnalyzerError struct {
	Line string
	Msg  string
}

func (e *AnalyzerError) Error() string {
	return fmt.Sprintf("analyzer: %s (line %q)", e.Msg, e.Line)
}
