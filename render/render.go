package render

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/revelaction/arbre/analysis"
)

const (
	// indentUnit is written once per depth level
	indentUnit = "  "

	headMarker = "+"
)

var (
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	Off       = "\033[0m"
)

// Renderer prints analyzed sentences as indented, bracketed text.
//
// Structural problems found in the trees (absent children, dangling link
// references, missing trees) are reported to Log and skipped; rendering
// never aborts because of them.
type Renderer struct {
	HasColor bool

	// Senses determines how the sense list of a word is shown
	Senses SenseMode

	Log *zap.Logger
}

func NewRenderer() *Renderer {
	return &Renderer{Senses: SensesAll, Log: zap.NewNop()}
}

// Results writes the banner of stage followed by the rendering of every
// sentence for that stage.
func (r *Renderer) Results(w io.Writer, sentences []analysis.Sentence, stage Stage) error {
	if stage < Tagged || stage > Dependency {
		return fmt.Errorf("unknown stage: %s", stage)
	}

	var b strings.Builder
	b.WriteString(stage.Banner())
	b.WriteString("\n")

	for i, s := range sentences {
		switch stage {
		case Tagged:
			for _, word := range s.Words {
				b.WriteString(r.taggedLine(word))
				b.WriteString("\n")
			}

		case Parsed:
			if s.Parse == nil {
				r.Log.Warn("missing parse tree", zap.Int("sentence", i))
				continue
			}
			r.tree(&b, s.Parse, 0)

		case Dependency:
			if s.Dep == nil || s.Dep.Root == nil {
				r.Log.Warn("missing dependency tree", zap.Int("sentence", i))
				continue
			}
			r.depNode(&b, s.Dep, s.Dep.Root, 0)
		}

		// sentence separator
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// taggedLine renders a word as "form lemma tag" followed by its senses.
func (r *Renderer) taggedLine(w analysis.Word) string {
	line := w.Form + " " + w.Lemma + " " + w.Tag
	s := r.senses(w)
	if s == "" {
		return line
	}

	if r.HasColor {
		s = Grey256 + s + Off
	}

	return line + " " + s
}

// word renders the parenthesized triple of w, with the sense annotation
// inside the parenthesis.
func (r *Renderer) word(w analysis.Word) string {
	return "(" + r.taggedLine(w) + ")"
}

func (r *Renderer) head() string {
	if !r.HasColor {
		return headMarker
	}

	return Green256 + headMarker + Off
}

func (r *Renderer) label(l string) string {
	if !r.HasColor {
		return l
	}

	return Yellow256 + l + Off
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat(indentUnit, depth))
}

// present returns the delivered children, calling absent with the index of
// every nil entry.
func present[T any](children []*T, absent func(index int)) []*T {
	delivered := make([]*T, 0, len(children))
	for i, c := range children {
		if c == nil {
			absent(i)
			continue
		}

		delivered = append(delivered, c)
	}

	return delivered
}

func (r *Renderer) absent(tree string, depth int) func(int) {
	return func(index int) {
		r.Log.Warn("unexpected absent child",
			zap.String("tree", tree),
			zap.Int("depth", depth),
			zap.Int("index", index))
	}
}
