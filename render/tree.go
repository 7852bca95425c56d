package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/revelaction/arbre/analysis"
)

// Tree writes the constituency tree rooted at n to w.
func (r *Renderer) Tree(w io.Writer, n *analysis.Node) error {
	_, err := io.WriteString(w, r.TreeString(n))
	return err
}

func (r *Renderer) TreeString(n *analysis.Node) string {
	if n == nil {
		r.Log.Warn("missing parse tree root")
		return ""
	}

	var b strings.Builder
	r.tree(&b, n, 0)
	return b.String()
}

// tree renders a leaf as a single line. Internal nodes open a "label_[" line,
// render the children in the given order one level deeper and close with
// "]" at their own depth.
func (r *Renderer) tree(b *strings.Builder, n *analysis.Node, depth int) {
	indent(b, depth)
	if n.Head {
		b.WriteString(r.head())
	}

	if n.IsLeaf() {
		b.WriteString(r.word(*n.Word))
		b.WriteString("\n")
		return
	}

	b.WriteString(r.label(n.Label))
	if n.Coref != nil {
		b.WriteString(coref(*n.Coref))
	}
	b.WriteString("_[\n")

	for _, child := range present(n.Children, r.absent("constituency", depth+1)) {
		r.tree(b, child, depth+1)
	}

	indent(b, depth)
	b.WriteString("]\n")
}

func coref(group int) string {
	return "(REF:" + strconv.Itoa(group) + ")"
}
