package render

import (
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/revelaction/arbre/analysis"
)

// unknownLink is shown in place of a link label that can not be resolved
const unknownLink = "?"

// DepTree writes the dependency tree t to w.
func (r *Renderer) DepTree(w io.Writer, t *analysis.DepTree) error {
	_, err := io.WriteString(w, r.DepTreeString(t))
	return err
}

func (r *Renderer) DepTreeString(t *analysis.DepTree) string {
	if t == nil || t.Root == nil {
		r.Log.Warn("missing dependency tree root")
		return ""
	}

	var b strings.Builder
	r.depNode(&b, t, t.Root, 0)
	return b.String()
}

// depNode renders n as "link/label/(form lemma tag)", with the coreference
// group after the link when it has one. Children are rendered
// inside a bracket: first the linked ones in their given order, then the
// chunks in sentence order.
func (r *Renderer) depNode(b *strings.Builder, t *analysis.DepTree, n *analysis.DepNode, depth int) {
	indent(b, depth)

	link, ok := t.LinkLabel(n)
	if !ok {
		r.Log.Warn("dangling link reference",
			zap.Int("link", n.Link),
			zap.Int("links", len(t.Links)),
			zap.Int("depth", depth))
		link = unknownLink
	}

	b.WriteString(r.label(link))
	if group, ok := t.LinkCoref(n); ok {
		b.WriteString(coref(group))
	}
	b.WriteString("/" + n.Label + "/" + r.word(n.Word))

	children := present(n.Children, r.absent("dependency", depth+1))
	if len(children) > 0 {
		b.WriteString(" [\n")
		for _, child := range ordered(children) {
			r.depNode(b, t, child, depth+1)
		}

		indent(b, depth)
		b.WriteString("]")
	}

	b.WriteString("\n")
}

// ordered returns the linked (non chunk) children in their original order
// followed by the chunk children sorted by ChunkOrd. Chunks sharing a
// ChunkOrd keep their original relative order.
func ordered(children []*analysis.DepNode) []*analysis.DepNode {
	linked := make([]*analysis.DepNode, 0, len(children))
	chunks := []*analysis.DepNode{}
	for _, c := range children {
		if c.Chunk {
			chunks = append(chunks, c)
			continue
		}

		linked = append(linked, c)
	}

	sort.SliceStable(chunks, func(i, j int) bool {
		return chunks[i].ChunkOrd < chunks[j].ChunkOrd
	})

	return append(linked, chunks...)
}
