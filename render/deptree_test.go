package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/arbre/analysis"
)

// depLinks is the link table shared by the trees built in these tests.
var depLinks = []string{"grup-verb", "sn", "sp", "F-term"}

func dep(form, label string, link int, children ...*analysis.DepNode) *analysis.DepNode {
	return &analysis.DepNode{
		Word:     analysis.Word{Form: form, Lemma: strings.ToLower(form), Tag: "X"},
		Label:    label,
		Link:     link,
		Children: children,
	}
}

func chunk(form, label string, link, ord int, children ...*analysis.DepNode) *analysis.DepNode {
	n := dep(form, label, link, children...)
	n.Chunk = true
	n.ChunkOrd = ord
	return n
}

func depTree(root *analysis.DepNode) *analysis.DepTree {
	return &analysis.DepTree{Root: root, Links: depLinks}
}

// childForms returns the forms of the lines at depth 1, in output order.
func childForms(out string) []string {
	forms := []string{}
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, indentUnit) || strings.HasPrefix(line, indentUnit+indentUnit) {
			continue
		}

		open := strings.Index(line, "(")
		forms = append(forms, strings.Fields(line[open+1:])[0])
	}

	return forms
}

func TestDepTreeLinkedFirstThenChunksInOrder(t *testing.T) {
	root := dep("come", "top", 0,
		dep("A", "mod", 1),
		chunk("B", "dobj", 1, 2),
		chunk("C", "subj", 1, 1),
	)

	want := "grup-verb/top/(come come X) [\n" +
		"  sn/mod/(A a X)\n" +
		"  sn/subj/(C c X)\n" +
		"  sn/dobj/(B b X)\n" +
		"]\n"
	assert.Equal(t, want, NewRenderer().DepTreeString(depTree(root)))
}

func TestDepTreeNoChildrenHasNoBracket(t *testing.T) {
	out := NewRenderer().DepTreeString(depTree(dep("llueve", "top", 0)))

	assert.Equal(t, "grup-verb/top/(llueve llueve X)\n", out)
	assert.NotContains(t, out, "[")
	assert.NotContains(t, out, "]")
}

func TestDepTreeNestedIndentation(t *testing.T) {
	root := dep("come", "top", 0,
		chunk("gato", "subj", 1, 1,
			dep("El", "espec", 1),
		),
		chunk(".", "term", 3, 3),
	)

	want := "grup-verb/top/(come come X) [\n" +
		"  sn/subj/(gato gato X) [\n" +
		"    sn/espec/(El el X)\n" +
		"  ]\n" +
		"  F-term/term/(. . X)\n" +
		"]\n"
	assert.Equal(t, want, NewRenderer().DepTreeString(depTree(root)))
}

func TestDepTreeLinkedChildrenKeepRelativeOrder(t *testing.T) {
	root := dep("dice", "top", 0,
		chunk("c9", "x", 1, 9),
		dep("l1", "x", 1),
		chunk("c2", "x", 1, 2),
		dep("l2", "x", 1),
		dep("l3", "x", 1),
		chunk("c5", "x", 1, 5),
	)

	forms := childForms(NewRenderer().DepTreeString(depTree(root)))
	assert.Equal(t, []string{"l1", "l2", "l3", "c2", "c5", "c9"}, forms)
}

func TestDepTreeChunksAscendingWithGaps(t *testing.T) {
	root := dep("v", "top", 0,
		chunk("c40", "x", 1, 40),
		chunk("c0", "x", 1, 0),
		chunk("c7", "x", 1, 7),
		chunk("c13", "x", 1, 13),
	)

	forms := childForms(NewRenderer().DepTreeString(depTree(root)))
	assert.Equal(t, []string{"c0", "c7", "c13", "c40"}, forms)
}

func TestDepTreeDuplicateChunkOrdKeepsFirstAppearance(t *testing.T) {
	root := dep("v", "top", 0,
		chunk("first", "x", 1, 2),
		chunk("zero", "x", 1, 0),
		chunk("second", "x", 1, 2),
		chunk("third", "x", 1, 2),
	)

	forms := childForms(NewRenderer().DepTreeString(depTree(root)))
	assert.Equal(t, []string{"zero", "first", "second", "third"}, forms)
}

func TestDepTreeDanglingLinkIsReported(t *testing.T) {
	r, logs := newObservedRenderer()

	out := r.DepTreeString(depTree(dep("v", "top", 0, dep("w", "x", 42))))

	assert.Contains(t, out, "  ?/x/(w w X)\n")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "dangling link reference", logs.All()[0].Message)
}

func TestDepTreeAbsentChildIsReportedAndSkipped(t *testing.T) {
	root := dep("v", "top", 0,
		chunk("b", "x", 1, 2),
		nil,
		chunk("a", "x", 1, 1),
	)

	r, logs := newObservedRenderer()
	forms := childForms(r.DepTreeString(depTree(root)))

	assert.Equal(t, []string{"a", "b"}, forms)
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "dependency", fields["tree"])
	assert.EqualValues(t, 1, fields["index"])
}

func TestDepTreeOnlyAbsentChildrenHasNoBracket(t *testing.T) {
	r, logs := newObservedRenderer()
	out := r.DepTreeString(depTree(dep("v", "top", 0, nil, nil)))

	assert.Equal(t, "grup-verb/top/(v v X)\n", out)
	assert.Equal(t, 2, logs.Len())
}

func TestDepTreeMissingRoot(t *testing.T) {
	r, logs := newObservedRenderer()

	assert.Empty(t, r.DepTreeString(nil))
	assert.Empty(t, r.DepTreeString(&analysis.DepTree{Links: depLinks}))
	assert.Equal(t, 2, logs.Len())
}

func TestOrderedDoesNotLoseChunks(t *testing.T) {
	children := []*analysis.DepNode{
		chunk("c3", "x", 1, 3),
		dep("l", "x", 1),
		chunk("c1", "x", 1, 1),
		chunk("c2", "x", 1, 2),
	}

	got := ordered(children)
	require.Len(t, got, len(children))
	assert.Same(t, children[1], got[0])
	assert.Same(t, children[2], got[1])
	assert.Same(t, children[3], got[2])
	assert.Same(t, children[0], got[3])
}

func TestDepTreeWriter(t *testing.T) {
	var b strings.Builder
	require.NoError(t, NewRenderer().DepTree(&b, depTree(dep("v", "top", 0))))
	assert.Equal(t, "grup-verb/top/(v v X)\n", b.String())
}

func TestDepTreeLinkCoref(t *testing.T) {
	tree := depTree(dep("come", "top", 0,
		dep("gato", "subj", 1),
		dep("pez", "dobj", 1),
	))
	tree.Links = []string{"grup-verb", "sn", "sn"}
	tree.Root.Children[1].Link = 2
	tree.Corefs = map[int]int{2: 4}

	want := "grup-verb/top/(come come X) [\n" +
		"  sn/subj/(gato gato X)\n" +
		"  sn(REF:4)/dobj/(pez pez X)\n" +
		"]\n"
	assert.Equal(t, want, NewRenderer().DepTreeString(tree))
}
