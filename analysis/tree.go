package analysis

// Node is a node of a constituency (chunk) parse tree.
//
// A node with a Word is a leaf. Otherwise it is an internal node with a
// Label and owned Children. A nil entry in Children marks a child the
// producer declared but did not deliver.
type Node struct {
	Label    string  `json:"label,omitempty"`
	Head     bool    `json:"head,omitempty"`
	Word     *Word   `json:"word,omitempty"`
	Children []*Node `json:"children,omitempty"`

	// Coreference group of the node, if resolved.
	Coref *int `json:"coref,omitempty"`
}

func (n *Node) IsLeaf() bool {
	return n.Word != nil
}

// DepTree is a dependency tree. Links is the table of governor link labels
// referenced by DepNode.Link.
type DepTree struct {
	Root  *DepNode `json:"root"`
	Links []string `json:"links"`

	// Corefs maps a Links index to the coreference group of that governor
	// link, for the resolved ones.
	Corefs map[int]int `json:"corefs,omitempty"`
}

// LinkLabel returns the link label referenced by node n. ok is false when the
// reference is out of the table range.
func (t *DepTree) LinkLabel(n *DepNode) (label string, ok bool) {
	if n.Link < 0 || n.Link >= len(t.Links) {
		return "", false
	}

	return t.Links[n.Link], true
}

// LinkCoref returns the coreference group of the link referenced by node n.
func (t *DepTree) LinkCoref(n *DepNode) (group int, ok bool) {
	group, ok = t.Corefs[n.Link]
	return group, ok
}

// DepNode is a governing word and its dependents.
type DepNode struct {
	Word Word `json:"word"`

	// Label of the dependency relation towards the governor
	Label string `json:"label"`

	// Index into DepTree.Links. Display only.
	Link int `json:"link"`

	// Chunk is true if the node heads a syntactic chunk. ChunkOrd is the
	// position of the chunk in the sentence, only meaningful for chunks.
	Chunk    bool `json:"chunk,omitempty"`
	ChunkOrd int  `json:"chunk_ord,omitempty"`

	Children []*DepNode `json:"children,omitempty"`
}
