package stat

import (
	"github.com/revelaction/arbre/analysis"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences         int
	NumWords             int
	WordsPerSentenceMean int

	// Distribution of sentence length in words
	WordsPerSentenceDis map[int]int

	// Dependency nodes heading a chunk
	NumChunks int

	// Deepest constituency tree, root at depth 0
	MaxParseDepth int

	// Sentences lacking a parse or dependency tree
	NumMissingParse int
	NumMissingDep   int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{WordsPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the sentences of doc to the statistics.
func (h *Handler) Aggregate(doc analysis.Doc) {
	h.stats.NumSentences += len(doc.Sentences)

	for _, sentence := range doc.Sentences {
		h.stats.NumWords += len(sentence.Words)
		h.stats.WordsPerSentenceDis[len(sentence.Words)]++

		if sentence.Parse == nil {
			h.stats.NumMissingParse++
		} else if d := parseDepth(sentence.Parse); d > h.stats.MaxParseDepth {
			h.stats.MaxParseDepth = d
		}

		if sentence.Dep == nil || sentence.Dep.Root == nil {
			h.stats.NumMissingDep++
		} else {
			h.stats.NumChunks += countChunks(sentence.Dep.Root)
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.WordsPerSentenceMean = h.stats.NumWords / h.stats.NumSentences
	}
}

func parseDepth(n *analysis.Node) int {
	depth := 0
	for _, child := range n.Children {
		if child == nil {
			continue
		}

		if d := parseDepth(child) + 1; d > depth {
			depth = d
		}
	}

	return depth
}

func countChunks(n *analysis.DepNode) int {
	count := 0
	for _, child := range n.Children {
		if child == nil {
			continue
		}

		if child.Chunk {
			count++
		}
		count += countChunks(child)
	}

	return count
}
