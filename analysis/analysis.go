package analysis

// Doc is a collection of analyzed sentences, as persisted by the storage
// layer.
type Doc struct {
	Id int `json:"id"`

	Title string `json:"title"`

	Labels    []string   `json:"labels,omitempty"`
	Sentences []Sentence `json:"sentences"`
}

// Library is a collection of Doc
type Library []Doc

// Sentence holds the three passes produced by the external analyzer for one
// sentence. Parse and Dep are nil when the corresponding stage did not run.
type Sentence struct {
	Words []Word   `json:"words"`
	Parse *Node    `json:"parse,omitempty"`
	Dep   *DepTree `json:"dep,omitempty"`
}

// Word represents a token of the sentence, with its selected analysis.
type Word struct {
	// The unmodified word
	Form string `json:"form"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// Part of speech tag, f.ex. NCFS000
	Tag string `json:"tag"`

	// Ranked senses, in the order given by the disambiguator.
	Senses []Sense `json:"senses,omitempty"`
}

// Sense is a word sense identifier (f.ex. a WordNet offset like 01775164-n)
// with its relevance rank.
type Sense struct {
	Id   string  `json:"id"`
	Rank float64 `json:"rank"`
}
