package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/arbre/analysis"
)

// JSONRenderer writes analyzed sentences as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the sentences as a JSON array, one array per call.
func (r *JSONRenderer) Render(sentences []analysis.Sentence) error {
	if sentences == nil {
		sentences = []analysis.Sentence{}
	}

	return json.NewEncoder(r.W).Encode(sentences)
}
