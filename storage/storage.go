package storage

import (
	"errors"

	"github.com/revelaction/arbre/analysis"
)

// ErrNotFound is returned when a document id is not in the repository.
var ErrNotFound = errors.New("doc not found")

// DocReader defines read operations for analyzed document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// If labelMatch is not empty, only documents with at least one label containing the string are returned.
	// Content (Sentences) is not loaded.
	List(labelMatch string) ([]analysis.Doc, error)

	// Read returns a document by ID
	Read(id int) (analysis.Doc, error)
}

// DocWriter defines write operations for analyzed document storage
type DocWriter interface {
	// Write persists a document and its sentences, returning its ID
	Write(doc analysis.Doc) (int, error)
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// Preloader defines an optional capability for repositories that support
// eager loading of their documents into memory.
type Preloader interface {
	Preload(cb func(current, total int, name string)) error
}
