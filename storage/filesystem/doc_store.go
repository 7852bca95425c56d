package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/revelaction/arbre/analysis"
	"github.com/revelaction/arbre/storage"
)

const docExt = ".json"

// DocStore is a directory of analyzed documents, one JSON file per
// document. Document ids follow the file name order.
type DocStore struct {
	docDir string

	// In-memory cache
	docs   []analysis.Doc
	loaded []bool
}

var _ storage.DocRepository = (*DocStore)(nil)
var _ storage.Preloader = (*DocStore)(nil)

// NewDocStore creates a filesystem document store. Only the file names are
// read.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	h := &DocStore{docDir: docDir}
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != docExt {
			continue
		}

		h.docs = append(h.docs, analysis.Doc{
			Id:    len(h.docs),
			Title: strings.TrimSuffix(file.Name(), docExt),
		})
		h.loaded = append(h.loaded, false)
	}

	return h, nil
}

// Preload reads the content of all docs into memory.
func (h *DocStore) Preload(cb func(current, total int, name string)) error {
	total := len(h.docs)
	for i := range h.docs {
		if cb != nil {
			cb(i+1, total, h.docs[i].Title)
		}

		if err := h.load(i); err != nil {
			return err
		}
	}

	return nil
}

func (h *DocStore) load(id int) error {
	if h.loaded[id] {
		return nil
	}

	doc := &h.docs[id] // pointer to modify in place
	fullDoc, err := ReadDoc(h.path(doc.Title))
	if err != nil {
		return fmt.Errorf("filesystem document %q: %w", doc.Title, err)
	}

	// Title and Id are already set
	doc.Labels = fullDoc.Labels
	doc.Sentences = fullDoc.Sentences
	h.loaded[id] = true
	return nil
}

func (h *DocStore) List(labelMatch string) ([]analysis.Doc, error) {
	docs := make([]analysis.Doc, 0, len(h.docs))
	for i := range h.docs {
		if labelMatch != "" {
			if err := h.load(i); err != nil {
				return nil, err
			}

			if !hasLabel(h.docs[i].Labels, labelMatch) {
				continue
			}
		}

		docs = append(docs, analysis.Doc{
			Id:     h.docs[i].Id,
			Title:  h.docs[i].Title,
			Labels: h.docs[i].Labels,
		})
	}

	return docs, nil
}

func (h *DocStore) Read(id int) (analysis.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return analysis.Doc{}, fmt.Errorf("%w: %d", storage.ErrNotFound, id)
	}

	if err := h.load(id); err != nil {
		return analysis.Doc{}, err
	}

	return h.docs[id], nil
}

// Write stores doc in <title>.json and returns its id, the one a reopened
// store gives it. Existing documents are not overwritten.
func (h *DocStore) Write(doc analysis.Doc) (int, error) {
	if doc.Title == "" || strings.ContainsRune(doc.Title, filepath.Separator) {
		return 0, fmt.Errorf("invalid document title %q", doc.Title)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return 0, err
	}

	f, err := os.OpenFile(h.path(doc.Title), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return 0, fmt.Errorf("IO error: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return 0, fmt.Errorf("IO error: %w", err)
	}

	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("IO error: %w", err)
	}

	// keep the file name order of NewDocStore, ids of later docs shift
	pos := sort.Search(len(h.docs), func(i int) bool {
		return h.docs[i].Title+docExt > doc.Title+docExt
	})

	h.docs = slices.Insert(h.docs, pos, doc)
	h.loaded = slices.Insert(h.loaded, pos, true)
	for i := pos; i < len(h.docs); i++ {
		h.docs[i].Id = i
	}

	return pos, nil
}

func (h *DocStore) path(title string) string {
	return filepath.Join(h.docDir, title+docExt)
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (analysis.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return analysis.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc analysis.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return analysis.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	return doc, nil
}

func hasLabel(labels []string, match string) bool {
	for _, l := range labels {
		if strings.Contains(l, match) {
			return true
		}
	}

	return false
}
