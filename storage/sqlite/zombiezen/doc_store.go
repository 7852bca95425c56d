package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/arbre/analysis"
	"github.com/revelaction/arbre/storage"
)

const labelSeparator = ","

// DocStore keeps analyzed documents in SQLite. Every sentence is stored as a
// JSON row, in document order.
type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List(labelMatch string) ([]analysis.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	docs := []analysis.Doc{}

	// no label contains the separator
	if strings.Contains(labelMatch, labelSeparator) {
		return docs, nil
	}

	query := "SELECT id, title, labels FROM docs ORDER BY id"
	args := []interface{}{}
	if labelMatch != "" {
		query = "SELECT id, title, labels FROM docs WHERE instr(labels, ?) > 0 ORDER BY id"
		args = append(args, labelMatch)
	}

	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			docs = append(docs, analysis.Doc{
				Id:     stmt.ColumnInt(0),
				Title:  stmt.ColumnText(1),
				Labels: splitLabels(stmt.ColumnText(2)),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func (h *DocStore) Read(id int) (analysis.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return analysis.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := analysis.Doc{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT title, labels FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Title = stmt.ColumnText(0)
			doc.Labels = splitLabels(stmt.ColumnText(1))
			return nil
		},
	})
	if err != nil {
		return analysis.Doc{}, err
	}

	if !found {
		return analysis.Doc{}, fmt.Errorf("%w: %d", storage.ErrNotFound, id)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE doc_id = ? ORDER BY rowid", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var s analysis.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &s); err != nil {
				return fmt.Errorf("JSON decoding error: %w", err)
			}
			doc.Sentences = append(doc.Sentences, s)
			return nil
		},
	})
	if err != nil {
		return analysis.Doc{}, err
	}

	return doc, nil
}

// Write inserts doc and its sentences in a single transaction. Labels are
// stored joined by labelSeparator, so they can not contain it.
func (h *DocStore) Write(doc analysis.Doc) (id int, err error) {
	for _, l := range doc.Labels {
		if l == "" || strings.Contains(l, labelSeparator) {
			return 0, fmt.Errorf("invalid label %q", l)
		}
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO docs (title, labels) VALUES (?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Title, strings.Join(doc.Labels, labelSeparator)},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert doc: %w", err)
	}
	docID := conn.LastInsertRowID()

	for _, sentence := range doc.Sentences {
		data, marshalErr := json.Marshal(sentence)
		if marshalErr != nil {
			return 0, marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, data) VALUES (?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docID, string(data)},
		})
		if err != nil {
			return 0, fmt.Errorf("failed to insert sentence: %w", err)
		}
	}

	return int(docID), nil
}

func splitLabels(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, labelSeparator)
}
