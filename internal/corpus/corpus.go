// Package corpus loads labeled message corpora into typed records.
//
// A corpus is an ordered sequence of (Category, Message) records; doc ids
// are assigned by 1-based input position and never reused.
package corpus

import "fmt"

// Column names required in every input source.
const (
	ColumnCategory = "Category"
	ColumnMessage  = "Message"
)

// Document is one labeled input record. Immutable after creation.
type Document struct {
	ID    int    // 1-based position in the input sequence
	Text  string // raw message text, as read
	Label string // category label
}

// IDs returns the doc ids of the given documents in input order.
func IDs(docs []Document) []int {
	ids := make([]int, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids
}

// Labels returns the doc id to label table, 1:1 with the documents and
// joinable with matrix rows by doc id.
func Labels(docs []Document) map[int]string {
	labels := make(map[int]string, len(docs))
	for _, d := range docs {
		labels[d.ID] = d.Label
	}
	return labels
}

// assign wraps raw records into Documents with positional ids.
func assign(records []record) []Document {
	docs := make([]Document, len(records))
	for i, r := range records {
		docs[i] = Document{ID: i + 1, Text: r.message, Label: r.category}
	}
	return docs
}

type record struct {
	category string
	message  string
}

// headerIndices locates the required columns in a header row. Matching is
// case-insensitive; extra columns are ignored. Missing columns are a
// configuration error.
func headerIndices(header []string) (catIdx, msgIdx int, err error) {
	catIdx, msgIdx = -1, -1
	for i, name := range header {
		switch {
		case equalFold(name, ColumnCategory):
			catIdx = i
		case equalFold(name, ColumnMessage):
			msgIdx = i
		}
	}
	if catIdx < 0 {
		return 0, 0, fmt.Errorf("missing required column %q", ColumnCategory)
	}
	if msgIdx < 0 {
		return 0, 0, fmt.Errorf("missing required column %q", ColumnMessage)
	}
	return catIdx, msgIdx, nil
}
