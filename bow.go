// Package bow converts a labeled corpus of short text messages into a
// bag-of-words document-term matrix.
//
// The pipeline normalizes and tokenizes each message, drops stopwords,
// counts (document, term) frequencies, and assembles a matrix with one row
// per document and one lexicographically ordered column per vocabulary
// term, plus a corpus summary.
//
//	docs, _ := bow.LoadCorpusCSV("spam.csv")
//	stops, _ := bow.LoadStopwords("english.txt")
//	res, _ := bow.Build(docs, stops, nil)
//	res.WriteCSV(os.Stdout)
package bow

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/happyhackingspace/bow/internal/corpus"
	"github.com/happyhackingspace/bow/internal/dtm"
	"github.com/happyhackingspace/bow/internal/stopword"
)

// Document is one labeled input record with its 1-based doc id.
type Document = corpus.Document

// Stopwords is the immutable set of excluded terms, shared read-only by
// the whole pipeline run.
type Stopwords = stopword.Set

// Matrix is the assembled document-term matrix.
type Matrix = dtm.Matrix

// TermStat pairs a term with its corpus-wide total frequency.
type TermStat = dtm.TermStat

// LabelCount is one entry of the corpus label distribution.
type LabelCount struct {
	Label string
	Count int
}

// Summary describes the finished matrix and corpus for downstream
// analysis. It is derived output, not persisted state.
type Summary struct {
	Documents         int
	VocabularySize    int
	NonZeroCells      int
	Labels            []LabelCount // sorted by label
	TopTerms          []TermStat   // highest totals first, ties by term
	Singletons        int          // terms with total frequency exactly 1
	HighFrequency     int          // terms with total frequency above the threshold
	HighFreqThreshold int
	LinkMessages      int      // messages containing at least one URL
	LinkDomains       []string // distinct registrable domains, sorted
}

// Result is the output of one full pipeline run.
type Result struct {
	Docs    []Document
	Matrix  *Matrix
	Summary Summary
}

// LoadCorpusCSV reads a labeled corpus from a CSV file with Category and
// Message columns.
func LoadCorpusCSV(path string) ([]Document, error) {
	docs, err := corpus.LoadCSV(path)
	if err != nil {
		return nil, fmt.Errorf("bow: %w", err)
	}
	return docs, nil
}

// LoadCorpusHTML reads a labeled corpus from an HTML table export with
// Category and Message columns.
func LoadCorpusHTML(path string) ([]Document, error) {
	docs, err := corpus.LoadHTML(path)
	if err != nil {
		return nil, fmt.Errorf("bow: %w", err)
	}
	return docs, nil
}

// LoadStopwords reads a line-delimited stopword file. An unreadable file
// is a fatal configuration error.
func LoadStopwords(path string) (*Stopwords, error) {
	s, err := stopword.Load(path)
	if err != nil {
		return nil, fmt.Errorf("bow: %w", err)
	}
	return s, nil
}

// WriteCSV writes the matrix as a CSV table with the fixed column order
// Category, doc_id, then the vocabulary terms lexicographically. Rows are
// emitted in ascending doc id order; output is byte-identical across runs
// on identical input.
func (r *Result) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	terms := r.Matrix.Terms()
	header := make([]string, 0, len(terms)+2)
	header = append(header, corpus.ColumnCategory, "doc_id")
	header = append(header, terms...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("bow: write header: %w", err)
	}

	labels := corpus.Labels(r.Docs)
	row := make([]string, len(terms)+2)
	for id := 1; id <= r.Matrix.Rows(); id++ {
		row[0] = labels[id]
		row[1] = strconv.Itoa(id)
		for j, n := range r.Matrix.RowDense(id) {
			row[j+2] = strconv.Itoa(n)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("bow: write row %d: %w", id, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("bow: %w", err)
	}
	return nil
}
