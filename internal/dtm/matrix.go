package dtm

import (
	"fmt"
	"sort"
)

// sparseRow stores the nonzero cells of one matrix row as parallel
// index/count slices, indices ascending.
type sparseRow struct {
	indices []int
	counts  []int
}

// Matrix is a document-term matrix: one row per doc id (1..N, no gaps),
// one column per vocabulary term (lexicographic). Stored sparse; vocabulary
// size is typically much larger than tokens per document.
type Matrix struct {
	terms     []string
	termIndex map[string]int
	rows      []sparseRow
}

// Assemble builds the matrix from the full sparse count table and the full
// corpus doc id set. Doc ids must be unique and contiguous starting at 1;
// anything else is an assembler invariant violation, not a recoverable
// condition. Documents without any count entry get an all-zero row.
func Assemble(docIDs []int, entries []CountEntry) (*Matrix, error) {
	n := len(docIDs)
	seen := make([]bool, n+1)
	for _, id := range docIDs {
		if id < 1 || id > n {
			return nil, fmt.Errorf("doc id %d out of range 1..%d", id, n)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate doc id %d", id)
		}
		seen[id] = true
	}

	// Pass over the entries fixes the vocabulary; it is complete only
	// because counting finished for every document.
	termSet := make(map[string]struct{})
	for _, e := range entries {
		if e.DocID < 1 || e.DocID > n {
			return nil, fmt.Errorf("count entry for unknown doc id %d", e.DocID)
		}
		if e.Count < 1 {
			return nil, fmt.Errorf("non-positive count %d for doc %d term %q", e.Count, e.DocID, e.Term)
		}
		termSet[e.Term] = struct{}{}
	}

	terms := make([]string, 0, len(termSet))
	for t := range termSet {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	termIndex := make(map[string]int, len(terms))
	for i, t := range terms {
		termIndex[t] = i
	}

	rows := make([]sparseRow, n)
	for _, e := range entries {
		row := &rows[e.DocID-1]
		row.indices = append(row.indices, termIndex[e.Term])
		row.counts = append(row.counts, e.Count)
	}
	for i := range rows {
		row := rows[i]
		sort.Sort(byIndex{row.indices, row.counts})
	}

	return &Matrix{terms: terms, termIndex: termIndex, rows: rows}, nil
}

type byIndex struct {
	indices []int
	counts  []int
}

func (s byIndex) Len() int           { return len(s.indices) }
func (s byIndex) Less(i, j int) bool { return s.indices[i] < s.indices[j] }
func (s byIndex) Swap(i, j int) {
	s.indices[i], s.indices[j] = s.indices[j], s.indices[i]
	s.counts[i], s.counts[j] = s.counts[j], s.counts[i]
}

// Rows returns the number of documents.
func (m *Matrix) Rows() int {
	return len(m.rows)
}

// Cols returns the vocabulary size.
func (m *Matrix) Cols() int {
	return len(m.terms)
}

// Terms returns the vocabulary in column order (lexicographic).
func (m *Matrix) Terms() []string {
	return m.terms
}

// At returns the frequency of term in the given document, 0 when the cell
// is absent or the term is not in the vocabulary.
func (m *Matrix) At(docID int, term string) int {
	j, ok := m.termIndex[term]
	if !ok || docID < 1 || docID > len(m.rows) {
		return 0
	}
	row := m.rows[docID-1]
	for i, idx := range row.indices {
		if idx == j {
			return row.counts[i]
		}
	}
	return 0
}

// RowDense materializes one row as a dense count slice in column order.
func (m *Matrix) RowDense(docID int) []int {
	dense := make([]int, len(m.terms))
	if docID < 1 || docID > len(m.rows) {
		return dense
	}
	row := m.rows[docID-1]
	for i, idx := range row.indices {
		dense[idx] = row.counts[i]
	}
	return dense
}

// RowSum returns the total token count of one document's row.
func (m *Matrix) RowSum(docID int) int {
	if docID < 1 || docID > len(m.rows) {
		return 0
	}
	sum := 0
	for _, n := range m.rows[docID-1].counts {
		sum += n
	}
	return sum
}

// Nnz returns the number of nonzero cells in the whole matrix.
func (m *Matrix) Nnz() int {
	nnz := 0
	for _, row := range m.rows {
		nnz += len(row.indices)
	}
	return nnz
}

// ColumnTotals returns per-term total frequencies aligned with Terms().
func (m *Matrix) ColumnTotals() []int {
	totals := make([]int, len(m.terms))
	for _, row := range m.rows {
		for i, idx := range row.indices {
			totals[idx] += row.counts[i]
		}
	}
	return totals
}
