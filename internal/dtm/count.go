// Package dtm builds document-term matrices from filtered token streams.
//
// The build is two-pass: Counter aggregates sparse (doc, term) counts while
// the corpus is scanned, and Assemble fixes the row/column ordering only
// after the whole corpus has been counted, because the vocabulary cannot be
// known per document.
package dtm

import "sort"

// Token is a single surviving word occurrence tagged with its owning
// document. Ephemeral: produced by tokenization, consumed by counting.
type Token struct {
	DocID int
	Term  string
}

// CountEntry is one nonzero cell of the sparse count table. Zero-count
// pairs are never materialized.
type CountEntry struct {
	DocID int
	Term  string
	Count int
}

type pairKey struct {
	doc  int
	term string
}

// Counter groups tokens by (doc id, term). Emission order of the input is
// irrelevant; duplicates are consolidated, never dropped.
type Counter struct {
	counts map[pairKey]int
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[pairKey]int)}
}

// Add records one token occurrence.
func (c *Counter) Add(t Token) {
	c.counts[pairKey{t.DocID, t.Term}]++
}

// AddCounts merges a per-document term count map, as produced by a map-phase
// worker, into the corpus-wide table.
func (c *Counter) AddCounts(docID int, counts map[string]int) {
	for term, n := range counts {
		c.counts[pairKey{docID, term}] += n
	}
}

// Entries returns the sparse count table sorted by doc id then term, so
// downstream output is deterministic regardless of map iteration order.
func (c *Counter) Entries() []CountEntry {
	entries := make([]CountEntry, 0, len(c.counts))
	for k, n := range c.counts {
		entries = append(entries, CountEntry{DocID: k.doc, Term: k.term, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].DocID != entries[j].DocID {
			return entries[i].DocID < entries[j].DocID
		}
		return entries[i].Term < entries[j].Term
	})
	return entries
}

// Len returns the number of distinct (doc id, term) pairs.
func (c *Counter) Len() int {
	return len(c.counts)
}
