// Package stopword loads and queries the immutable stopword set shared by
// the whole corpus pass.
package stopword

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/happyhackingspace/bow/internal/textutil"
)

// Set is an immutable set of case-folded stopword terms. It is loaded once
// before the pipeline runs and is safe for concurrent reads.
type Set struct {
	terms map[string]struct{}
}

// Load reads a line-delimited stopword file. A missing or unreadable file
// is a fatal configuration error for the run.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopword file: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read stopword file %s: %w", path, err)
	}
	return s, nil
}

// Read parses a line-delimited stopword list: one term per line, trimmed,
// blank lines dropped. Terms are case-folded with the same fold the
// normalizer uses so membership tests agree with normalized tokens.
func Read(r io.Reader) (*Set, error) {
	terms := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		terms[textutil.Fold(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &Set{terms: terms}, nil
}

// New builds a Set from a slice of terms, folding each. Used by tests and
// callers that carry an inline list.
func New(terms []string) *Set {
	m := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		m[textutil.Fold(t)] = struct{}{}
	}
	return &Set{terms: m}
}

// Contains reports whether the exact folded term is a stopword. Matching is
// whole-term only, never substring or prefix.
func (s *Set) Contains(term string) bool {
	if s == nil {
		return false
	}
	_, ok := s.terms[term]
	return ok
}

// Keep is the filter predicate: true when the token survives filtering.
func (s *Set) Keep(term string) bool {
	return !s.Contains(term)
}

// Len returns the number of stopword terms.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.terms)
}
