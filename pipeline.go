package bow

import (
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/happyhackingspace/bow/internal/corpus"
	"github.com/happyhackingspace/bow/internal/dtm"
	"github.com/happyhackingspace/bow/internal/report"
	"github.com/happyhackingspace/bow/internal/stopword"
	"github.com/happyhackingspace/bow/internal/textutil"
)

// Config holds pipeline settings. A nil Config uses the defaults.
type Config struct {
	Workers           int // map-phase workers; 0 means runtime.NumCPU()
	TopTerms          int // top-N terms in the summary; 0 means 20
	HighFreqThreshold int // "high frequency" cutoff; 0 means 10
}

// docCounts is one document's map-phase output: its surviving term counts
// and how many tokens survived filtering.
type docCounts struct {
	counts   map[string]int
	survived int
}

// Build runs the full two-pass pipeline over the corpus.
//
// Pass 1 normalizes, tokenizes, and filters every document and counts
// (doc, term) pairs; documents are independent, so this phase runs on a
// worker pool with results merged by doc index, which keeps the outcome
// deterministic regardless of scheduling. Pass 2 starts only after every
// document is counted: it fixes the vocabulary, assembles the matrix, and
// derives the summary. A document with no surviving tokens keeps its
// all-zero row; it is expected, not an error.
func Build(docs []Document, stops *Stopwords, cfg *Config) (*Result, error) {
	workers := 0
	topN := 20
	threshold := 10
	if cfg != nil {
		workers = cfg.Workers
		if cfg.TopTerms > 0 {
			topN = cfg.TopTerms
		}
		if cfg.HighFreqThreshold > 0 {
			threshold = cfg.HighFreqThreshold
		}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if stops == nil {
		stops = stopword.New(nil)
	}

	for _, d := range docs {
		if d.Label == "" {
			return nil, fmt.Errorf("bow: document %d is missing its %s field", d.ID, corpus.ColumnCategory)
		}
	}

	start := time.Now()
	results := mapPhase(docs, stops, workers)
	slog.Debug("Map phase complete", "documents", len(docs), "workers", workers, "duration", time.Since(start))

	// Barrier: every document has been filtered, the vocabulary is final.
	counter := dtm.NewCounter()
	for i, d := range docs {
		counter.AddCounts(d.ID, results[i].counts)
		if results[i].survived == 0 {
			slog.Debug("Document has no surviving tokens", "doc_id", d.ID)
		}
	}

	start = time.Now()
	matrix, err := dtm.Assemble(corpus.IDs(docs), counter.Entries())
	if err != nil {
		return nil, fmt.Errorf("bow: assemble matrix: %w", err)
	}
	slog.Debug("Matrix assembled", "rows", matrix.Rows(), "cols", matrix.Cols(), "nnz", matrix.Nnz(), "duration", time.Since(start))

	// Row sums must equal each document's surviving token count; a
	// mismatch means the assembler corrupted the features.
	for i, d := range docs {
		if sum := matrix.RowSum(d.ID); sum != results[i].survived {
			return nil, fmt.Errorf("bow: row sum %d for doc %d does not match surviving token count %d", sum, d.ID, results[i].survived)
		}
	}

	res := &Result{
		Docs:    docs,
		Matrix:  matrix,
		Summary: summarize(docs, matrix, topN, threshold),
	}
	return res, nil
}

// mapPhase runs normalize/tokenize/filter/count for each document on a
// bounded worker pool. Results land in a slice indexed by document
// position, so the merge order never depends on worker scheduling.
func mapPhase(docs []Document, stops *Stopwords, workers int) []docCounts {
	results := make([]docCounts, len(docs))
	if workers > len(docs) {
		workers = len(docs)
	}
	if workers <= 1 {
		for i, d := range docs {
			results[i] = countDocument(d, stops)
		}
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = countDocument(docs[i], stops)
			}
		}()
	}
	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// countDocument is the per-document map step: normalization, tokenization,
// stopword filtering, local frequency counting.
func countDocument(d Document, stops *Stopwords) docCounts {
	tokens := textutil.Tokenize(textutil.Normalize(d.Text))
	counts := make(map[string]int)
	survived := 0
	for _, term := range tokens {
		if !stops.Keep(term) {
			continue
		}
		counts[term]++
		survived++
	}
	return docCounts{counts: counts, survived: survived}
}

func summarize(docs []Document, matrix *Matrix, topN, threshold int) Summary {
	stats := dtm.Analyze(matrix, topN, threshold)
	links := report.Links(docs)

	byLabel := make(map[string]int)
	for _, d := range docs {
		byLabel[d.Label]++
	}
	labels := make([]LabelCount, 0, len(byLabel))
	for label, n := range byLabel {
		labels = append(labels, LabelCount{Label: label, Count: n})
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].Label < labels[j].Label })

	return Summary{
		Documents:         len(docs),
		VocabularySize:    matrix.Cols(),
		NonZeroCells:      matrix.Nnz(),
		Labels:            labels,
		TopTerms:          stats.TopTerms,
		Singletons:        stats.Singletons,
		HighFrequency:     stats.HighFrequency,
		HighFreqThreshold: threshold,
		LinkMessages:      links.Messages,
		LinkDomains:       links.Domains,
	}
}
