package dtm

import "sort"

// TermStat pairs a vocabulary term with its corpus-wide total frequency.
type TermStat struct {
	Term  string
	Total int
}

// Stats summarizes the vocabulary of a finished matrix.
type Stats struct {
	TopTerms      []TermStat // highest totals first, ties by ascending term
	Singletons    int        // terms with total frequency exactly 1
	HighFrequency int        // terms with total frequency strictly above the threshold
}

// Analyze computes per-term totals over the finished matrix and derives the
// ranked top-N list plus singleton and high-frequency counts. Read-only.
// A topN larger than the vocabulary returns the whole vocabulary.
func Analyze(m *Matrix, topN, highFreqThreshold int) Stats {
	terms := m.Terms()
	totals := m.ColumnTotals()

	stats := Stats{}
	ranked := make([]TermStat, len(terms))
	for i, term := range terms {
		ranked[i] = TermStat{Term: term, Total: totals[i]}
		if totals[i] == 1 {
			stats.Singletons++
		}
		if totals[i] > highFreqThreshold {
			stats.HighFrequency++
		}
	}

	// ranked starts in lexicographic term order; a stable sort by total
	// keeps that order within equal totals, which is the tie-break rule.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	if topN < 0 {
		topN = 0
	}
	if topN > len(ranked) {
		topN = len(ranked)
	}
	stats.TopTerms = ranked[:topN]
	return stats
}
