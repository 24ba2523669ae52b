// Package report derives corpus-level observability statistics that sit
// outside the document-term matrix itself.
package report

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/happyhackingspace/bow/internal/corpus"
)

var urlRe = regexp.MustCompile(`(?i)\bhttps?://[^\s<>"]+|\bwww\.[^\s<>"]+`)

// LinkStats summarizes URLs found in raw message text. Embedded links are
// a strong spam signal, so the summary reports them alongside the
// vocabulary statistics.
type LinkStats struct {
	Messages int      // messages containing at least one URL
	Domains  []string // distinct eTLD+1 domains, sorted
}

// Links scans raw (pre-normalization) message text for URLs and collects
// the distinct registrable domains.
func Links(docs []corpus.Document) LinkStats {
	domains := make(map[string]struct{})
	stats := LinkStats{}

	for _, d := range docs {
		matches := urlRe.FindAllString(d.Text, -1)
		if len(matches) == 0 {
			continue
		}
		stats.Messages++
		for _, m := range matches {
			if domain := registrableDomain(m); domain != "" {
				domains[domain] = struct{}{}
			}
		}
	}

	stats.Domains = make([]string, 0, len(domains))
	for d := range domains {
		stats.Domains = append(stats.Domains, d)
	}
	sort.Strings(stats.Domains)
	return stats
}

// registrableDomain extracts the eTLD+1 from a matched URL, falling back to
// the bare host when the public suffix list cannot place it.
func registrableDomain(rawURL string) string {
	host := strings.ToLower(rawURL)
	if idx := strings.Index(host, "://"); idx >= 0 {
		host = host[idx+3:]
	}
	for _, sep := range []string{"/", "?", "#"} {
		if idx := strings.Index(host, sep); idx >= 0 {
			host = host[:idx]
		}
	}
	if idx := strings.Index(host, ":"); idx >= 0 {
		host = host[:idx]
	}
	host = strings.TrimSuffix(host, ".")
	host = strings.Trim(host, ".,;!)")
	if host == "" {
		return ""
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}
