package search

import (
	"math"
	"sort"
	"strings"

	"github.com/poiesic/emojit/core"
)

const (
	// maxExpansions caps how many dictionary tokens one typed prefix
	// may expand into.
	maxExpansions = 64

	// prefixDiscount scales contributions of prefix-expanded tokens
	// below exact term matches.
	prefixDiscount = 0.5
)

// SearchPrefix ranks entries treating the final query token as an
// unfinished prefix, for search-as-you-type input. Earlier tokens
// match exactly; the last token matches itself plus every dictionary
// token it prefixes, discounted. Same ordering and limit contract as
// Search.
func (s *Searcher) SearchPrefix(query string, limit int) []core.SearchResult {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []core.SearchResult{}
	}
	if entry, ok := s.idx.EntryBySymbol(trimmed); ok {
		return []core.SearchResult{{Entry: entry, Score: math.MaxFloat64}}
	}
	terms := s.queryTerms(trimmed)
	if len(terms) == 0 {
		return []core.SearchResult{}
	}

	last := len(terms) - 1
	matches := make([]expansion, 0, len(terms)+maxExpansions)
	for i, term := range terms {
		matches = append(matches, expansion{slot: i, token: term, discount: 1})
	}
	for _, token := range s.expand(terms[last]) {
		matches = append(matches, expansion{slot: last, token: token, discount: prefixDiscount})
	}
	return s.rank(len(terms), matches, limit)
}

// expand returns dictionary tokens strictly extending prefix, in
// lexicographic order, capped at maxExpansions.
func (s *Searcher) expand(prefix string) []string {
	tokens := s.idx.Tokens()
	var out []string
	for i := sort.SearchStrings(tokens, prefix); i < len(tokens); i++ {
		if !strings.HasPrefix(tokens[i], prefix) {
			break
		}
		if tokens[i] == prefix {
			continue
		}
		out = append(out, tokens[i])
		if len(out) == maxExpansions {
			break
		}
	}
	return out
}
