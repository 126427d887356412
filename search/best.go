package search

import (
	"strings"

	"github.com/poiesic/emojit/core"
)

// stemDiscount scales contributions matched through a shared stem.
const stemDiscount = 0.8

// SearchBest is the forgiving variant of Search: exact ranked search
// first; when that misses, stop words are dropped and the remaining
// terms are matched through shared stems, then as prefixes. Same
// ordering and limit contract as Search; a query that misses every
// pass yields an empty slice.
func (s *Searcher) SearchBest(query string, limit int) []core.SearchResult {
	if results := s.Search(query, limit); len(results) > 0 {
		return results
	}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []core.SearchResult{}
	}
	terms := s.queryTerms(trimmed)
	if len(terms) == 0 {
		return []core.SearchResult{}
	}
	// An all-stop-word query keeps its terms rather than match nothing.
	if content := filterStopWords(terms); len(content) > 0 {
		terms = content
	}

	if results := s.searchStemmed(terms, limit); len(results) > 0 {
		s.logger.Debug("stemmed fallback answered", "terms", len(terms), "results", len(results))
		return results
	}

	matches := make([]expansion, 0, len(terms))
	for i, term := range terms {
		for _, token := range s.expand(term) {
			matches = append(matches, expansion{slot: i, token: token, discount: prefixDiscount})
		}
	}
	results := s.rank(len(terms), matches, limit)
	s.logger.Debug("prefix fallback answered", "terms", len(terms), "results", len(results))
	return results
}

// searchStemmed matches terms against dictionary tokens sharing their
// stem.
func (s *Searcher) searchStemmed(terms []string, limit int) []core.SearchResult {
	dict := s.stemmedDictionary()
	var matches []expansion
	for i, term := range terms {
		for _, token := range dict[Stem(term)] {
			if token == term {
				continue
			}
			matches = append(matches, expansion{slot: i, token: token, discount: stemDiscount})
		}
	}
	if len(matches) == 0 {
		return []core.SearchResult{}
	}
	return s.rank(len(terms), matches, limit)
}

// stemmedDictionary groups the token dictionary by stem, built once on
// first use. Tokens within a group keep the sorted dictionary order.
func (s *Searcher) stemmedDictionary() map[string][]string {
	s.stemOnce.Do(func() {
		m := make(map[string][]string)
		for _, token := range s.idx.Tokens() {
			stem := Stem(token)
			m[stem] = append(m[stem], token)
		}
		s.stemmed = m
	})
	return s.stemmed
}
