package search

import (
	"fmt"
	"log/slog"
	"maps"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/poiesic/emojit/core"
	"github.com/poiesic/emojit/index"
	"github.com/poiesic/emojit/tokenizer"
)

// preferredBoost doubles the contribution of a curated entry for its
// pinned token.
const preferredBoost = 2.0

// Searcher executes ranked keyword queries against one immutable index.
// Safe for concurrent use by any number of goroutines.
type Searcher struct {
	idx       *index.Index
	tok       *tokenizer.Tokenizer
	cfg       core.Config
	preferred map[string]core.ID
	logger    *slog.Logger

	stemOnce sync.Once
	stemmed  map[string][]string
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithConfig declares the config the caller expects to query under.
// Construction fails with core.ErrConfigMismatch when it differs from
// the config the index was built with; a query must be tokenized the
// same way as the catalog it searches.
func WithConfig(cfg core.Config) Option {
	return func(s *Searcher) error {
		if cfg != s.idx.Config() {
			return fmt.Errorf("%w: index was built with different settings", core.ErrConfigMismatch)
		}
		return nil
	}
}

// WithPreferred pins normalized tokens to a curated entry id. The
// pinned entry's contribution for that token is doubled, promoting it
// for queries where the token dominates.
func WithPreferred(preferred map[string]core.ID) Option {
	return func(s *Searcher) error {
		s.preferred = maps.Clone(preferred)
		return nil
	}
}

// NewSearcher creates a new searcher over the given index.
func NewSearcher(idx *index.Index, opts ...Option) (*Searcher, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}

	s := &Searcher{
		idx:    idx,
		tok:    tokenizer.New(idx.Config()),
		cfg:    idx.Config(),
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Index returns the index this searcher queries.
func (s *Searcher) Index() *index.Index {
	return s.idx
}

// Search returns entries matching the query, best first: score
// descending, entry id ascending on ties. limit caps the result count;
// limit <= 0 returns every match. An empty or non-matching query
// yields an empty slice, never an error.
func (s *Searcher) Search(query string, limit int) []core.SearchResult {
	return s.SearchWithMonitor(query, limit, nil)
}

// SearchWithMonitor searches with monitoring. The monitor receives
// callbacks at each stage of the query.
func (s *Searcher) SearchWithMonitor(query string, limit int, monitor SearchMonitor) []core.SearchResult {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		monitor.Finish(nil)
		return []core.SearchResult{}
	}

	// A query that is itself a catalog symbol resolves to that entry
	// alone, ranked above any keyword match.
	if entry, ok := s.idx.EntryBySymbol(trimmed); ok {
		monitor.SymbolHit(entry)
		results := []core.SearchResult{{Entry: entry, Score: math.MaxFloat64}}
		monitor.Finish(results)
		return results
	}

	terms := s.queryTerms(trimmed)
	monitor.AfterTokenize(terms)
	if len(terms) == 0 {
		monitor.Finish(nil)
		return []core.SearchResult{}
	}

	matches := make([]expansion, len(terms))
	for i, term := range terms {
		matches[i] = expansion{slot: i, token: term, discount: 1}
		monitor.TermMatched(term, len(s.idx.Postings(term)))
	}

	results := s.rank(len(terms), matches, limit)
	s.logger.Debug("ranked query", "terms", len(terms), "results", len(results))
	monitor.Finish(results)
	return results
}

// queryTerms tokenizes a trimmed query into distinct terms in first
// occurrence order. Repeating a word in a query does not change its
// weight.
func (s *Searcher) queryTerms(trimmed string) []string {
	var terms []string
	seen := make(map[string]bool)
	for token := range s.tok.Tokenize(trimmed) {
		if seen[token] {
			continue
		}
		seen[token] = true
		terms = append(terms, token)
	}
	return terms
}

// expansion pairs one query slot with an index token that can satisfy
// it. discount scales the token's contribution; exact terms carry 1,
// forgiving matches less.
type expansion struct {
	slot     int
	token    string
	discount float64
}

// rank scores the union of all posting lists reached by the given
// matches. An entry's score sums discounted weight * frequency * idf
// contributions; entries covering every query slot are multiplied by
// the full match bonus.
func (s *Searcher) rank(slots int, matches []expansion, limit int) []core.SearchResult {
	type hit struct {
		score   float64
		covered []bool
	}
	hits := make(map[core.ID]*hit)

	for _, m := range matches {
		postings := s.idx.Postings(m.token)
		if len(postings) == 0 {
			continue
		}
		idf := s.idf(m.token)
		for i := range postings {
			p := &postings[i]
			h := hits[p.Id]
			if h == nil {
				h = &hit{covered: make([]bool, slots)}
				hits[p.Id] = h
			}
			h.score += m.discount * s.contribution(m.token, p, idf)
			h.covered[m.slot] = true
		}
	}
	if len(hits) == 0 {
		return []core.SearchResult{}
	}

	results := make([]core.SearchResult, 0, len(hits))
	for id, h := range hits {
		entry, ok := s.idx.Entry(id)
		if !ok {
			continue
		}
		score := h.score
		if coversAll(h.covered) {
			score *= s.cfg.FullMatchBonus
		}
		results = append(results, core.SearchResult{Entry: entry, Score: score})
	}

	// Sort by score descending, entry id ascending on equal scores
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Entry.Id < results[j].Entry.Id
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// idf is ln(1 + entryCount/documentFrequency); rare tokens weigh more.
func (s *Searcher) idf(token string) float64 {
	df := s.idx.DocumentFrequency(token)
	if df == 0 {
		return 0
	}
	return math.Log(1 + float64(s.idx.EntryCount())/float64(df))
}

func (s *Searcher) contribution(token string, p *index.Posting, idf float64) float64 {
	c := p.Weight * float64(p.Freq) * idf
	if id, ok := s.preferred[token]; ok && id == p.Id {
		c *= preferredBoost
	}
	return c
}

func coversAll(covered []bool) bool {
	for _, c := range covered {
		if !c {
			return false
		}
	}
	return true
}
