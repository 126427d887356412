package bind

import (
	"fmt"
	"sync"

	"github.com/poiesic/emojit/search"
	"github.com/poiesic/emojit/snapshot"
)

// Match is a flattened result row for callers outside the process.
type Match struct {
	Symbol string
	Name   string
	Score  float64
}

// Registry owns searchers on behalf of callers that can only hold
// integers. Handles are assigned monotonically and never reused, so a
// released handle stays invalid for the life of the registry.
//
// The lock guards only the handle table. Searches run outside it on
// the immutable index, so readers never block each other.
type Registry struct {
	mu   sync.RWMutex
	next uint64
	live map[uint64]*search.Searcher
}

func NewRegistry() *Registry {
	return &Registry{live: make(map[uint64]*search.Searcher)}
}

// LoadIndex decodes a snapshot, wraps it in a searcher and returns the
// handle identifying it in later calls.
func (r *Registry) LoadIndex(blob []byte) (uint64, error) {
	idx, err := snapshot.Decode(blob)
	if err != nil {
		return 0, err
	}
	s, err := search.NewSearcher(idx)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.live[r.next] = s
	return r.next, nil
}

// Search runs a ranked query against the searcher behind handle. A
// limit of zero returns every match.
func (r *Registry) Search(handle uint64, query string, limit uint) ([]Match, error) {
	s, err := r.searcher(handle)
	if err != nil {
		return nil, err
	}

	results := s.Search(query, int(limit))
	rows := make([]Match, 0, len(results))
	for _, res := range results {
		rows = append(rows, Match{
			Symbol: res.Entry.Symbol,
			Name:   res.Entry.Name,
			Score:  res.Score,
		})
	}
	return rows, nil
}

// ReleaseIndex drops the searcher behind handle and reports whether
// the handle was live.
func (r *Registry) ReleaseIndex(handle uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.live[handle]; !ok {
		return false
	}
	delete(r.live, handle)
	return true
}

func (r *Registry) searcher(handle uint64) (*search.Searcher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.live[handle]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHandle, handle)
	}
	return s, nil
}
