package search

import (
	"github.com/poiesic/emojit/core"
)

// SearchMonitor provides hooks to observe the query process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	SymbolHit(entry core.EmojiEntry)
	AfterTokenize(terms []string)
	TermMatched(term string, postings int)
	Finish(results []core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)               {}
func (n *noopMonitor) SymbolHit(_ core.EmojiEntry)  {}
func (n *noopMonitor) AfterTokenize(_ []string)     {}
func (n *noopMonitor) TermMatched(_ string, _ int)  {}
func (n *noopMonitor) Finish(_ []core.SearchResult) {}
