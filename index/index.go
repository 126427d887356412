package index

import (
	"fmt"
	"sort"

	"github.com/poiesic/emojit/core"
)

// Posting records one entry's association with a token. Weight is the
// strongest field contribution of the token within the entry (name
// beats keywords, early keywords beat late ones); Freq counts how
// often the token occurs across the entry's name and keywords.
type Posting struct {
	Id     core.ID
	Weight float64
	Freq   uint32
}

// Index is an immutable searchable snapshot of one catalog: the
// entries themselves, the token -> posting-list map, and the per-token
// document frequencies. Posting lists are ordered by entry id
// ascending. The catalog and the index built from it travel together;
// every posting id resolves to an entry held by the same Index.
type Index struct {
	cfg         core.Config
	fingerprint uint64

	entries  []core.EmojiEntry // ascending by Id
	byId     map[core.ID]int
	bySymbol map[string]core.ID

	postings map[string][]Posting
	docFreq  map[string]uint32
	tokens   []string // sorted token dictionary
}

// Config returns the config the index was built with.
func (idx *Index) Config() core.Config {
	return idx.cfg
}

// Fingerprint returns the BLAKE2b fingerprint of the indexed catalog.
func (idx *Index) Fingerprint() uint64 {
	return idx.fingerprint
}

// EntryCount returns the number of indexed entries.
func (idx *Index) EntryCount() uint32 {
	return uint32(len(idx.entries))
}

// TokenCount returns the number of distinct tokens in the index.
func (idx *Index) TokenCount() int {
	return len(idx.tokens)
}

// Entries returns all indexed entries in ascending id order. The
// returned slice is shared and must not be modified.
func (idx *Index) Entries() []core.EmojiEntry {
	return idx.entries
}

// Entry returns the entry with the given id.
func (idx *Index) Entry(id core.ID) (core.EmojiEntry, bool) {
	i, ok := idx.byId[id]
	if !ok {
		return core.EmojiEntry{}, false
	}
	return idx.entries[i], true
}

// EntryBySymbol returns the entry whose symbol matches sym verbatim.
// When two entries share a symbol the one with the lowest id wins.
func (idx *Index) EntryBySymbol(sym string) (core.EmojiEntry, bool) {
	id, ok := idx.bySymbol[sym]
	if !ok {
		return core.EmojiEntry{}, false
	}
	return idx.entries[idx.byId[id]], true
}

// Postings returns the posting list for a token, ordered by entry id
// ascending, or nil when the token is not in the index. The returned
// slice is shared and must not be modified.
func (idx *Index) Postings(token string) []Posting {
	return idx.postings[token]
}

// DocumentFrequency returns the number of distinct entries containing
// the token, or zero when the token is not in the index.
func (idx *Index) DocumentFrequency(token string) uint32 {
	return idx.docFreq[token]
}

// Tokens returns the sorted token dictionary. The returned slice is
// shared and must not be modified.
func (idx *Index) Tokens() []string {
	return idx.tokens
}

// Restore reassembles an Index from decoded snapshot parts. Posting
// order and document frequencies are taken as-is, never recomputed;
// Restore only validates the structural invariants a well-formed
// snapshot carries and derives the lookup tables. Snapshot decoding
// wraps any returned error as a corruption failure.
func Restore(cfg core.Config, fingerprint uint64, entries []core.EmojiEntry, postings map[string][]Posting, docFreq map[string]uint32) (*Index, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, core.ErrEmptyCatalog
	}

	known := make(map[core.ID]bool, len(entries))
	for i := range entries {
		if err := core.ValidateEntry(&entries[i]); err != nil {
			return nil, err
		}
		if i > 0 && entries[i].Id <= entries[i-1].Id {
			return nil, fmt.Errorf("entries out of order at position %d", i)
		}
		known[entries[i].Id] = true
	}

	if len(docFreq) != len(postings) {
		return nil, fmt.Errorf("document frequency table has %d tokens, postings table has %d", len(docFreq), len(postings))
	}
	for token, list := range postings {
		if len(list) == 0 {
			return nil, fmt.Errorf("token %q has an empty posting list", token)
		}
		for i, p := range list {
			if !known[p.Id] {
				return nil, fmt.Errorf("token %q posting references unknown entry id %d", token, p.Id)
			}
			if i > 0 && p.Id <= list[i-1].Id {
				return nil, fmt.Errorf("token %q posting list out of order", token)
			}
		}
		if df, ok := docFreq[token]; !ok || df != uint32(len(list)) {
			return nil, fmt.Errorf("token %q document frequency %d does not match %d postings", token, docFreq[token], len(list))
		}
	}

	return assemble(cfg, fingerprint, entries, postings, docFreq), nil
}

// assemble derives the lookup tables and sorted dictionary. Inputs are
// trusted; entries must already be in ascending id order.
func assemble(cfg core.Config, fingerprint uint64, entries []core.EmojiEntry, postings map[string][]Posting, docFreq map[string]uint32) *Index {
	byId := make(map[core.ID]int, len(entries))
	bySymbol := make(map[string]core.ID, len(entries))
	for i := range entries {
		byId[entries[i].Id] = i
		if _, ok := bySymbol[entries[i].Symbol]; !ok {
			bySymbol[entries[i].Symbol] = entries[i].Id
		}
	}

	tokens := make([]string, 0, len(postings))
	for token := range postings {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	return &Index{
		cfg:         cfg,
		fingerprint: fingerprint,
		entries:     entries,
		byId:        byId,
		bySymbol:    bySymbol,
		postings:    postings,
		docFreq:     docFreq,
		tokens:      tokens,
	}
}
