package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is the stable identifier of a catalog entry. Ids come from the
// dataset when it supplies them, otherwise the catalog loader assigns
// them ordinally in dataset order.
type ID uint32

// EmojiEntry is a single immutable catalog record. It is created once
// at catalog load and never mutated; a rebuilt catalog produces new
// entries rather than updating old ones.
type EmojiEntry struct {
	Id     ID
	Symbol string // rendered glyph, matched verbatim and never tokenized
	Name   string // canonical name, e.g. "red heart"

	// Keywords in dataset order. The order is the curated priority
	// order from the source dataset and may contain duplicates.
	Keywords []string
}

// SearchResult pairs an entry with its relevance score for one query.
type SearchResult struct {
	Entry EmojiEntry
	Score float64
}

// FingerprintCatalog produces a deterministic 64-bit fingerprint of the
// catalog content using BLAKE2b. Identical catalogs produce identical
// fingerprints, so the fingerprint can key snapshot caches.
func FingerprintCatalog(entries []EmojiEntry) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	var num [4]byte
	for i := range entries {
		e := &entries[i]
		binary.LittleEndian.PutUint32(num[:], uint32(e.Id))
		h.Write(num[:])
		h.Write([]byte(e.Symbol))
		h.Write([]byte{0})
		h.Write([]byte(e.Name))
		h.Write([]byte{0})
		for _, kw := range e.Keywords {
			h.Write([]byte(kw))
			h.Write([]byte{0})
		}
	}
	return binary.LittleEndian.Uint64(h.Sum(nil))
}
