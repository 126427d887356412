// Package catalog converts external emoji datasets into EmojiEntry
// records. The expected input is a JSON array of objects with "symbol",
// "name" and "keywords" fields and an optional numeric "id"; entries
// without an id are numbered ordinally in dataset order, which keeps
// ids stable as long as the dataset order is stable.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/poiesic/emojit/core"
)

type rawEntry struct {
	Id       *core.ID `json:"id,omitempty"`
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Parse decodes a catalog from JSON bytes.
//
// Keyword order is preserved verbatim: the dataset's order is its
// curated relevance order. An empty array is a valid catalog here; the
// index builder is the one that refuses to build from zero entries.
func Parse(data []byte) ([]core.EmojiEntry, error) {
	var raw []rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCatalog, err)
	}

	entries := make([]core.EmojiEntry, 0, len(raw))
	for i, r := range raw {
		entry := core.EmojiEntry{
			Id:       core.ID(i),
			Symbol:   r.Symbol,
			Name:     r.Name,
			Keywords: r.Keywords,
		}
		if r.Id != nil {
			entry.Id = *r.Id
		}
		if err := core.ValidateEntry(&entry); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrMalformedCatalog, i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Load decodes a catalog from r.
func Load(r io.Reader) ([]core.EmojiEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCatalog, err)
	}
	return Parse(data)
}

// LoadFile decodes a catalog from a JSON file on disk.
func LoadFile(path string) ([]core.EmojiEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
