package bind

import (
	"github.com/poiesic/emojit/catalog"
	"github.com/poiesic/emojit/core"
	"github.com/poiesic/emojit/index"
	"github.com/poiesic/emojit/snapshot"
)

// defaultRegistry backs the package-level functions. Bindings that
// need isolated handle spaces can run their own Registry instead.
var defaultRegistry = NewRegistry()

// BuildIndex parses a catalog JSON document, builds an index with the
// default configuration and returns the encoded snapshot.
func BuildIndex(catalogJSON []byte) ([]byte, error) {
	entries, err := catalog.Parse(catalogJSON)
	if err != nil {
		return nil, err
	}
	idx, err := index.Build(entries, core.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return snapshot.Encode(idx)
}

// LoadIndex registers the snapshot's searcher in the default registry.
func LoadIndex(blob []byte) (uint64, error) {
	return defaultRegistry.LoadIndex(blob)
}

// Search queries a searcher previously registered with LoadIndex.
func Search(handle uint64, query string, limit uint) ([]Match, error) {
	return defaultRegistry.Search(handle, query, limit)
}

// ReleaseIndex removes a handle from the default registry.
func ReleaseIndex(handle uint64) bool {
	return defaultRegistry.ReleaseIndex(handle)
}
