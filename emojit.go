// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package emojit

import (
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/poiesic/emojit/core"
	"github.com/poiesic/emojit/index"
	"github.com/poiesic/emojit/search"
	"github.com/poiesic/emojit/snapshot"
)

// ErrNoIndex indicates an operation on an engine with no published index.
var ErrNoIndex = errors.New("no index published")

// Engine holds the published searcher and swaps it atomically when a
// new catalog is built or a snapshot is loaded. Readers always see a
// complete index, old or new, never a partial one.
type Engine struct {
	searcher atomic.Pointer[search.Searcher]
	cfg      core.Config
	cfgSet   bool
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the scoring configuration used when building
// catalogs. An explicitly configured engine also rejects snapshots
// built under any other configuration.
func WithConfig(cfg core.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
		e.cfgSet = true
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:    core.DefaultConfig(),
		logger: slog.Default(),
	}
	// Apply options
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BuildCatalog builds an index over entries and publishes it.
// On error the previously published index, if any, stays in place.
func (e *Engine) BuildCatalog(entries []core.EmojiEntry, opts ...index.BuildOption) error {
	buildOpts := append([]index.BuildOption{index.WithLogger(e.logger)}, opts...)
	idx, err := index.Build(entries, e.cfg, buildOpts...)
	if err != nil {
		return err
	}
	return e.publish(idx)
}

// LoadSnapshot decodes a snapshot blob and publishes its index. An
// engine configured with WithConfig fails with core.ErrConfigMismatch
// when the snapshot was built under a different configuration.
func (e *Engine) LoadSnapshot(blob []byte) error {
	idx, err := snapshot.Decode(blob)
	if err != nil {
		return err
	}
	return e.publish(idx)
}

// EncodeSnapshot serializes the published index to a snapshot blob.
func (e *Engine) EncodeSnapshot() ([]byte, error) {
	s := e.searcher.Load()
	if s == nil {
		return nil, ErrNoIndex
	}
	return snapshot.Encode(s.Index())
}

// Search returns ranked matches for query against the published index.
func (e *Engine) Search(query string, limit int) ([]core.SearchResult, error) {
	s := e.searcher.Load()
	if s == nil {
		return nil, ErrNoIndex
	}
	return s.Search(query, limit), nil
}

// SearchPrefix searches with the final query term treated as a prefix.
func (e *Engine) SearchPrefix(query string, limit int) ([]core.SearchResult, error) {
	s := e.searcher.Load()
	if s == nil {
		return nil, ErrNoIndex
	}
	return s.SearchPrefix(query, limit), nil
}

// SearchBest searches with stemming and prefix fallbacks for queries
// that match nothing exactly.
func (e *Engine) SearchBest(query string, limit int) ([]core.SearchResult, error) {
	s := e.searcher.Load()
	if s == nil {
		return nil, ErrNoIndex
	}
	return s.SearchBest(query, limit), nil
}

// Ready reports whether an index has been published.
func (e *Engine) Ready() bool {
	return e.searcher.Load() != nil
}

// Stats describes the published index.
type Stats struct {
	EntryCount  uint32
	TokenCount  int
	Fingerprint uint64
	Config      core.Config
}

func (e *Engine) Stats() (Stats, error) {
	s := e.searcher.Load()
	if s == nil {
		return Stats{}, ErrNoIndex
	}
	idx := s.Index()
	return Stats{
		EntryCount:  idx.EntryCount(),
		TokenCount:  idx.TokenCount(),
		Fingerprint: idx.Fingerprint(),
		Config:      idx.Config(),
	}, nil
}

func (e *Engine) publish(idx *index.Index) error {
	opts := []search.Option{search.WithLogger(e.logger)}
	if e.cfgSet {
		opts = append(opts, search.WithConfig(e.cfg))
	}
	s, err := search.NewSearcher(idx, opts...)
	if err != nil {
		return err
	}
	e.searcher.Store(s)
	e.logger.Info("published index", "entries", idx.EntryCount(), "tokens", idx.TokenCount())
	return nil
}
