package index

import (
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/emojit/core"
	"github.com/poiesic/emojit/tokenizer"
)

type builder struct {
	workers int
	logger  *slog.Logger
	extra   map[string][]string
	tracker *ProgressTracker
}

// BuildOption configures a single Build call.
type BuildOption func(*builder) error

// WithWorkers sets the worker pool size for the per-entry phase.
// Default is runtime.NumCPU() / 2, with a minimum of 1. The worker
// count never changes the built index, only how fast it appears.
func WithWorkers(n int) BuildOption {
	return func(b *builder) error {
		if n < 1 {
			n = 1
		}
		b.workers = n
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) BuildOption {
	return func(b *builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// WithExtraKeywords appends host-supplied keywords to matching entries
// before indexing, keyed by entry symbol. Extra keywords rank after
// the dataset's own, and they change the catalog fingerprint.
func WithExtraKeywords(extra map[string][]string) BuildOption {
	return func(b *builder) error {
		b.extra = extra
		return nil
	}
}

// WithTracker attaches a progress tracker that is advanced once per
// indexed entry.
func WithTracker(tracker *ProgressTracker) BuildOption {
	return func(b *builder) error {
		b.tracker = tracker
		return nil
	}
}

// Build constructs an Index over the catalog.
//
// The per-entry tokenize/weight step runs on a worker pool with each
// entry writing into its own result slot; the merge then walks the
// slots sequentially in ascending entry-id order. Identical catalog
// and config therefore produce an identical index (and identical
// snapshot bytes) for any worker count.
//
// Build fails with core.ErrEmptyCatalog on a zero-entry catalog and
// with core.ErrDuplicateEntryID when two entries share an id. No
// partial index is ever returned.
func Build(catalog []core.EmojiEntry, cfg core.Config, opts ...BuildOption) (*Index, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, core.ErrEmptyCatalog
	}

	workers := runtime.NumCPU() / 2
	if workers < 1 {
		workers = 1
	}
	b := &builder{
		workers: workers,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	entries := prepareEntries(catalog, b.extra)
	if dup, ok := findDuplicateId(entries); ok {
		return nil, fmt.Errorf("%w: id %d", core.ErrDuplicateEntryID, dup)
	}

	pool, err := ants.NewPool(b.workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	tok := tokenizer.New(cfg)
	partials := make([][]tokenPosting, len(entries))

	var wg sync.WaitGroup
	for i := range entries {
		wg.Add(1)
		entry := &entries[i]
		slot := &partials[i]
		task := func() {
			defer wg.Done()
			*slot = indexEntry(entry, tok, cfg)
			if b.tracker != nil {
				b.tracker.Increment(1)
			}
		}
		if submitErr := pool.Submit(task); submitErr != nil {
			// pool rejected the task; run it on this goroutine instead
			task()
		}
	}
	wg.Wait()

	postings := make(map[string][]Posting)
	for i := range partials {
		for _, tp := range partials[i] {
			postings[tp.token] = append(postings[tp.token], tp.posting)
		}
	}

	docFreq := make(map[string]uint32, len(postings))
	for token, list := range postings {
		docFreq[token] = uint32(len(list))
	}

	idx := assemble(cfg, core.FingerprintCatalog(entries), entries, postings, docFreq)
	b.logger.Debug("index built",
		"entries", len(entries),
		"tokens", len(idx.tokens),
		"workers", b.workers)
	return idx, nil
}

// tokenPosting is one entry's contribution for one token.
type tokenPosting struct {
	token   string
	posting Posting
}

// indexEntry tokenizes a single entry and accumulates its per-token
// term frequency and strongest field weight. The result is sorted by
// token so partial output never depends on map iteration order.
func indexEntry(e *core.EmojiEntry, tok *tokenizer.Tokenizer, cfg core.Config) []tokenPosting {
	type acc struct {
		weight float64
		freq   uint32
	}
	accs := make(map[string]*acc)
	contribute := func(token string, w float64) {
		a := accs[token]
		if a == nil {
			a = &acc{}
			accs[token] = a
		}
		a.freq++
		if w > a.weight {
			a.weight = w
		}
	}

	for t := range tok.Tokenize(e.Name) {
		contribute(t, cfg.NameWeight)
	}
	for p, kw := range e.Keywords {
		w := cfg.KeywordWeight / (1 + float64(p)*cfg.PositionDecay)
		for t := range tok.Tokenize(kw) {
			contribute(t, w)
		}
	}

	out := make([]tokenPosting, 0, len(accs))
	for token, a := range accs {
		out = append(out, tokenPosting{
			token:   token,
			posting: Posting{Id: e.Id, Weight: a.weight, Freq: a.freq},
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].token < out[j].token })
	return out
}

// prepareEntries copies the catalog, sorts it by id and applies extra
// keywords. The caller's slice and entries are never mutated. Empty
// keyword slices are normalized to nil so an index and its decoded
// snapshot compare equal.
func prepareEntries(catalog []core.EmojiEntry, extra map[string][]string) []core.EmojiEntry {
	entries := make([]core.EmojiEntry, len(catalog))
	copy(entries, catalog)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Id < entries[j].Id })

	for i := range entries {
		if len(entries[i].Keywords) == 0 {
			entries[i].Keywords = nil
		}
		more := extra[entries[i].Symbol]
		if len(more) == 0 {
			continue
		}
		kws := make([]string, 0, len(entries[i].Keywords)+len(more))
		kws = append(kws, entries[i].Keywords...)
		kws = append(kws, more...)
		entries[i].Keywords = kws
	}
	return entries
}

// findDuplicateId scans id-sorted entries for an adjacent duplicate.
func findDuplicateId(entries []core.EmojiEntry) (core.ID, bool) {
	for i := 1; i < len(entries); i++ {
		if entries[i].Id == entries[i-1].Id {
			return entries[i].Id, true
		}
	}
	return 0, false
}
