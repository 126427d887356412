package snapshot

import (
	"fmt"
	"hash/crc32"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/emojit/core"
	"github.com/poiesic/emojit/index"
)

// FormatVersion is the snapshot format version this package encodes
// and decodes. Blobs of any other version are rejected.
const FormatVersion uint32 = 1

// checksumSize is the fixed width of the trailing crc32 field.
const checksumSize = 4

// Encode serializes idx into a snapshot blob.
func Encode(idx *index.Index) ([]byte, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}

	cfg := idx.Config()
	entries := idx.Entries()
	tokens := idx.Tokens()

	size := raw.Uint32.Size(FormatVersion)
	size += varint.Uint32.Size(idx.EntryCount())
	size += configSize(cfg)
	size += raw.Uint64.Size(idx.Fingerprint())
	for i := range entries {
		size += entrySize(&entries[i])
	}
	size += varint.Int.Size(len(tokens))
	for _, token := range tokens {
		size += ord.String.Size(token)
		list := idx.Postings(token)
		size += varint.Int.Size(len(list))
		for _, p := range list {
			size += postingSize(p)
		}
	}
	size += varint.Int.Size(len(tokens))
	for _, token := range tokens {
		size += ord.String.Size(token)
		size += varint.Uint32.Size(idx.DocumentFrequency(token))
	}
	size += checksumSize

	bs := make([]byte, size)
	n := raw.Uint32.Marshal(FormatVersion, bs)
	n += varint.Uint32.Marshal(idx.EntryCount(), bs[n:])
	n += marshalConfig(cfg, bs[n:])
	n += raw.Uint64.Marshal(idx.Fingerprint(), bs[n:])
	for i := range entries {
		n += marshalEntry(&entries[i], bs[n:])
	}
	n += varint.Int.Marshal(len(tokens), bs[n:])
	for _, token := range tokens {
		n += ord.String.Marshal(token, bs[n:])
		list := idx.Postings(token)
		n += varint.Int.Marshal(len(list), bs[n:])
		for _, p := range list {
			n += marshalPosting(p, bs[n:])
		}
	}
	n += varint.Int.Marshal(len(tokens), bs[n:])
	for _, token := range tokens {
		n += ord.String.Marshal(token, bs[n:])
		n += varint.Uint32.Marshal(idx.DocumentFrequency(token), bs[n:])
	}

	raw.Uint32.Marshal(crc32.ChecksumIEEE(bs[:n]), bs[n:])
	return bs, nil
}

// Decode deserializes a snapshot blob back into an index.
//
// The checksum is verified first, so corruption anywhere in the blob
// reports core.ErrCorruptSnapshot; only an intact blob of a different
// version reports core.ErrVersionMismatch.
func Decode(bs []byte) (*index.Index, error) {
	if len(bs) < raw.Uint32.Size(FormatVersion)+checksumSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than any snapshot", core.ErrCorruptSnapshot, len(bs))
	}

	body := bs[:len(bs)-checksumSize]
	want, _, err := raw.Uint32.Unmarshal(bs[len(bs)-checksumSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable checksum", core.ErrCorruptSnapshot)
	}
	if got := crc32.ChecksumIEEE(body); got != want {
		return nil, fmt.Errorf("%w: checksum mismatch", core.ErrCorruptSnapshot)
	}

	r := &reader{bs: body}

	version, err := r.rawUint32()
	if err != nil {
		return nil, corrupt(err)
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: snapshot has version %d, decoder supports %d",
			core.ErrVersionMismatch, version, FormatVersion)
	}

	entryCount, err := r.uint32()
	if err != nil {
		return nil, corrupt(err)
	}
	if int(entryCount) > r.remaining() {
		return nil, fmt.Errorf("%w: entry count %d exceeds blob size", core.ErrCorruptSnapshot, entryCount)
	}

	cfg, err := r.config()
	if err != nil {
		return nil, corrupt(err)
	}
	fingerprint, err := r.rawUint64()
	if err != nil {
		return nil, corrupt(err)
	}

	entries := make([]core.EmojiEntry, entryCount)
	for i := range entries {
		if err := r.entry(&entries[i]); err != nil {
			return nil, corrupt(err)
		}
	}

	tokenCount, err := r.count()
	if err != nil {
		return nil, corrupt(err)
	}
	tokens := make([]string, tokenCount)
	postings := make(map[string][]index.Posting, tokenCount)
	for i := range tokens {
		token, err := r.str()
		if err != nil {
			return nil, corrupt(err)
		}
		if i > 0 && token <= tokens[i-1] {
			return nil, fmt.Errorf("%w: postings table out of order at %q", core.ErrCorruptSnapshot, token)
		}
		tokens[i] = token

		listLen, err := r.count()
		if err != nil {
			return nil, corrupt(err)
		}
		list := make([]index.Posting, listLen)
		for j := range list {
			if err := r.posting(&list[j]); err != nil {
				return nil, corrupt(err)
			}
		}
		postings[token] = list
	}

	dfCount, err := r.count()
	if err != nil {
		return nil, corrupt(err)
	}
	if dfCount != tokenCount {
		return nil, fmt.Errorf("%w: document frequency table has %d tokens, postings table has %d",
			core.ErrCorruptSnapshot, dfCount, tokenCount)
	}
	docFreq := make(map[string]uint32, dfCount)
	for i := 0; i < dfCount; i++ {
		token, err := r.str()
		if err != nil {
			return nil, corrupt(err)
		}
		if token != tokens[i] {
			return nil, fmt.Errorf("%w: document frequency table token %q does not match postings token %q",
				core.ErrCorruptSnapshot, token, tokens[i])
		}
		df, err := r.uint32()
		if err != nil {
			return nil, corrupt(err)
		}
		docFreq[token] = df
	}

	if r.remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", core.ErrCorruptSnapshot, r.remaining())
	}

	idx, err := index.Restore(cfg, fingerprint, entries, postings, docFreq)
	if err != nil {
		return nil, corrupt(err)
	}
	return idx, nil
}

func corrupt(err error) error {
	return fmt.Errorf("%w: %w", core.ErrCorruptSnapshot, err)
}

func configSize(cfg core.Config) int {
	return ord.Bool.Size(cfg.IncludeNumericTokens) +
		ord.Bool.Size(cfg.FoldDiacritics) +
		raw.Float64.Size(cfg.NameWeight) +
		raw.Float64.Size(cfg.KeywordWeight) +
		raw.Float64.Size(cfg.PositionDecay) +
		raw.Float64.Size(cfg.FullMatchBonus)
}

func marshalConfig(cfg core.Config, bs []byte) (n int) {
	n = ord.Bool.Marshal(cfg.IncludeNumericTokens, bs)
	n += ord.Bool.Marshal(cfg.FoldDiacritics, bs[n:])
	n += raw.Float64.Marshal(cfg.NameWeight, bs[n:])
	n += raw.Float64.Marshal(cfg.KeywordWeight, bs[n:])
	n += raw.Float64.Marshal(cfg.PositionDecay, bs[n:])
	n += raw.Float64.Marshal(cfg.FullMatchBonus, bs[n:])
	return n
}

func entrySize(e *core.EmojiEntry) int {
	size := varint.Uint32.Size(uint32(e.Id))
	size += ord.String.Size(e.Symbol)
	size += ord.String.Size(e.Name)
	size += varint.Int.Size(len(e.Keywords))
	for _, kw := range e.Keywords {
		size += ord.String.Size(kw)
	}
	return size
}

func marshalEntry(e *core.EmojiEntry, bs []byte) (n int) {
	n = varint.Uint32.Marshal(uint32(e.Id), bs)
	n += ord.String.Marshal(e.Symbol, bs[n:])
	n += ord.String.Marshal(e.Name, bs[n:])
	n += varint.Int.Marshal(len(e.Keywords), bs[n:])
	for _, kw := range e.Keywords {
		n += ord.String.Marshal(kw, bs[n:])
	}
	return n
}

func postingSize(p index.Posting) int {
	return varint.Uint32.Size(uint32(p.Id)) +
		raw.Float64.Size(p.Weight) +
		varint.Uint32.Size(p.Freq)
}

func marshalPosting(p index.Posting, bs []byte) (n int) {
	n = varint.Uint32.Marshal(uint32(p.Id), bs)
	n += raw.Float64.Marshal(p.Weight, bs[n:])
	n += varint.Uint32.Marshal(p.Freq, bs[n:])
	return n
}

// reader walks the blob body sequentially, keeping the running offset.
type reader struct {
	bs []byte
	n  int
}

func (r *reader) remaining() int {
	return len(r.bs) - r.n
}

func (r *reader) rawUint32() (uint32, error) {
	v, c, err := raw.Uint32.Unmarshal(r.bs[r.n:])
	r.n += c
	return v, err
}

func (r *reader) rawUint64() (uint64, error) {
	v, c, err := raw.Uint64.Unmarshal(r.bs[r.n:])
	r.n += c
	return v, err
}

func (r *reader) uint32() (uint32, error) {
	v, c, err := varint.Uint32.Unmarshal(r.bs[r.n:])
	r.n += c
	return v, err
}

func (r *reader) float64() (float64, error) {
	v, c, err := raw.Float64.Unmarshal(r.bs[r.n:])
	r.n += c
	return v, err
}

func (r *reader) bool() (bool, error) {
	v, c, err := ord.Bool.Unmarshal(r.bs[r.n:])
	r.n += c
	return v, err
}

func (r *reader) str() (string, error) {
	v, c, err := ord.String.Unmarshal(r.bs[r.n:])
	r.n += c
	return v, err
}

// count reads a varint element count and bounds it against the bytes
// actually left, so a corrupt count cannot trigger a huge allocation.
func (r *reader) count() (int, error) {
	v, c, err := varint.Int.Unmarshal(r.bs[r.n:])
	r.n += c
	if err != nil {
		return 0, err
	}
	if v < 0 || v > r.remaining() {
		return 0, fmt.Errorf("count %d out of range", v)
	}
	return v, nil
}

func (r *reader) config() (core.Config, error) {
	var cfg core.Config
	var err error
	if cfg.IncludeNumericTokens, err = r.bool(); err != nil {
		return cfg, err
	}
	if cfg.FoldDiacritics, err = r.bool(); err != nil {
		return cfg, err
	}
	if cfg.NameWeight, err = r.float64(); err != nil {
		return cfg, err
	}
	if cfg.KeywordWeight, err = r.float64(); err != nil {
		return cfg, err
	}
	if cfg.PositionDecay, err = r.float64(); err != nil {
		return cfg, err
	}
	if cfg.FullMatchBonus, err = r.float64(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (r *reader) entry(e *core.EmojiEntry) error {
	id, err := r.uint32()
	if err != nil {
		return err
	}
	e.Id = core.ID(id)
	if e.Symbol, err = r.str(); err != nil {
		return err
	}
	if e.Name, err = r.str(); err != nil {
		return err
	}
	nkw, err := r.count()
	if err != nil {
		return err
	}
	if nkw > 0 {
		e.Keywords = make([]string, nkw)
		for i := range e.Keywords {
			if e.Keywords[i], err = r.str(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *reader) posting(p *index.Posting) error {
	id, err := r.uint32()
	if err != nil {
		return err
	}
	p.Id = core.ID(id)
	if p.Weight, err = r.float64(); err != nil {
		return err
	}
	freq, err := r.uint32()
	if err != nil {
		return err
	}
	p.Freq = freq
	return nil
}
