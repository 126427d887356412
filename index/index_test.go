package index

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/emojit/core"
)

func TestIndex_Lookups(t *testing.T) {
	idx, err := Build(heartCatalog(), core.DefaultConfig())
	require.NoError(t, err)

	entry, ok := idx.Entry(2)
	require.True(t, ok)
	assert.Equal(t, "💔", entry.Symbol)

	_, ok = idx.Entry(99)
	assert.False(t, ok)

	entry, ok = idx.EntryBySymbol("❤️")
	require.True(t, ok)
	assert.Equal(t, core.ID(1), entry.Id)

	_, ok = idx.EntryBySymbol("🔥")
	assert.False(t, ok)

	assert.Nil(t, idx.Postings("zzz"))
	assert.Equal(t, uint32(0), idx.DocumentFrequency("zzz"))
}

func TestIndex_DuplicateSymbolLowestIdWins(t *testing.T) {
	entries := []core.EmojiEntry{
		{Id: 4, Symbol: "🔥", Name: "fire", Keywords: []string{"hot"}},
		{Id: 2, Symbol: "🔥", Name: "flame", Keywords: []string{"burn"}},
	}

	idx, err := Build(entries, core.DefaultConfig())
	require.NoError(t, err)

	entry, ok := idx.EntryBySymbol("🔥")
	require.True(t, ok)
	assert.Equal(t, core.ID(2), entry.Id)
}

func TestRestore_RoundTrip(t *testing.T) {
	built, err := Build(heartCatalog(), core.DefaultConfig())
	require.NoError(t, err)

	restored, err := Restore(built.cfg, built.fingerprint, built.entries, built.postings, built.docFreq)
	require.NoError(t, err)

	assert.Equal(t, built, restored)
}

func TestRestore_Invalid(t *testing.T) {
	built, err := Build(heartCatalog(), core.DefaultConfig())
	require.NoError(t, err)

	clonePostings := func() map[string][]Posting {
		m := make(map[string][]Posting, len(built.postings))
		for tok, list := range built.postings {
			cp := make([]Posting, len(list))
			copy(cp, list)
			m[tok] = cp
		}
		return m
	}
	cloneDocFreq := func() map[string]uint32 {
		m := make(map[string]uint32, len(built.docFreq))
		for tok, df := range built.docFreq {
			m[tok] = df
		}
		return m
	}

	t.Run("no entries", func(t *testing.T) {
		_, err := Restore(built.cfg, built.fingerprint, nil, clonePostings(), cloneDocFreq())
		assert.ErrorIs(t, err, core.ErrEmptyCatalog)
	})

	t.Run("entries out of order", func(t *testing.T) {
		entries := []core.EmojiEntry{built.entries[1], built.entries[0]}
		_, err := Restore(built.cfg, built.fingerprint, entries, clonePostings(), cloneDocFreq())
		assert.Error(t, err)
	})

	t.Run("dangling posting id", func(t *testing.T) {
		postings := clonePostings()
		postings["heart"][0].Id = 99
		_, err := Restore(built.cfg, built.fingerprint, built.entries, postings, cloneDocFreq())
		assert.Error(t, err)
	})

	t.Run("posting list out of order", func(t *testing.T) {
		postings := clonePostings()
		list := postings["heart"]
		list[0], list[1] = list[1], list[0]
		_, err := Restore(built.cfg, built.fingerprint, built.entries, postings, cloneDocFreq())
		assert.Error(t, err)
	})

	t.Run("document frequency mismatch", func(t *testing.T) {
		docFreq := cloneDocFreq()
		docFreq["heart"] = 7
		_, err := Restore(built.cfg, built.fingerprint, built.entries, clonePostings(), docFreq)
		assert.Error(t, err)
	})

	t.Run("missing document frequency token", func(t *testing.T) {
		docFreq := cloneDocFreq()
		delete(docFreq, "heart")
		docFreq["bogus"] = 1
		_, err := Restore(built.cfg, built.fingerprint, built.entries, clonePostings(), docFreq)
		assert.Error(t, err)
	})
}

func TestProgressTracker(t *testing.T) {
	tracker := NewProgressTracker(nil, 10, 3)

	for i := 0; i < 10; i++ {
		tracker.Increment(1)
	}

	assert.Equal(t, 10, tracker.Current())
	assert.GreaterOrEqual(t, tracker.Elapsed(), time.Duration(0))
}
