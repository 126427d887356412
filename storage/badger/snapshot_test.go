package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/emojit/catalog"
	"github.com/poiesic/emojit/core"
	"github.com/poiesic/emojit/index"
	"github.com/poiesic/emojit/snapshot"
	"github.com/poiesic/emojit/storage"
)

func newTestStore(t *testing.T) storage.SnapshotRepository {
	t.Helper()
	repo, backend, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func sampleMeta() storage.SnapshotMeta {
	return storage.SnapshotMeta{
		Fingerprint:   0xfeedface,
		FormatVersion: snapshot.FormatVersion,
		EntryCount:    3,
		TokenCount:    12,
	}
}

func TestSnapshotRepository_SaveLoad(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()
	blob := []byte("snapshot bytes")

	saved, err := repo.Save(ctx, "default", blob, sampleMeta())
	require.NoError(t, err)
	assert.Equal(t, "default", saved.Name)
	assert.Equal(t, uint64(len(blob)), saved.Size)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, uint32(3), saved.EntryCount)

	loaded, err := repo.Load(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, blob, loaded)
}

func TestSnapshotRepository_SaveOverwrites(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, "default", []byte("first"), sampleMeta())
	require.NoError(t, err)
	_, err = repo.Save(ctx, "default", []byte("second"), sampleMeta())
	require.NoError(t, err)

	loaded, err := repo.Load(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), loaded)

	metas, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, metas, 1)
}

func TestSnapshotRepository_LoadMissing(t *testing.T) {
	repo := newTestStore(t)

	_, err := repo.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
}

func TestSnapshotRepository_Meta(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()
	blob := []byte("snapshot bytes")

	saved, err := repo.Save(ctx, "default", blob, sampleMeta())
	require.NoError(t, err)

	meta, err := repo.Meta(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, saved.Name, meta.Name)
	assert.Equal(t, saved.Fingerprint, meta.Fingerprint)
	assert.Equal(t, saved.FormatVersion, meta.FormatVersion)
	assert.Equal(t, saved.EntryCount, meta.EntryCount)
	assert.Equal(t, saved.TokenCount, meta.TokenCount)
	assert.True(t, saved.CreatedAt.Equal(meta.CreatedAt))
	assert.Equal(t, saved.Size, meta.Size)
}

func TestSnapshotRepository_MetaMissing(t *testing.T) {
	repo := newTestStore(t)

	_, err := repo.Meta(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
}

func TestSnapshotRepository_List(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	metas, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, metas)

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		_, err := repo.Save(ctx, name, []byte(name), sampleMeta())
		require.NoError(t, err)
	}

	metas, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 3)
	assert.Equal(t, "alpha", metas[0].Name)
	assert.Equal(t, "bravo", metas[1].Name)
	assert.Equal(t, "charlie", metas[2].Name)
}

func TestSnapshotRepository_Delete(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, "default", []byte("blob"), sampleMeta())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "default"))

	_, err = repo.Load(ctx, "default")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
	_, err = repo.Meta(ctx, "default")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	err = repo.Delete(ctx, "default")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
}

func TestSnapshotRepository_EmptyName(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, "", []byte("blob"), sampleMeta())
	assert.ErrorIs(t, err, storage.ErrEmptyName)

	_, err = repo.Load(ctx, "")
	assert.ErrorIs(t, err, storage.ErrEmptyName)

	_, err = repo.Meta(ctx, "")
	assert.ErrorIs(t, err, storage.ErrEmptyName)

	err = repo.Delete(ctx, "")
	assert.ErrorIs(t, err, storage.ErrEmptyName)
}

func TestSnapshotRepository_PersistsAcrossReopen(t *testing.T) {
	tmpDir := t.TempDir()
	ctx := context.Background()
	blob := []byte("durable snapshot")

	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	repo := NewSnapshotRepository(backend)
	_, err = repo.Save(ctx, "default", blob, sampleMeta())
	require.NoError(t, err)
	require.NoError(t, repo.Close())
	require.NoError(t, backend.Close())

	backend, err = OpenBackend(tmpDir, false)
	require.NoError(t, err)
	defer backend.Close()
	repo = NewSnapshotRepository(backend)
	defer repo.Close()

	loaded, err := repo.Load(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, blob, loaded)
}

func TestSnapshotRepository_StoresEncodedIndex(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	entries, err := catalog.Parse([]byte(`[
	  {"symbol": "❤️", "name": "red heart", "keywords": ["love", "heart"]},
	  {"symbol": "⭐", "name": "star", "keywords": ["favorite", "shine"]}
	]`))
	require.NoError(t, err)
	idx, err := index.Build(entries, core.DefaultConfig())
	require.NoError(t, err)
	blob, err := snapshot.Encode(idx)
	require.NoError(t, err)

	saved, err := repo.Save(ctx, "catalog", blob, storage.DescribeIndex(idx))
	require.NoError(t, err)
	assert.Equal(t, idx.Fingerprint(), saved.Fingerprint)
	assert.Equal(t, snapshot.FormatVersion, saved.FormatVersion)
	assert.Equal(t, idx.EntryCount(), saved.EntryCount)
	assert.Equal(t, uint32(idx.TokenCount()), saved.TokenCount)
	assert.Equal(t, uint64(len(blob)), saved.Size)

	loaded, err := repo.Load(ctx, "catalog")
	require.NoError(t, err)
	decoded, err := snapshot.Decode(loaded)
	require.NoError(t, err)
	assert.Equal(t, idx, decoded)
}
