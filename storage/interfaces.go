package storage

import (
	"context"
	"time"

	"github.com/poiesic/emojit/index"
	"github.com/poiesic/emojit/snapshot"
)

// SnapshotMeta describes a stored snapshot without decoding its blob.
type SnapshotMeta struct {
	Name          string
	Fingerprint   uint64
	FormatVersion uint32
	EntryCount    uint32
	TokenCount    uint32
	CreatedAt     time.Time
	Size          uint64
}

// DescribeIndex fills the index-derived fields of a SnapshotMeta.
// Name, CreatedAt and Size are stamped by the repository on Save.
func DescribeIndex(idx *index.Index) SnapshotMeta {
	return SnapshotMeta{
		Fingerprint:   idx.Fingerprint(),
		FormatVersion: snapshot.FormatVersion,
		EntryCount:    idx.EntryCount(),
		TokenCount:    uint32(idx.TokenCount()),
	}
}

// SnapshotRepository stores encoded snapshot blobs by name.
// Implementations must be thread-safe and support concurrent access.
type SnapshotRepository interface {
	// Save stores a snapshot blob and its metadata under name,
	// replacing any snapshot previously stored under that name.
	// The repository stamps Name, Size and CreatedAt on the metadata
	// and returns the record as stored.
	Save(ctx context.Context, name string, blob []byte, meta SnapshotMeta) (SnapshotMeta, error)

	// Load retrieves the snapshot blob stored under name.
	// Returns ErrSnapshotNotFound if no snapshot has that name.
	Load(ctx context.Context, name string) ([]byte, error)

	// Meta retrieves metadata for a stored snapshot without reading
	// the blob. Returns ErrSnapshotNotFound if no snapshot has that name.
	Meta(ctx context.Context, name string) (SnapshotMeta, error)

	// List returns metadata for every stored snapshot, ordered by name.
	List(ctx context.Context) ([]SnapshotMeta, error)

	// Delete removes the snapshot stored under name.
	// Returns ErrSnapshotNotFound if no snapshot has that name.
	Delete(ctx context.Context, name string) error

	// Close closes the repository and releases resources.
	Close() error
}
