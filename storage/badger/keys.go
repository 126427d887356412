package badger

import "fmt"

// Key prefixes for different data types
const (
	snapshotBlobPrefix = "snapblob"
	snapshotMetaPrefix = "snapmeta"
)

// makeSnapshotBlobKey generates a key for a snapshot blob by name.
func makeSnapshotBlobKey(name string) []byte {
	return []byte(fmt.Sprintf("%s:%s", snapshotBlobPrefix, name))
}

// makeSnapshotMetaKey generates a key for snapshot metadata by name.
func makeSnapshotMetaKey(name string) []byte {
	return []byte(fmt.Sprintf("%s:%s", snapshotMetaPrefix, name))
}
