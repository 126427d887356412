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


package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/emojit/storage"
)

// SnapshotRepository implements storage.SnapshotRepository for BadgerDB.
type SnapshotRepository struct {
	backend *Backend
}

var _ storage.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(backend *Backend) *SnapshotRepository {
	return &SnapshotRepository{
		backend: backend,
	}
}

// Close releases repository resources. The backend is shared and must
// be closed separately.
func (r *SnapshotRepository) Close() error {
	return nil
}

// Save stores a snapshot blob and its metadata under name in a single
// transaction, replacing any snapshot previously stored there.
func (r *SnapshotRepository) Save(ctx context.Context, name string, blob []byte, meta storage.SnapshotMeta) (storage.SnapshotMeta, error) {
	if name == "" {
		return storage.SnapshotMeta{}, storage.ErrEmptyName
	}

	meta.Name = name
	meta.Size = uint64(len(blob))
	meta.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeSnapshotBlobKey(name), blob); err != nil {
			return err
		}
		if err := tx.Set(makeSnapshotMetaKey(name), storage.MarshalMeta(&meta)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return storage.SnapshotMeta{}, err
	}
	return meta, nil
}

// Load retrieves the snapshot blob stored under name.
func (r *SnapshotRepository) Load(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, storage.ErrEmptyName
	}

	var blob []byte
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSnapshotBlobKey(name))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrSnapshotNotFound
			}
			return err
		}
		blob, err = item.ValueCopy(nil)
		return err
	}, false)
	return blob, err
}

// Meta retrieves stored snapshot metadata without reading the blob.
func (r *SnapshotRepository) Meta(ctx context.Context, name string) (storage.SnapshotMeta, error) {
	var meta storage.SnapshotMeta
	if name == "" {
		return meta, storage.ErrEmptyName
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSnapshotMetaKey(name))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrSnapshotNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, unmarshalErr := storage.UnmarshalMeta(val)
			if unmarshalErr != nil {
				return unmarshalErr
			}
			meta = *decoded
			return nil
		})
	}, false)
	return meta, err
}

// List returns metadata for every stored snapshot. BadgerDB iterates
// keys in lexicographic order, so results come back ordered by name.
func (r *SnapshotRepository) List(ctx context.Context) ([]storage.SnapshotMeta, error) {
	var metas []storage.SnapshotMeta
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(snapshotMetaPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				decoded, unmarshalErr := storage.UnmarshalMeta(val)
				if unmarshalErr != nil {
					return unmarshalErr
				}
				metas = append(metas, *decoded)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	return metas, err
}

// Delete removes the snapshot stored under name.
func (r *SnapshotRepository) Delete(ctx context.Context, name string) error {
	if name == "" {
		return storage.ErrEmptyName
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(makeSnapshotBlobKey(name)); err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrSnapshotNotFound
			}
			return err
		}
		if err := tx.Delete(makeSnapshotBlobKey(name)); err != nil {
			return err
		}
		if err := tx.Delete(makeSnapshotMetaKey(name)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
