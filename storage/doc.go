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


// Package storage provides the persistence abstraction for snapshot
// blobs.
//
// The index itself never touches storage. A snapshot is encoded once,
// handed here as opaque bytes and stored whole under a caller-chosen
// name together with a small metadata record, so callers can list and
// inspect stored snapshots without decoding them. There is no
// incremental persistence: a snapshot is replaced in full or not at
// all.
//
// # Architecture
//
// The package follows the repository pattern:
//
//   - SnapshotRepository: named whole-blob save, load, list, delete
//   - SnapshotMeta: per-snapshot metadata stored beside the blob
//
// Backends implement SnapshotRepository; the storage/badger package
// provides the BadgerDB implementation.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context. Pass
// context.Background() for operations without specific timeout
// requirements.
package storage
