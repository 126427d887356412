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


// Package snapshot encodes a built index to a versioned binary blob
// and decodes it back without rebuilding anything.
//
// The blob layout is, in order: format version (fixed-width uint32),
// entry count, the build config, the catalog fingerprint, the entries
// in ascending id order, the token -> postings table in token order,
// the document-frequency table in the same token order, and a trailing
// crc32 checksum over everything before it. Counts are varint encoded,
// strings are length-prefixed, floats are fixed-width little endian.
//
// Decoding a blob whose checksum does not verify, or whose sections
// are truncated, misordered or internally inconsistent, fails with
// core.ErrCorruptSnapshot. A blob that verifies but carries a
// different format version fails with core.ErrVersionMismatch; every
// version of this format keeps the leading version field and the
// trailing checksum, which is what makes that distinction possible.
//
// Encoding is deterministic: the same index always produces the same
// bytes, so byte equality of snapshots is catalog+config equality.
package snapshot
