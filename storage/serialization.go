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


package storage

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MarshalMeta serializes snapshot metadata to bytes.
// Timestamps are stored at microsecond precision.
func MarshalMeta(meta *SnapshotMeta) []byte {
	size := ord.String.Size(meta.Name)
	size += raw.Uint64.Size(meta.Fingerprint)
	size += raw.Uint32.Size(meta.FormatVersion)
	size += varint.Uint32.Size(meta.EntryCount)
	size += varint.Uint32.Size(meta.TokenCount)
	size += raw.Int64.Size(meta.CreatedAt.UnixMicro())
	size += varint.Uint64.Size(meta.Size)

	buf := make([]byte, size)
	n := ord.String.Marshal(meta.Name, buf)
	n += raw.Uint64.Marshal(meta.Fingerprint, buf[n:])
	n += raw.Uint32.Marshal(meta.FormatVersion, buf[n:])
	n += varint.Uint32.Marshal(meta.EntryCount, buf[n:])
	n += varint.Uint32.Marshal(meta.TokenCount, buf[n:])
	n += raw.Int64.Marshal(meta.CreatedAt.UnixMicro(), buf[n:])
	varint.Uint64.Marshal(meta.Size, buf[n:])
	return buf
}

// UnmarshalMeta deserializes snapshot metadata from bytes.
func UnmarshalMeta(data []byte) (*SnapshotMeta, error) {
	var meta SnapshotMeta
	n := 0

	name, c, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	meta.Name = name
	n += c

	meta.Fingerprint, c, err = raw.Uint64.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += c

	meta.FormatVersion, c, err = raw.Uint32.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += c

	meta.EntryCount, c, err = varint.Uint32.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += c

	meta.TokenCount, c, err = varint.Uint32.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += c

	createdAt, c, err := raw.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	meta.CreatedAt = time.UnixMicro(createdAt).UTC()
	n += c

	meta.Size, _, err = varint.Uint64.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	return &meta, nil
}
