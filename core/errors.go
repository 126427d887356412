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


package core

import "errors"

// Engine error kinds. Build, decode and searcher construction failures
// wrap exactly one of these, so callers can tell them apart with
// errors.Is and decide how to react (e.g. rebuild from the catalog when
// a snapshot fails to decode).
var (
	// ErrDuplicateEntryID indicates two catalog entries share an id.
	ErrDuplicateEntryID = errors.New("duplicate entry id")

	// ErrEmptyCatalog indicates an index build over zero entries.
	ErrEmptyCatalog = errors.New("empty catalog")

	// ErrConfigMismatch indicates a query-side config that differs from
	// the config the index was built with.
	ErrConfigMismatch = errors.New("tokenizer config mismatch")

	// ErrCorruptSnapshot indicates malformed or truncated snapshot bytes.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")

	// ErrVersionMismatch indicates a snapshot encoded with an
	// unsupported format version.
	ErrVersionMismatch = errors.New("snapshot version mismatch")
)

// Domain validation errors
var (
	// ErrInvalidEntry indicates an EmojiEntry failed validation.
	ErrInvalidEntry = errors.New("invalid emoji entry")

	// ErrEmptySymbol indicates the Symbol field is empty.
	ErrEmptySymbol = errors.New("symbol cannot be empty")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrInvalidConfig indicates a Config failed validation.
	ErrInvalidConfig = errors.New("invalid config")
)
