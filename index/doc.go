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


// Package index builds and holds the inverted index over an emoji
// catalog.
//
// Build tokenizes every entry's name and keywords, weights each token
// by the field it came from, and merges the per-entry results into a
// token -> posting-list map. Entries are processed concurrently on a
// worker pool; the merge runs sequentially in entry-id order, so two
// builds of the same catalog and config produce identical indexes no
// matter how many workers ran.
//
// An Index is immutable once built. Any number of goroutines may read
// it concurrently without locking; replacing an index means building a
// new one and swapping the reference.
package index
