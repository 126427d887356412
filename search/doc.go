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


// Package search provides ranked keyword lookup over an emoji index.
//
// The Searcher type implements a staged matching algorithm:
//   - Exact symbol resolution for queries that are an emoji verbatim
//   - Weighted keyword scoring over the index posting lists
//   - Forgiving fallbacks through word stems and token prefixes
//
// Scores combine field weight, occurrence count and token rarity;
// results are ordered best first with stable tie-breaking, so the same
// query against the same index always returns the same ranking.
package search
