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


// Package bind exposes the search engine to foreign callers through a
// plain-data API.
//
// Nothing here hands out a Go pointer. Snapshots cross the boundary as
// byte slices, loaded indexes are identified by opaque uint64 handles
// into a process-owned registry, and results come back as value-only
// Match rows. Handles stay valid until released and are never reused.
package bind
