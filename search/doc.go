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


// Package search resolves free-text queries against the campus dataset.
//
// Two paths exist: a semantic path that embeds the query and ranks hits
// from the vector index by cosine similarity, and a deterministic keyword
// path that filters each category by normalized substring matching. The
// Engine tries the semantic path when available and falls back to the
// keyword path on failure, timeout or empty results. Once demoted to
// keyword-only, an engine never retries the semantic path.
package search
