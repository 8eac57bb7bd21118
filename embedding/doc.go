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


// Package embedding generates, persists and queries profile embeddings.
//
// The Store type turns search documents into provider vectors and answers
// similarity queries over them:
//   - Content hashing skips the provider when a document has not changed
//   - Query vectors are cached in an LRU keyed by content hash
//   - A query that finds too few matches above the primary threshold is
//     widened once to a lower floor, up to a hard result cap
//
// The store works without an embedding provider; it then reports itself
// unavailable and callers fall back to keyword retrieval.
package embedding
