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


// Package search provides hybrid retrieval over student profiles.
//
// The Searcher type combines two independent methods:
//   - Keyword search against the full-text index
//   - Semantic search against the embedding store
//
// When both methods run, their scores are normalized, blended by weight and
// boosted on agreement. A failing method degrades the request to the
// surviving one rather than failing it; only a keyword failure with nothing
// left to serve is returned to the caller.
package search
