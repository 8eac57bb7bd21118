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


package embedding

import "errors"

var (
	// ErrEmbeddingRepositoryRequired is returned when an embedding repository is not provided.
	ErrEmbeddingRepositoryRequired = errors.New("embedding repository required")

	// ErrProfileRepositoryRequired is returned when a profile repository is not provided.
	ErrProfileRepositoryRequired = errors.New("profile repository required")

	// ErrUnavailable is returned when no embedding provider is configured.
	ErrUnavailable = errors.New("semantic search unavailable")

	// ErrInvalidCacheSize is returned when a non-positive cache size is requested.
	ErrInvalidCacheSize = errors.New("cache size must be positive")

	// ErrEmptyVector is returned when the provider answers with no vector data.
	ErrEmptyVector = errors.New("embedder returned an empty vector")
)
