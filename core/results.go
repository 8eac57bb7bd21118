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

import "time"

// Similarity is the explainable outcome of comparing two profiles:
// the weighted score in [0, 1], the unweighted per-feature sub-scores,
// human-readable commonalities, and a coarse match level.
type Similarity struct {
	Score         float64
	Features      map[string]float64
	Commonalities []string
	Level         string
}

// Match pairs a candidate profile with its similarity to the requesting user.
type Match struct {
	Profile    *Profile
	Similarity Similarity
}

// SearchCandidate is a single result produced by one retrieval method
// before merging. Score carries that method's native relevance value.
type SearchCandidate struct {
	ProfileId ID
	Email     string
	FullName  string
	Snippet   string
	Score     float64
}

// SearchHit is a merged retrieval result. KeywordScore and SemanticScore
// are the normalized per-method scores (zero when the method did not
// return the profile), FinalScore is the blended value used for ranking,
// and Methods names the methods that surfaced the profile.
type SearchHit struct {
	ProfileId     ID
	Email         string
	FullName      string
	Snippet       string
	KeywordScore  float64
	SemanticScore float64
	FinalScore    float64
	Methods       []string
}

// SearchResponse is the full outcome of a retrieval request, including
// enough method metadata to explain how the ranking was produced.
type SearchResponse struct {
	Query             string
	Hits              []SearchHit
	TotalFound        int
	MethodsUsed       []string
	SearchMethod      string
	SemanticAvailable bool
	FallbackUsed      bool
	FallbackReason    string
}

// IndexStats describes the lexical index.
type IndexStats struct {
	IndexedProfiles int64
	LastIndexedAt   time.Time
	Path            string
}

// EmbeddingStats describes the embedding store. Available reports whether
// an embedding provider is configured.
type EmbeddingStats struct {
	TotalEmbeddings int64
	LatestUpdate    time.Time
	Available       bool
}

// Capabilities reports which retrieval methods are currently usable.
// HybridSearch requires both underlying methods.
type Capabilities struct {
	KeywordSearch  bool
	SemanticSearch bool
	HybridSearch   bool
}

// Connection is a profile the user has swiped on or been swiped on by,
// annotated with direction flags and a freshly computed similarity.
type Connection struct {
	Profile    *Profile
	LikedByMe  bool
	LikedMe    bool
	Mutual     bool
	Similarity Similarity
}

// ConnectionStats summarizes a connection listing.
type ConnectionStats struct {
	LikedByMe     int
	LikedMe       int
	MutualMatches int
}

// SkillCount is one entry of a skill-frequency aggregation over active
// profiles.
type SkillCount struct {
	Name  string
	Count int64
}

// ConnectionList is the ordered connection listing plus its summary.
type ConnectionList struct {
	Connections []Connection
	Stats       ConnectionStats
}
