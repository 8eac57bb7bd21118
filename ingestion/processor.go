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


package ingestion

import (
	"context"

	"github.com/poiesic/peermatch/core"
)

// processor is an internal interface for profile enrichment tasks.
// Implementations re-read the identified profiles and bring their target
// (the search index or the embedding store) in line with the profiles'
// current state, so a profile deleted between dispatch and processing is
// cleaned up rather than re-published.
type processor interface {
	// process synchronizes the enrichment target for the given profile IDs.
	process(ctx context.Context, ids ...core.ID) error
}
