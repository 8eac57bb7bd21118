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


// Package sqlite implements the lexical search index on SQLite FTS5.
//
// The Index type satisfies storage.SearchIndex. Documents are stored twice:
// a base search_documents row for stats and replacement bookkeeping, and
// FTS5 postings in search_fts (porter unicode61 tokenizer). Indexing a
// profile deletes its old postings before reinserting, so the index never
// accumulates stale terms for edited profiles.
//
// Queries are expanded through a configurable synonym map, each term quoted
// so user input can never change the MATCH syntax, and OR-joined. Rows the
// engine matches are re-ranked by a crude occurrence count of the raw query
// terms, which the hybrid retriever then normalizes against the semantic
// signal.
//
// The schema is managed by golang-migrate over migrations embedded in the
// binary. Builds default to the pure Go driver (modernc.org/sqlite); the
// sqlite_cgo tag selects mattn/go-sqlite3 instead.
package sqlite
