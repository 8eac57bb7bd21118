// Package backfill generates embeddings for profiles that do not have
// them yet, typically after an embedding provider is first configured for
// an existing population.
//
// Runs are rate limited to stay inside provider quotas, retried with
// exponential backoff on transient failures, and checkpointed after every
// batch so an interrupted run resumes where it stopped instead of
// re-embedding finished profiles.
package backfill
