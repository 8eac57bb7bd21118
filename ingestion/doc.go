// Package ingestion provides pipeline orchestration for profile writes.
//
// The Pipeline type manages the ingestion workflow for student profiles,
// including:
//   - Validating and upserting profiles to storage
//   - Regenerating search documents asynchronously
//   - Upserting embeddings asynchronously
//
// Processing is performed concurrently using worker pools. The profile
// write is durable before Ingest returns; enrichment is eventual, and
// errors during async processing are logged but do not fail the
// ingestion operation.
package ingestion
