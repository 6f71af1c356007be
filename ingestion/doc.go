// Package ingestion provides pipeline orchestration for storing and enriching articles.
//
// The Pipeline type manages the ingestion workflow for articles, including:
//   - Validating articles and assigning content-derived IDs
//   - Adding articles to storage
//   - Scoring sentiment asynchronously
//   - Extracting and assigning keywords asynchronously
//
// Enrichment runs on worker pools, batches flowing through sentiment scoring
// and then keyword extraction. Errors during async enrichment are logged but
// do not fail the ingestion operation.
package ingestion
