// Package enrich provides batch re-enrichment of an existing article corpus,
// rescoring sentiment and re-extracting keywords after a model or prompt
// change.
//
// The package supports batch processing of articles in publication order,
// progress tracking, retry with exponential backoff, and a per-user resume
// cursor so an interrupted run picks up where it stopped.
package enrich
