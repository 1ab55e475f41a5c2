// Package collector defines the seam between broker adapters and the
// identity-resolution workflow.
//
// A Collector returns one site's search results for a person as
// CandidateRecords. Scraping itself happens elsewhere; CapturedCollector reads
// results an adapter already saved to disk as schema.org Person-shaped JSON or
// YAML and normalizes every shape brokers are known to emit: ids as strings or
// numbers, a single address or a list, aliases as a string or a list, and
// relatives as bare names or partial person objects.
//
// Failures carry services markers. ErrNoRecords means the broker had nothing
// for the person; ErrSiteSchemaChange means the captured data no longer
// matches the expected shape. Both let the workflow skip the site.
package collector
