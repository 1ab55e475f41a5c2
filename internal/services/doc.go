// Package services defines shared utilities consumed by the collection
// workflow and the broker collectors.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, site keys, and the person being
//     processed for logging.
//   - Structured error markers plus the Wrap helper, and Skippable which decides
//     whether a collector failure skips a site or aborts the run.
//
// Use these helpers when wiring new collectors so error handling and
// observability stay uniform across sites.
package services
