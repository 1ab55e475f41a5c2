// Package logging assembles structured slog loggers and formatting helpers used
// across the collector, the resolution workflow, and the CLI.
//
// It owns the console/JSON handlers, centralizes level and output plumbing, and
// exposes context-aware helpers so workflow code automatically tags log lines
// with the run ID, site, and person being processed. The package also provides
// a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
