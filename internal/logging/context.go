package logging

import (
	"context"
	"log/slog"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for collection run identifiers.
	FieldRunID = "run_id"
	// FieldSite is the standardized structured logging key for broker site keys.
	FieldSite = "site"
	// FieldPerson is the standardized structured logging key for the person being processed.
	FieldPerson = "person"
	// FieldPersonID is the standardized structured logging key for roster row identifiers.
	FieldPersonID = "person_id"
	// FieldRecordID is the standardized structured logging key for broker record identifiers.
	FieldRecordID = "record_id"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step for an operator reading a warning.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldDecisionType names the kind of decision a log line records.
	FieldDecisionType = "decision_type"
	// FieldAlert flags warnings or anomalies that should stand out in structured logs.
	FieldAlert = "alert"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 4)
	if rid, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, rid))
	}
	if id, ok := services.PersonIDFromContext(ctx); ok {
		fields = append(fields, slog.Int64(FieldPersonID, id))
	}
	if person, ok := services.PersonFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldPerson, person))
	}
	if site, ok := services.SiteFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSite, site))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
