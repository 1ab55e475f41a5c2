package services

import "context"

type contextKey string

const (
	runIDKey    contextKey = "run_id"
	siteKey     contextKey = "site"
	personIDKey contextKey = "person_id"
	personKey   contextKey = "person"
)

// WithRunID annotates context with the collection run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the collection run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithSite annotates context with the broker site key.
func WithSite(ctx context.Context, site string) context.Context {
	if site == "" {
		return ctx
	}
	return context.WithValue(ctx, siteKey, site)
}

// SiteFromContext returns the site key if present.
func SiteFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(siteKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithPerson annotates context with the roster row and display name being
// processed. A zero id means the person is not stored in the roster.
func WithPerson(ctx context.Context, id int64, name string) context.Context {
	if id != 0 {
		ctx = context.WithValue(ctx, personIDKey, id)
	}
	if name != "" {
		ctx = context.WithValue(ctx, personKey, name)
	}
	return ctx
}

// PersonIDFromContext extracts the roster row identifier if present.
func PersonIDFromContext(ctx context.Context) (int64, bool) {
	switch val := ctx.Value(personIDKey).(type) {
	case int64:
		return val, true
	case int:
		return int64(val), true
	default:
		return 0, false
	}
}

// PersonFromContext returns the display name of the person if present.
func PersonFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(personKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}
