package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoRecords        = errors.New("no records")
	ErrSiteSchemaChange = errors.New("site schema change")
	ErrValidation       = errors.New("validation error")
	ErrConfiguration    = errors.New("configuration error")
	ErrNotFound         = errors.New("not found")
	ErrTransient        = errors.New("transient failure")
)

// Wrap builds an error message that includes site context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, site, operation, message string, err error) error {
	detail := buildDetail(site, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Skippable reports whether a collector failure should skip the current site
// instead of aborting the run.
func Skippable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrNoRecords), errors.Is(err, ErrSiteSchemaChange), errors.Is(err, ErrNotFound):
		return true
	default:
		return false
	}
}

// EventType maps an error to the event_type used when logging it.
func EventType(err error) string {
	switch {
	case errors.Is(err, ErrNoRecords):
		return "site_no_records"
	case errors.Is(err, ErrSiteSchemaChange):
		return "site_schema_change"
	case errors.Is(err, ErrNotFound):
		return "site_not_found"
	case errors.Is(err, ErrConfiguration):
		return "configuration_error"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	default:
		return "transient_error"
	}
}

func buildDetail(site, operation, message string) string {
	parts := make([]string, 0, 3)
	if site = strings.TrimSpace(site); site != "" {
		parts = append(parts, site)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
