package services_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrSiteSchemaChange, "spokeo", "decode", "unexpected shape", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrSiteSchemaChange) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"spokeo", "decode", "unexpected shape", "boom"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected placeholder detail, got %q", err.Error())
	}
}

func TestSkippable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"no records", services.Wrap(services.ErrNoRecords, "mylife", "collect", "empty", nil), true},
		{"schema change", fmt.Errorf("outer: %w", services.Wrap(services.ErrSiteSchemaChange, "radaris", "decode", "", nil)), true},
		{"not found", services.ErrNotFound, true},
		{"configuration", services.Wrap(services.ErrConfiguration, "", "load", "bad", nil), false},
		{"plain", errors.New("disk full"), false},
	}
	for _, tc := range cases {
		if got := services.Skippable(tc.err); got != tc.want {
			t.Fatalf("%s: Skippable = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEventType(t *testing.T) {
	if got := services.EventType(services.Wrap(services.ErrNoRecords, "spokeo", "", "", nil)); got != "site_no_records" {
		t.Fatalf("unexpected event type %q", got)
	}
	if got := services.EventType(errors.New("x")); got != "transient_error" {
		t.Fatalf("unexpected event type %q", got)
	}
}
