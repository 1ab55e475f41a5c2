package region

import (
	"strings"
	"testing"
)

func TestEquivalentReflexiveAndSymmetric(t *testing.T) {
	values := make([]string, 0, len(names)*2)
	for code, name := range names {
		values = append(values, code, name)
	}
	for _, a := range values {
		if !Equivalent(a, a) {
			t.Fatalf("Equivalent(%q, %q) = false, want true", a, a)
		}
		for _, b := range values {
			if Equivalent(a, b) != Equivalent(b, a) {
				t.Fatalf("Equivalent not symmetric for %q / %q", a, b)
			}
		}
	}
}

func TestEquivalentCodeAndName(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"CA", "California", true},
		{"california", "ca", true},
		{"ca", "CA", true},
		{" tx ", "Texas", true},
		{"DC", "District of Columbia", true},
		{"new  york", "NY", true},
		{"CA", "Nevada", false},
		{"CA", "NV", false},
		{"California", "Texas", false},
	}
	for _, tt := range tests {
		if got := Equivalent(tt.a, tt.b); got != tt.want {
			t.Errorf("Equivalent(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEquivalentUnknownCodesUseLiteralEquality(t *testing.T) {
	if !Equivalent("ON", "on") {
		t.Fatal("expected unknown codes to match themselves case-insensitively")
	}
	if Equivalent("ON", "Ontario") {
		t.Fatal("unknown code should not expand")
	}
	if Equivalent("ZZ", "") {
		t.Fatal("unknown code should not match empty value")
	}
}

func TestExpandAndAbbreviateRoundTrip(t *testing.T) {
	for _, code := range Codes() {
		name, ok := Expand(strings.ToLower(code))
		if !ok {
			t.Fatalf("Expand(%q) missing", code)
		}
		back, ok := Abbreviate(name)
		if !ok || back != code {
			t.Fatalf("Abbreviate(%q) = %q, %v; want %q", name, back, ok, code)
		}
	}
	if _, ok := Expand("XX"); ok {
		t.Fatal("expected unknown code to be absent")
	}
}
