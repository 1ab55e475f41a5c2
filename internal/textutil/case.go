package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CollapseSpace trims value and replaces every run of whitespace with a single
// space.
func CollapseSpace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// TitleCase collapses whitespace and title-cases every word.
func TitleCase(value string) string {
	value = CollapseSpace(value)
	if value == "" {
		return ""
	}
	return cases.Title(language.Und).String(value)
}

// UpperCase collapses whitespace and upper-cases the result.
func UpperCase(value string) string {
	return strings.ToUpper(CollapseSpace(value))
}
