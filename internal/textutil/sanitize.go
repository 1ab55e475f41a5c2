package textutil

import (
	"strings"
	"unicode"
)

// SanitizeFileName makes name safe as a single path segment. Path separators,
// colons, and asterisks become dashes; other characters reserved on common
// filesystems are dropped, as are control characters.
func SanitizeFileName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`/\:*`, r):
			return '-'
		case strings.ContainsRune(`?"<>|`, r), unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, name)
	return strings.TrimSpace(name)
}

// SanitizeToken lower-cases value and keeps only ASCII letters, digits,
// dashes, and underscores; anything else becomes an underscore. Leading and
// trailing separators are trimmed and an empty result becomes "unknown".
func SanitizeToken(value string) string {
	token := strings.Map(func(r rune) rune {
		r = unicode.ToLower(r)
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(value))
	if token = strings.Trim(token, "_-"); token == "" {
		return "unknown"
	}
	return token
}
