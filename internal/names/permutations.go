package names

import "strings"

// Permutations returns the candidate full-name strings for the given parts in
// a deterministic order with duplicates removed. Inputs are used as given;
// callers lower-case through NewSet when comparing.
func Permutations(first, middle, last string) []string {
	b := newBuilder(8 + 2*runeLen(first) + 2*runeLen(last) + 3*runeLen(middle))
	b.addBase(first, middle, last)

	for _, prefix := range prefixes(first) {
		b.add(prefix + " " + last)
		b.add(last + " " + prefix)
	}
	for _, prefix := range prefixes(last) {
		b.add(first + " " + prefix)
		b.add(prefix + " " + first)
	}
	for _, prefix := range prefixes(middle) {
		b.add(first + " " + prefix)
		b.add(prefix + " " + first)
		b.add(first + " " + prefix + " " + last)
	}
	return b.values
}

// Base returns only the full-name combinations of the parts, without the
// truncated forms Permutations adds. A record name in this set is a literal
// match for the person.
func Base(first, middle, last string) []string {
	b := newBuilder(8)
	b.addBase(first, middle, last)
	return b.values
}

func (b *builder) addBase(first, middle, last string) {
	b.add(first + " " + last)
	b.add(last + " " + first)
	b.add(first + " " + middle)
	b.add(middle + " " + last)
	b.add(first + " " + middle + " " + last)
	b.add(first + " " + middle + "-" + last)
	b.add(first + middle + " " + last)
	b.add(first + " " + middle + last)
}

// prefixes returns value[:i] for every rune count i in [0, len(value)).
func prefixes(value string) []string {
	runes := []rune(value)
	out := make([]string, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		out = append(out, string(runes[:i]))
	}
	return out
}

func runeLen(value string) int {
	return len([]rune(value))
}

type builder struct {
	seen   map[string]struct{}
	values []string
}

func newBuilder(capacity int) *builder {
	return &builder{
		seen:   make(map[string]struct{}, capacity),
		values: make([]string, 0, capacity),
	}
}

func (b *builder) add(value string) {
	if _, ok := b.seen[value]; ok {
		return
	}
	b.seen[value] = struct{}{}
	b.values = append(b.values, value)
}

// Set is a lower-cased membership set of name renderings.
type Set map[string]struct{}

// NewSet lower-cases values into a Set.
func NewSet(values ...string) Set {
	set := make(Set, len(values))
	for _, value := range values {
		set[strings.ToLower(value)] = struct{}{}
	}
	return set
}

// Has reports whether value, lower-cased, is in the set.
func (s Set) Has(value string) bool {
	_, ok := s[strings.ToLower(value)]
	return ok
}

// Intersects reports whether s and other share at least one member.
func (s Set) Intersects(other Set) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for value := range small {
		if _, ok := large[value]; ok {
			return true
		}
	}
	return false
}
