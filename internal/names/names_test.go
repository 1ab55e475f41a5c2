package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutationsContainsBothOrders(t *testing.T) {
	cases := [][3]string{
		{"john", "", "smith"},
		{"mary", "ann", "lee"},
		{"Zoë", "", "Ødegaard"},
		{"a", "b", "c"},
	}
	for _, c := range cases {
		perms := NewSet(Permutations(c[0], c[1], c[2])...)
		assert.True(t, perms.Has(c[0]+" "+c[2]), "missing first-last for %v", c)
		assert.True(t, perms.Has(c[2]+" "+c[0]), "missing last-first for %v", c)
	}
}

func TestPermutationsDeterministic(t *testing.T) {
	a := Permutations("john", "quincy", "adams")
	b := Permutations("john", "quincy", "adams")
	require.Equal(t, a, b)
}

func TestPermutationsBaseCombinations(t *testing.T) {
	perms := NewSet(Permutations("john", "quincy", "adams")...)
	for _, want := range []string{
		"john adams",
		"adams john",
		"john quincy",
		"quincy adams",
		"john quincy adams",
		"john quincy-adams",
		"johnquincy adams",
		"john quincyadams",
	} {
		assert.True(t, perms.Has(want), "missing %q", want)
	}
}

func TestBaseExcludesTruncatedForms(t *testing.T) {
	base := NewSet(Base("john", "", "smith")...)
	assert.True(t, base.Has("john smith"))
	assert.True(t, base.Has("smith john"))
	assert.False(t, base.Has("j smith"))
	assert.False(t, base.Has("smith j"))

	perms := NewSet(Permutations("john", "", "smith")...)
	for value := range base {
		assert.True(t, perms.Has(value), "base value %q missing from permutations", value)
	}
}

func TestPermutationsTruncation(t *testing.T) {
	perms := NewSet(Permutations("john", "quincy", "adams")...)

	assert.True(t, perms.Has("j adams"))
	assert.True(t, perms.Has("jo adams"))
	assert.True(t, perms.Has("adams joh"))
	assert.True(t, perms.Has("john a"))
	assert.True(t, perms.Has("ada john"))
	assert.True(t, perms.Has("john q adams"))
	assert.True(t, perms.Has("qui john"))
	assert.True(t, perms.Has(" adams"), "zero-length prefix is included")

	// Truncation stops one rune short of the full value.
	assert.False(t, perms.Has("adams john quincy"))
	assert.False(t, perms.Has("j a"))
}

func TestPermutationsNoDuplicates(t *testing.T) {
	perms := Permutations("ann", "", "ann")
	seen := map[string]bool{}
	for _, p := range perms {
		require.False(t, seen[p], "duplicate %q", p)
		seen[p] = true
	}
}

func TestPermutationsTruncatesRunes(t *testing.T) {
	perms := NewSet(Permutations("Élodie", "", "Roy")...)
	assert.True(t, perms.Has("é roy"))
}

func TestSetIntersects(t *testing.T) {
	a := NewSet("John Smith", "Smith John")
	b := NewSet("SMITH JOHN")
	c := NewSet("jane doe")
	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))
	assert.False(t, a.Intersects(c))
	assert.False(t, NewSet().Intersects(a))
}

func TestSplitRecordNameConcatenatesInterior(t *testing.T) {
	tests := []struct {
		in                  string
		first, middle, last string
	}{
		{"", "", "", ""},
		{"   ", "", "", ""},
		{"Cher", "Cher", "", "Cher"},
		{"John Smith", "John", "", "Smith"},
		{"John  Q   Smith", "John", "Q", "Smith"},
		{"Mary Ann Beth Lee", "Mary", "AnnBeth", "Lee"},
	}
	for _, tt := range tests {
		first, middle, last := SplitRecordName(tt.in)
		assert.Equal(t, [3]string{tt.first, tt.middle, tt.last}, [3]string{first, middle, last}, "input %q", tt.in)
	}
}

func TestSplitRelativeNameJoinsInteriorWithSpace(t *testing.T) {
	tests := []struct {
		in                    string
		given, middle, family string
	}{
		{"", "", "", ""},
		{"alfred pennyworth", "Alfred", "", "Pennyworth"},
		{"MARY ANN BETH LEE", "Mary", "Ann Beth", "Lee"},
		{"prince", "Prince", "", "Prince"},
	}
	for _, tt := range tests {
		given, middle, family := SplitRelativeName(tt.in)
		assert.Equal(t, [3]string{tt.given, tt.middle, tt.family}, [3]string{given, middle, family}, "input %q", tt.in)
	}
}
