package names

import (
	"strings"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/textutil"
)

// SplitRecordName splits a broker record's display name on whitespace. The
// first token is the first name, the last token the last name, and interior
// tokens are concatenated with no separator. A single token is both first and
// last name. Casing is preserved.
func SplitRecordName(name string) (first, middle, last string) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "", "", ""
	}
	first = tokens[0]
	last = tokens[len(tokens)-1]
	if len(tokens) > 2 {
		middle = strings.Join(tokens[1:len(tokens)-1], "")
	}
	return first, middle, last
}

// SplitRelativeName splits a relative mention into title-cased parts. Interior
// tokens are joined with a single space. A single token is both given and
// family name.
func SplitRelativeName(name string) (given, middle, family string) {
	tokens := strings.Fields(textutil.TitleCase(name))
	if len(tokens) == 0 {
		return "", "", ""
	}
	given = tokens[0]
	family = tokens[len(tokens)-1]
	if len(tokens) > 2 {
		middle = strings.Join(tokens[1:len(tokens)-1], " ")
	}
	return given, middle, family
}
