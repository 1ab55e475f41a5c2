// Package matching scores a broker record against the person being searched
// for. Classify is a pure function of its inputs and the static region table.
package matching

// Classification is an ordered confidence label; higher values are stronger
// matches.
type Classification int

const (
	// MismatchName means no plausible rendering of the name matched.
	MismatchName Classification = iota
	// MismatchLocality means the literal name matched but the location did not.
	MismatchLocality
	// MatchAKA means an alias or truncated rendering matched, not the literal name.
	MatchAKA
	// MatchPerson means the literal name and the current location both matched.
	MatchPerson
)

func (c Classification) String() string {
	switch c {
	case MismatchName:
		return "MISMATCH_NAME"
	case MismatchLocality:
		return "MISMATCH_LOCALITY"
	case MatchAKA:
		return "MATCH_AKA"
	case MatchPerson:
		return "MATCH_PERSON"
	default:
		return "UNKNOWN"
	}
}

// NeedsConfirmation reports whether a human (or policy) must decide the record.
func (c Classification) NeedsConfirmation() bool {
	return c == MismatchLocality || c == MatchAKA
}
