package matching

import (
	"strings"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/names"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/region"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/textutil"
)

// Classify compares a broker record with the target identity.
//
// A literal name match (the record's display name is one of the identity's
// full-name combinations from names.Base) yields MatchPerson or
// MismatchLocality depending on the record's current address. Truncated and
// initialed forms are never literal: the record's own permutations are
// intersected with the identity's full permutation set, and any overlap is
// MatchAKA.
func Classify(person identity.Identity, record identity.CandidateRecord) Classification {
	recordName := strings.ToLower(textutil.CollapseSpace(record.Name))
	if recordName == "" {
		return MismatchName
	}

	literal := names.NewSet(names.Base(person.GivenName, person.MiddleName, person.FamilyName)...)

	if !literal.Has(recordName) {
		personAkas := names.NewSet(names.Permutations(person.GivenName, person.MiddleName, person.FamilyName)...)
		first, middle, last := names.SplitRecordName(recordName)
		siteAkas := names.NewSet(names.Permutations(first, middle, last)...)
		if siteAkas.Intersects(personAkas) {
			return MatchAKA
		}
		return MismatchName
	}

	if SameLocation(person, record.CurrentAddress()) {
		return MatchPerson
	}
	return MismatchLocality
}

// SameLocation reports whether addr is in the identity's locality and region.
// An address missing either field never matches.
func SameLocation(person identity.Identity, addr identity.Address) bool {
	locality := textutil.CollapseSpace(addr.Locality)
	if locality == "" || strings.TrimSpace(addr.Region) == "" {
		return false
	}
	if !region.Equivalent(addr.Region, person.AddressRegion) {
		return false
	}
	return strings.EqualFold(locality, textutil.CollapseSpace(person.AddressLocality))
}
