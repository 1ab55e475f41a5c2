package identity

import (
	"strings"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/textutil"
)

// Identity is the person being searched for.
type Identity struct {
	GivenName       string     `json:"givenName"`
	MiddleName      string     `json:"middleName"`
	FamilyName      string     `json:"familyName"`
	AddressLocality string     `json:"addressLocality"`
	AddressRegion   string     `json:"addressRegion"`
	CheckRelatives  bool       `json:"checkRelatives"`
	IgnoreList      IgnoreList `json:"ignore"`
}

// FullName joins the non-empty name parts with single spaces.
func (i Identity) FullName() string {
	return textutil.CollapseSpace(strings.Join([]string{i.GivenName, i.MiddleName, i.FamilyName}, " "))
}

// Location renders "Locality, Region" omitting empty parts.
func (i Identity) Location() string {
	return formatLocation(i.AddressLocality, i.AddressRegion)
}

// Normalize title-cases name and locality fields and upper-cases the region,
// matching how roster entries are stored.
func (i *Identity) Normalize() {
	i.GivenName = textutil.TitleCase(i.GivenName)
	i.MiddleName = textutil.TitleCase(i.MiddleName)
	i.FamilyName = textutil.TitleCase(i.FamilyName)
	i.AddressLocality = textutil.TitleCase(i.AddressLocality)
	i.AddressRegion = textutil.UpperCase(i.AddressRegion)
}

// Roster is the set of identities already being tracked.
type Roster []Identity

// Contains reports whether any roster entry has the given (given, family)
// name pair. Comparison ignores case and surrounding whitespace.
func (r Roster) Contains(given, family string) bool {
	given = textutil.CollapseSpace(given)
	family = textutil.CollapseSpace(family)
	for _, entry := range r {
		if strings.EqualFold(textutil.CollapseSpace(entry.GivenName), given) &&
			strings.EqualFold(textutil.CollapseSpace(entry.FamilyName), family) {
			return true
		}
	}
	return false
}

func formatLocation(locality, region string) string {
	locality = strings.TrimSpace(locality)
	region = strings.TrimSpace(region)
	switch {
	case locality != "" && region != "":
		return locality + ", " + region
	case locality != "":
		return locality
	default:
		return region
	}
}

// FileStem returns "Family_Given" with filesystem-unsafe characters removed,
// the per-person naming used for captured results and output directories.
func (i Identity) FileStem() string {
	family := textutil.SanitizeFileName(textutil.CollapseSpace(i.FamilyName))
	given := textutil.SanitizeFileName(textutil.CollapseSpace(i.GivenName))
	return family + "_" + given
}
