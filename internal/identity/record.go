package identity

import (
	"strings"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/textutil"
)

// Address is one postal location attached to a broker record.
type Address struct {
	Locality string `json:"addressLocality"`
	Region   string `json:"addressRegion"`
}

// String renders "Locality, Region" omitting empty parts.
func (a Address) String() string {
	return formatLocation(a.Locality, a.Region)
}

// CandidateRecord is one broker search hit. IDs are unique within one site's
// result set for one run.
type CandidateRecord struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Addresses       []Address         `json:"address"`
	AdditionalNames []string          `json:"additionalName"`
	RelatedTo       []RelativeMention `json:"relatedTo"`
	URL             string            `json:"url,omitempty"`
}

// CurrentAddress returns the most recent address, or the zero Address when the
// record has none.
func (r CandidateRecord) CurrentAddress() Address {
	if len(r.Addresses) == 0 {
		return Address{}
	}
	return r.Addresses[0]
}

// RelativeMention is one normalized relatedTo entry. Brokers send either a
// bare name or a partial person object; both become this type on ingestion.
type RelativeMention struct {
	Name            string `json:"name"`
	GivenName       string `json:"givenName,omitempty"`
	MiddleName      string `json:"middleName,omitempty"`
	FamilyName      string `json:"familyName,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	CheckRelatives  *bool  `json:"checkRelatives,omitempty"`
}

// RawName returns the mention's display name exactly as the broker sent it,
// falling back to the structured name parts when there is no display name.
// Ignore lists compare against this string verbatim.
func (m RelativeMention) RawName() string {
	if strings.TrimSpace(m.Name) != "" {
		return m.Name
	}
	return textutil.CollapseSpace(strings.Join([]string{m.GivenName, m.MiddleName, m.FamilyName}, " "))
}

// RelativeStub is a partially built identity derived from a relative mention.
type RelativeStub struct {
	RawName         string
	GivenName       string
	MiddleName      string
	FamilyName      string
	AddressLocality string
	AddressRegion   string
	CheckRelatives  bool
}

// FullName joins the non-empty name parts with single spaces.
func (s RelativeStub) FullName() string {
	return textutil.CollapseSpace(strings.Join([]string{s.GivenName, s.MiddleName, s.FamilyName}, " "))
}

// Identity converts the stub into a new roster identity with an empty ignore
// list.
func (s RelativeStub) Identity() Identity {
	return Identity{
		GivenName:       s.GivenName,
		MiddleName:      s.MiddleName,
		FamilyName:      s.FamilyName,
		AddressLocality: s.AddressLocality,
		AddressRegion:   s.AddressRegion,
		CheckRelatives:  s.CheckRelatives,
	}
}
