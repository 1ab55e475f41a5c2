package main

import (
	"github.com/spf13/cobra"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
)

type identityFlags struct {
	given     string
	middle    string
	family    string
	city      string
	state     string
	relatives bool
}

func (f *identityFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.given, "given", "", "Given (first) name")
	cmd.Flags().StringVar(&f.middle, "middle", "", "Middle name")
	cmd.Flags().StringVar(&f.family, "family", "", "Family (last) name")
	cmd.Flags().StringVar(&f.city, "city", "", "City of residence")
	cmd.Flags().StringVar(&f.state, "state", "", "State of residence (name or abbreviation)")
	cmd.Flags().BoolVar(&f.relatives, "relatives", false, "Offer relatives found on accepted records")
}

func (f *identityFlags) identity() identity.Identity {
	person := identity.Identity{
		GivenName:       f.given,
		MiddleName:      f.middle,
		FamilyName:      f.family,
		AddressLocality: f.city,
		AddressRegion:   f.state,
		CheckRelatives:  f.relatives,
	}
	person.Normalize()
	return person
}
