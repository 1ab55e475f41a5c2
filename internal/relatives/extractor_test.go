package relatives_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/relatives"
)

type script struct {
	confirm map[string]bool
	fields  map[relatives.Field]string
	offered []string
	asked   []relatives.Field
}

func (s *script) ConfirmRelative(_ context.Context, p relatives.RelativePrompt) bool {
	s.offered = append(s.offered, p.Stub.RawName)
	return s.confirm[p.Stub.RawName]
}

func (s *script) PromptField(_ context.Context, field relatives.Field, _ identity.RelativeStub) string {
	s.asked = append(s.asked, field)
	return s.fields[field]
}

func bruce() *identity.Identity {
	return &identity.Identity{GivenName: "Bruce", FamilyName: "Wayne", AddressLocality: "Gotham", AddressRegion: "NJ", CheckRelatives: true}
}

func mentions(names ...string) []identity.RelativeMention {
	out := make([]identity.RelativeMention, 0, len(names))
	for _, n := range names {
		out = append(out, identity.RelativeMention{Name: n})
	}
	return out
}

func TestExtractSkipsRosterMembersWithoutPrompt(t *testing.T) {
	s := &script{}
	person := bruce()
	roster := identity.Roster{{GivenName: "Alfred", FamilyName: "Pennyworth"}}
	records := []identity.CandidateRecord{{ID: "1", RelatedTo: mentions("Alfred Pennyworth")}}

	result := relatives.NewExtractor(s, s, nil).Extract(context.Background(), person, records, roster)

	assert.Empty(t, s.offered)
	assert.Empty(t, result.Relatives)
	assert.Equal(t, 1, result.KnownSkipped)
	assert.Empty(t, person.IgnoreList.Relatives)
}

func TestExtractDeclineAppendsRawName(t *testing.T) {
	s := &script{confirm: map[string]bool{}}
	person := bruce()
	records := []identity.CandidateRecord{{ID: "1", RelatedTo: mentions("selina  kyle")}}

	result := relatives.NewExtractor(s, s, nil).Extract(context.Background(), person, records, nil)

	require.Equal(t, []string{"selina  kyle"}, s.offered)
	assert.Equal(t, []string{"selina  kyle"}, result.Declined)
	assert.True(t, person.IgnoreList.HasRelative("selina  kyle"))
	assert.Empty(t, s.asked)
}

func TestExtractIgnoredMentionsNotOffered(t *testing.T) {
	s := &script{}
	person := bruce()
	person.IgnoreList.AddRelative("Selina Kyle")
	records := []identity.CandidateRecord{{ID: "1", RelatedTo: mentions("Selina Kyle")}}

	result := relatives.NewExtractor(s, s, nil).Extract(context.Background(), person, records, nil)

	assert.Empty(t, s.offered)
	assert.Equal(t, 1, result.IgnoredSkipped)
}

func TestExtractLegacyIgnoreEntryMatchesVerbatimName(t *testing.T) {
	list, err := identity.ParseIgnoreList("{'relatives': [{'name': 'Jane  Doe'}]}")
	require.NoError(t, err)
	s := &script{confirm: map[string]bool{}}
	person := bruce()
	person.IgnoreList = list
	records := []identity.CandidateRecord{{ID: "1", RelatedTo: []identity.RelativeMention{{Name: "Jane  Doe"}}}}

	result := relatives.NewExtractor(s, s, nil).Extract(context.Background(), person, records, nil)

	assert.Empty(t, s.offered)
	assert.Equal(t, 1, result.IgnoredSkipped)
	assert.Equal(t, []string{"Jane  Doe"}, person.IgnoreList.Relatives)
}

func TestExtractAcceptFillsMissingFieldsInOrder(t *testing.T) {
	s := &script{
		confirm: map[string]bool{"dick grayson": true},
		fields: map[relatives.Field]string{
			relatives.FieldAddressRegion:   "nj",
			relatives.FieldAddressLocality: "blüdhaven",
			relatives.FieldMiddleName:      "john",
			relatives.FieldCheckRelatives:  "Yes",
		},
	}
	person := bruce()
	records := []identity.CandidateRecord{{ID: "1", RelatedTo: mentions("dick grayson")}}

	result := relatives.NewExtractor(s, s, nil).Extract(context.Background(), person, records, nil)

	require.Len(t, result.Relatives, 1)
	stub := result.Relatives[0]
	assert.Equal(t, "Dick", stub.GivenName)
	assert.Equal(t, "John", stub.MiddleName)
	assert.Equal(t, "Grayson", stub.FamilyName)
	assert.Equal(t, "NJ", stub.AddressRegion)
	assert.Equal(t, "Blüdhaven", stub.AddressLocality)
	assert.True(t, stub.CheckRelatives)
	assert.Equal(t, relatives.Fields, s.asked)
	assert.Empty(t, person.IgnoreList.Relatives)
}

func TestExtractKeepsStructuredFields(t *testing.T) {
	yes := false
	s := &script{confirm: map[string]bool{"Barbara Joan Gordon": true}}
	person := bruce()
	records := []identity.CandidateRecord{{ID: "1", RelatedTo: []identity.RelativeMention{{
		GivenName:       "Barbara",
		MiddleName:      "Joan",
		FamilyName:      "Gordon",
		AddressLocality: "gotham",
		AddressRegion:   "nj",
		CheckRelatives:  &yes,
	}}}}

	result := relatives.NewExtractor(s, s, nil).Extract(context.Background(), person, records, nil)

	require.Len(t, result.Relatives, 1)
	assert.Empty(t, s.asked, "fields carried by the broker are not prompted")
	assert.Equal(t, "Gotham", result.Relatives[0].AddressLocality)
	assert.Equal(t, "NJ", result.Relatives[0].AddressRegion)
	assert.Equal(t, "Joan", result.Relatives[0].MiddleName)
	assert.False(t, result.Relatives[0].CheckRelatives)
}

func TestExtractDeduplicatesAcrossRecords(t *testing.T) {
	s := &script{confirm: map[string]bool{"Jason Todd": true}}
	person := bruce()
	records := []identity.CandidateRecord{
		{ID: "1", RelatedTo: mentions("Jason Todd", "")},
		{ID: "2", RelatedTo: mentions("Jason Todd", "jason todd")},
	}

	result := relatives.NewExtractor(s, s, nil).Extract(context.Background(), person, records, nil)

	assert.Equal(t, []string{"Jason Todd"}, s.offered, "same pair accepted earlier is treated as known")
	assert.Len(t, result.Relatives, 1)
	assert.Equal(t, 1, result.KnownSkipped)
}

func TestExtractSamePairUnderDifferentRawNamesDecidedOnce(t *testing.T) {
	s := &script{confirm: map[string]bool{"Selina Kyle": true, "Selina M Kyle": true}}
	person := bruce()
	records := []identity.CandidateRecord{
		{ID: "1", RelatedTo: mentions("Selina Kyle")},
		{ID: "2", RelatedTo: mentions("Selina M Kyle")},
	}

	result := relatives.NewExtractor(s, s, nil).Extract(context.Background(), person, records, nil)

	assert.Equal(t, []string{"Selina Kyle"}, s.offered)
	require.Len(t, result.Relatives, 1)
	assert.Equal(t, "Kyle", result.Relatives[0].FamilyName)
	assert.Equal(t, 1, result.KnownSkipped)
	assert.Empty(t, result.Declined)
}

func TestExtractIsIdempotentAgainstGrownRoster(t *testing.T) {
	s := &script{confirm: map[string]bool{"Tim Drake": true}}
	person := bruce()
	records := []identity.CandidateRecord{{ID: "1", RelatedTo: mentions("Tim Drake")}}
	extractor := relatives.NewExtractor(s, s, nil)

	first := extractor.Extract(context.Background(), person, records, nil)
	require.Len(t, first.Relatives, 1)

	roster := identity.Roster{first.Relatives[0].Identity()}
	second := extractor.Extract(context.Background(), person, records, roster)

	assert.Empty(t, second.Relatives)
	assert.Equal(t, 1, second.KnownSkipped)
	assert.Len(t, s.offered, 1)
}

func TestParseYes(t *testing.T) {
	assert.True(t, relatives.ParseYes("y"))
	assert.True(t, relatives.ParseYes("  YES"))
	assert.False(t, relatives.ParseYes(""))
	assert.False(t, relatives.ParseYes("no"))
}
