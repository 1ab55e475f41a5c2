package roster_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/roster"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/testsupport"
)

func TestOpenCreatesSchemaAndReopens(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenRoster(t, cfg)
	if store.Path() != filepath.Join(cfg.Paths.DataDir, "roster.db") {
		t.Fatalf("unexpected roster path: %q", store.Path())
	}
	testsupport.AddPerson(t, store, identity.Identity{GivenName: "John", FamilyName: "Smith"})
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := testsupport.MustOpenRoster(t, cfg)
	people, err := reopened.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(people) != 1 {
		t.Fatalf("expected 1 person after reopen, got %d", len(people))
	}
}

func TestAddGetUpdateRemove(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenRoster(t, cfg)
	ctx := context.Background()

	added := testsupport.AddPerson(t, store, identity.Identity{
		GivenName:       " John ",
		FamilyName:      "Smith",
		AddressLocality: "Los  Angeles",
		AddressRegion:   "CA",
		CheckRelatives:  true,
	})
	if added.ID == 0 {
		t.Fatal("expected person ID to be assigned")
	}
	if added.Identity.GivenName != "John" || added.Identity.AddressLocality != "Los Angeles" {
		t.Fatalf("expected trimmed fields, got %#v", added.Identity)
	}
	if added.CreatedAt.IsZero() {
		t.Fatal("expected created timestamp")
	}

	added.Identity.MiddleName = "Q"
	added.Identity.IgnoreList.AddSearchResult("spokeo", "abc")
	if err := store.Update(ctx, added); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	fetched, err := store.Get(ctx, added.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if fetched == nil || fetched.Identity.MiddleName != "Q" || !fetched.Identity.CheckRelatives {
		t.Fatalf("unexpected fetched person: %#v", fetched)
	}
	if !fetched.Identity.IgnoreList.HasSearchResult("spokeo", "abc") {
		t.Fatalf("expected ignore list to persist, got %#v", fetched.Identity.IgnoreList)
	}

	removed, err := store.Remove(ctx, added.ID)
	if err != nil || !removed {
		t.Fatalf("Remove returned %v, %v", removed, err)
	}
	missing, err := store.Get(ctx, added.ID)
	if err != nil {
		t.Fatalf("Get after remove failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil after remove, got %#v", missing)
	}
	if removed, _ := store.Remove(ctx, added.ID); removed {
		t.Fatal("expected second remove to report nothing removed")
	}
}

func TestAddRejectsDuplicatesAndBlankNames(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenRoster(t, cfg)
	ctx := context.Background()

	testsupport.AddPerson(t, store, identity.Identity{GivenName: "Alfred", FamilyName: "Pennyworth"})
	if _, err := store.Add(ctx, identity.Identity{GivenName: "alfred", FamilyName: "PENNYWORTH"}); !errors.Is(err, roster.ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if _, err := store.Add(ctx, identity.Identity{MiddleName: "only"}); !errors.Is(err, roster.ErrNameRequired) {
		t.Fatalf("expected name required error, got %v", err)
	}
}

func TestSaveIgnoreListAndRoster(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenRoster(t, cfg)
	ctx := context.Background()

	person := testsupport.AddPerson(t, store, identity.Identity{GivenName: "Bruce", FamilyName: "Wayne"})
	var list identity.IgnoreList
	list.AddRelative("Selina Kyle")
	if err := store.SaveIgnoreList(ctx, person.ID, list); err != nil {
		t.Fatalf("SaveIgnoreList failed: %v", err)
	}
	if err := store.SaveIgnoreList(ctx, 9999, list); err == nil {
		t.Fatal("expected error saving ignore list for unknown person")
	}

	members, err := store.Roster(ctx)
	if err != nil {
		t.Fatalf("Roster failed: %v", err)
	}
	if !members.Contains("bruce", "wayne") {
		t.Fatalf("expected roster to contain Bruce Wayne: %#v", members)
	}
	if !members[0].IgnoreList.HasRelative("Selina Kyle") {
		t.Fatalf("expected relative in ignore list, got %#v", members[0].IgnoreList)
	}
}

func TestCorruptIgnoreListLoadsEmpty(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	store := testsupport.MustOpenRoster(t, cfg, roster.WithLogger(logger))
	ctx := context.Background()

	person := testsupport.AddPerson(t, store, identity.Identity{GivenName: "Jane", FamilyName: "Doe"})
	db := testsupport.MustOpenSQLite(t, store.Path())
	if _, err := db.Exec(`UPDATE people SET ignore_list = ? WHERE id = ?`, "{not json", person.ID); err != nil {
		t.Fatalf("corrupt ignore list: %v", err)
	}

	fetched, err := store.Get(ctx, person.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if fetched.Identity.IgnoreList.Len() != 0 {
		t.Fatalf("expected empty ignore list, got %#v", fetched.Identity.IgnoreList)
	}
	if !strings.Contains(logs.String(), "event_type=ignore_list_corrupt") {
		t.Fatalf("expected corruption warning, got %q", logs.String())
	}
}

func TestCSVRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenRoster(t, cfg)
	ctx := context.Background()

	input := strings.Join([]string{
		"familyName,givenName,middleName,addressLocality,addressRegion,checkRelatives,ignore,extra",
		`Smith,John,,Los Angeles,CA,True,"{'searchResults': {'spokeo': ['a1']}, 'relatives': [{'name': 'Jane Smith'}]}",x`,
		"Wayne,Bruce,,Gotham,NJ,false,,",
		"Smith,John,,Austin,TX,false,,",
		",,,,,,,",
	}, "\n")

	stats, err := store.ImportCSV(ctx, strings.NewReader(input))
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}
	if stats.Added != 2 || stats.Duplicates != 1 {
		t.Fatalf("unexpected import stats: %+v", stats)
	}

	people, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	john := people[0].Identity
	if !john.CheckRelatives || !john.IgnoreList.HasSearchResult("spokeo", "a1") || !john.IgnoreList.HasRelative("Jane Smith") {
		t.Fatalf("unexpected imported identity: %#v", john)
	}

	var out bytes.Buffer
	if err := store.ExportCSV(ctx, &out); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), strings.Join(roster.CSVColumns, ",")+"\n") {
		t.Fatalf("unexpected export header: %q", out.String())
	}

	other := testsupport.MustOpenRoster(t, testsupport.NewConfig(t))
	again, err := other.ImportCSV(ctx, &out)
	if err != nil {
		t.Fatalf("re-import failed: %v", err)
	}
	if again.Added != 2 {
		t.Fatalf("expected 2 people re-imported, got %+v", again)
	}
	reimported, err := other.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !reimported[0].Identity.IgnoreList.Covers(john.IgnoreList) {
		t.Fatalf("ignore list lost in round trip: %#v", reimported[0].Identity.IgnoreList)
	}
}

func TestImportCSVRequiresNameColumn(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenRoster(t, cfg)
	if _, err := store.ImportCSV(context.Background(), strings.NewReader("city,state\nAustin,TX\n")); err == nil {
		t.Fatal("expected error for csv without name columns")
	}
	if _, err := store.ImportCSV(context.Background(), strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty csv")
	}
}
