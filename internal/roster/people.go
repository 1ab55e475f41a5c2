package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/logging"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/textutil"
)

var (
	// ErrDuplicate indicates a person with the same name is already stored.
	ErrDuplicate = errors.New("person already on roster")
	// ErrNameRequired indicates neither a given nor a family name was supplied.
	ErrNameRequired = errors.New("person requires a given or family name")
)

// Person is one stored roster row.
type Person struct {
	ID        int64
	Identity  identity.Identity
	CreatedAt time.Time
	UpdatedAt time.Time
}

const personColumns = "id, given_name, middle_name, family_name, address_locality, address_region, check_relatives, ignore_list, created_at, updated_at"

// Add inserts a new person and returns the stored row.
func (s *Store) Add(ctx context.Context, person identity.Identity) (*Person, error) {
	person = trimIdentity(person)
	if person.GivenName == "" && person.FamilyName == "" {
		return nil, ErrNameRequired
	}
	ignoreJSON, err := person.IgnoreList.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode ignore list: %w", err)
	}
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO people (
            given_name, middle_name, family_name, address_locality, address_region,
            check_relatives, ignore_list, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		person.GivenName,
		person.MiddleName,
		person.FamilyName,
		person.AddressLocality,
		person.AddressRegion,
		boolToInt(person.CheckRelatives),
		nullableString(ignoreJSON),
		timestamp,
		timestamp,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, person.FullName())
		}
		return nil, fmt.Errorf("insert person: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.Get(ctx, id)
}

// Get fetches a person by identifier. It returns nil when no row matches.
func (s *Store) Get(ctx context.Context, id int64) (*Person, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+personColumns+` FROM people WHERE id = ?`, id)
	person, err := s.scanPerson(ctx, row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}
	return person, nil
}

// List returns every stored person in insertion order.
func (s *Store) List(ctx context.Context) ([]*Person, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx), `SELECT `+personColumns+` FROM people ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	defer rows.Close()

	var people []*Person
	for rows.Next() {
		person, err := s.scanPerson(ctx, rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, person)
	}
	return people, rows.Err()
}

// Roster returns the stored identities for membership checks.
func (s *Store) Roster(ctx context.Context) (identity.Roster, error) {
	people, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(identity.Roster, 0, len(people))
	for _, p := range people {
		out = append(out, p.Identity)
	}
	return out, nil
}

// Update persists every field of an existing person.
func (s *Store) Update(ctx context.Context, person *Person) error {
	if person == nil {
		return errors.New("person is nil")
	}
	person.Identity = trimIdentity(person.Identity)
	if person.Identity.GivenName == "" && person.Identity.FamilyName == "" {
		return ErrNameRequired
	}
	ignoreJSON, err := person.Identity.IgnoreList.Encode()
	if err != nil {
		return fmt.Errorf("encode ignore list: %w", err)
	}
	person.UpdatedAt = time.Now().UTC()

	res, err := s.execWithRetry(
		ctx,
		`UPDATE people
         SET given_name = ?, middle_name = ?, family_name = ?, address_locality = ?,
             address_region = ?, check_relatives = ?, ignore_list = ?, updated_at = ?
         WHERE id = ?`,
		person.Identity.GivenName,
		person.Identity.MiddleName,
		person.Identity.FamilyName,
		person.Identity.AddressLocality,
		person.Identity.AddressRegion,
		boolToInt(person.Identity.CheckRelatives),
		nullableString(ignoreJSON),
		person.UpdatedAt.Format(time.RFC3339Nano),
		person.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicate, person.Identity.FullName())
		}
		return fmt.Errorf("update person: %w", err)
	}
	return requireAffected(res, person.ID)
}

// SaveIgnoreList persists only the ignore list of a person.
func (s *Store) SaveIgnoreList(ctx context.Context, id int64, list identity.IgnoreList) error {
	ignoreJSON, err := list.Encode()
	if err != nil {
		return fmt.Errorf("encode ignore list: %w", err)
	}
	res, err := s.execWithRetry(
		ctx,
		`UPDATE people SET ignore_list = ?, updated_at = ? WHERE id = ?`,
		nullableString(ignoreJSON),
		time.Now().UTC().Format(time.RFC3339Nano),
		id,
	)
	if err != nil {
		return fmt.Errorf("save ignore list: %w", err)
	}
	return requireAffected(res, id)
}

// Remove deletes a person. It reports whether a row was removed.
func (s *Store) Remove(ctx context.Context, id int64) (bool, error) {
	res, err := s.execWithRetry(ctx, `DELETE FROM people WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("remove person: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

func (s *Store) scanPerson(ctx context.Context, scanner interface{ Scan(dest ...any) error }) (*Person, error) {
	var (
		id             int64
		given          string
		middle         string
		family         string
		locality       string
		region         string
		checkRelatives int64
		ignoreRaw      sql.NullString
		createdRaw     sql.NullString
		updatedRaw     sql.NullString
	)
	if err := scanner.Scan(
		&id,
		&given,
		&middle,
		&family,
		&locality,
		&region,
		&checkRelatives,
		&ignoreRaw,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	person := &Person{
		ID: id,
		Identity: identity.Identity{
			GivenName:       given,
			MiddleName:      middle,
			FamilyName:      family,
			AddressLocality: locality,
			AddressRegion:   region,
			CheckRelatives:  checkRelatives != 0,
		},
	}

	list, err := identity.ParseIgnoreList(ignoreRaw.String)
	if err != nil {
		logging.WarnWithContext(logging.WithContext(ensureContext(ctx), s.logger),
			"stored ignore list unreadable; treating as empty", "ignore_list_corrupt",
			logging.Int64(logging.FieldPersonID, id),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "inspect the ignore_list column or re-import the roster"),
			logging.String(logging.FieldImpact, "previously rejected records and relatives may be offered again"),
		)
	}
	person.Identity.IgnoreList = list

	if created, err := parseTimeString(createdRaw.String); err == nil {
		person.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		person.UpdatedAt = updated
	}
	return person, nil
}

func requireAffected(res interface{ RowsAffected() (int64, error) }, id int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("person %d: %w", id, sql.ErrNoRows)
	}
	return nil
}

func trimIdentity(id identity.Identity) identity.Identity {
	id.GivenName = textutil.CollapseSpace(id.GivenName)
	id.MiddleName = textutil.CollapseSpace(id.MiddleName)
	id.FamilyName = textutil.CollapseSpace(id.FamilyName)
	id.AddressLocality = textutil.CollapseSpace(id.AddressLocality)
	id.AddressRegion = textutil.CollapseSpace(id.AddressRegion)
	return id
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
