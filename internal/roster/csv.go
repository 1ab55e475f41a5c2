package roster

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/logging"
)

// CSVColumns is the roster interchange header, in export order.
var CSVColumns = []string{
	"givenName",
	"middleName",
	"familyName",
	"addressLocality",
	"addressRegion",
	"checkRelatives",
	"ignore",
}

// ImportStats reports the outcome of ImportCSV.
type ImportStats struct {
	Added      int
	Duplicates int
}

// ImportCSV adds every row of a roster CSV. Columns are matched by header
// name, case-insensitively, and may appear in any order; unknown columns are
// ignored. People already on the roster are counted and skipped.
func (s *Store) ImportCSV(ctx context.Context, r io.Reader) (ImportStats, error) {
	var stats ImportStats
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return stats, errors.New("roster csv is empty")
		}
		return stats, fmt.Errorf("read csv header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	if _, ok := index["givenname"]; !ok {
		if _, ok := index["familyname"]; !ok {
			return stats, errors.New("roster csv needs a givenName or familyName column")
		}
	}
	field := func(row []string, name string) string {
		i, ok := index[strings.ToLower(name)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return stats, fmt.Errorf("read csv line %d: %w", line, err)
		}

		person := identity.Identity{
			GivenName:       field(row, "givenName"),
			MiddleName:      field(row, "middleName"),
			FamilyName:      field(row, "familyName"),
			AddressLocality: field(row, "addressLocality"),
			AddressRegion:   field(row, "addressRegion"),
			CheckRelatives:  parseBool(field(row, "checkRelatives")),
		}
		if person.GivenName == "" && person.FamilyName == "" {
			continue
		}
		list, parseErr := identity.ParseIgnoreList(field(row, "ignore"))
		if parseErr != nil {
			logging.WarnWithContext(logging.WithContext(ensureContext(ctx), s.logger),
				"csv ignore list unreadable; importing as empty", "ignore_list_corrupt",
				logging.Int("line", line),
				logging.Error(parseErr),
				logging.String(logging.FieldImpact, "previously rejected records and relatives may be offered again"),
			)
		}
		person.IgnoreList = list

		if _, err := s.Add(ctx, person); err != nil {
			if errors.Is(err, ErrDuplicate) {
				stats.Duplicates++
				continue
			}
			return stats, fmt.Errorf("import csv line %d: %w", line, err)
		}
		stats.Added++
	}
	return stats, nil
}

// ExportCSV writes every stored person using CSVColumns.
func (s *Store) ExportCSV(ctx context.Context, w io.Writer) error {
	people, err := s.List(ctx)
	if err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range people {
		ignoreJSON, err := p.Identity.IgnoreList.Encode()
		if err != nil {
			return err
		}
		record := []string{
			p.Identity.GivenName,
			p.Identity.MiddleName,
			p.Identity.FamilyName,
			p.Identity.AddressLocality,
			p.Identity.AddressRegion,
			strconv.FormatBool(p.Identity.CheckRelatives),
			ignoreJSON,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "t", "true", "y", "yes":
		return true
	default:
		return false
	}
}
