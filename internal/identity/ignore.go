package identity

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// IgnoreList is the persisted memory of rejected decisions. Entries are never
// removed; the Add methods are idempotent.
type IgnoreList struct {
	// SearchResults holds rejected record IDs keyed by lower-case site key.
	SearchResults map[string][]string `json:"searchResults,omitempty"`
	// Relatives holds the raw names of declined relative mentions.
	Relatives []string `json:"relatives,omitempty"`
}

// SiteKey normalizes a site name into the key used by SearchResults.
func SiteKey(site string) string {
	return strings.ToLower(strings.TrimSpace(site))
}

// HasSearchResult reports whether the record ID was rejected for the site.
func (l IgnoreList) HasSearchResult(site, id string) bool {
	for _, existing := range l.SearchResults[SiteKey(site)] {
		if existing == id {
			return true
		}
	}
	return false
}

// AddSearchResult records a rejected record ID for the site. It reports
// whether the list grew.
func (l *IgnoreList) AddSearchResult(site, id string) bool {
	if l.HasSearchResult(site, id) {
		return false
	}
	if l.SearchResults == nil {
		l.SearchResults = make(map[string][]string)
	}
	key := SiteKey(site)
	l.SearchResults[key] = append(l.SearchResults[key], id)
	return true
}

// HasRelative reports whether the raw relative name was declined before.
func (l IgnoreList) HasRelative(raw string) bool {
	for _, existing := range l.Relatives {
		if existing == raw {
			return true
		}
	}
	return false
}

// AddRelative records a declined relative mention. It reports whether the
// list grew.
func (l *IgnoreList) AddRelative(raw string) bool {
	if l.HasRelative(raw) {
		return false
	}
	l.Relatives = append(l.Relatives, raw)
	return true
}

// Len returns the total number of remembered decisions.
func (l IgnoreList) Len() int {
	total := len(l.Relatives)
	for _, ids := range l.SearchResults {
		total += len(ids)
	}
	return total
}

// Sites returns the site keys with rejected records, sorted.
func (l IgnoreList) Sites() []string {
	sites := make([]string, 0, len(l.SearchResults))
	for site := range l.SearchResults {
		sites = append(sites, site)
	}
	sort.Strings(sites)
	return sites
}

// Clone returns a deep copy.
func (l IgnoreList) Clone() IgnoreList {
	out := IgnoreList{}
	if l.SearchResults != nil {
		out.SearchResults = make(map[string][]string, len(l.SearchResults))
		for site, ids := range l.SearchResults {
			out.SearchResults[site] = append([]string(nil), ids...)
		}
	}
	if l.Relatives != nil {
		out.Relatives = append([]string(nil), l.Relatives...)
	}
	return out
}

// Covers reports whether every entry of other is also present in l.
func (l IgnoreList) Covers(other IgnoreList) bool {
	for site, ids := range other.SearchResults {
		for _, id := range ids {
			if !l.HasSearchResult(site, id) {
				return false
			}
		}
	}
	for _, raw := range other.Relatives {
		if !l.HasRelative(raw) {
			return false
		}
	}
	return true
}

// UnmarshalJSON accepts relatives either as plain strings or as the legacy
// {"name": "..."} objects, and normalizes site keys.
func (l *IgnoreList) UnmarshalJSON(data []byte) error {
	var wire struct {
		SearchResults map[string][]json.RawMessage `json:"searchResults"`
		Relatives     []json.RawMessage            `json:"relatives"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	out := IgnoreList{}
	for site, ids := range wire.SearchResults {
		for _, raw := range ids {
			id, err := decodeScalar(raw)
			if err != nil {
				return fmt.Errorf("searchResults[%s]: %w", site, err)
			}
			out.AddSearchResult(site, id)
		}
	}
	for _, raw := range wire.Relatives {
		name, err := decodeRelative(raw)
		if err != nil {
			return fmt.Errorf("relatives: %w", err)
		}
		if name != "" {
			out.AddRelative(name)
		}
	}
	*l = out
	return nil
}

// decodeScalar accepts string or numeric record IDs.
func decodeScalar(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("unsupported id %s", string(raw))
	}
	return n.String(), nil
}

func decodeRelative(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", fmt.Errorf("unsupported relative %s", string(raw))
	}
	return obj.Name, nil
}

// ParseIgnoreList decodes a persisted ignore list. Blank input yields an empty
// list and single-quoted legacy blobs are accepted. On error the returned list
// is empty and safe to use, so callers may log the error and continue.
func ParseIgnoreList(raw string) (IgnoreList, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return IgnoreList{}, nil
	}
	var list IgnoreList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		list = IgnoreList{}
		legacy := strings.ReplaceAll(raw, "'", `"`)
		if legacyErr := json.Unmarshal([]byte(legacy), &list); legacyErr != nil {
			return IgnoreList{}, fmt.Errorf("parse ignore list: %w", err)
		}
	}
	return list, nil
}

// Encode serializes the list for persistence.
func (l IgnoreList) Encode() (string, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("encode ignore list: %w", err)
	}
	return string(data), nil
}
