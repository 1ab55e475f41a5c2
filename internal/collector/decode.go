package collector

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/textutil"
)

// ErrMissingID indicates a record carried neither an id nor a url.
var ErrMissingID = errors.New("record has no id")

type rawRecord struct {
	ID             json.RawMessage `json:"id"`
	AtID           json.RawMessage `json:"@id"`
	Name           string          `json:"name"`
	GivenName      string          `json:"givenName"`
	MiddleName     string          `json:"middleName"`
	FamilyName     string          `json:"familyName"`
	Address        json.RawMessage `json:"address"`
	AdditionalName json.RawMessage `json:"additionalName"`
	RelatedTo      json.RawMessage `json:"relatedTo"`
	URL            string          `json:"url"`
}

type rawAddress struct {
	Locality string `json:"addressLocality"`
	Region   string `json:"addressRegion"`
}

type rawMention struct {
	Name            string          `json:"name"`
	GivenName       string          `json:"givenName"`
	MiddleName      string          `json:"middleName"`
	FamilyName      string          `json:"familyName"`
	AddressLocality string          `json:"addressLocality"`
	AddressRegion   string          `json:"addressRegion"`
	CheckRelatives  json.RawMessage `json:"checkRelatives"`
}

// DecodeRecords normalizes a captured result document. The document may be a
// list of records, a single record, or an object holding the list under
// "results" or "@graph".
func DecodeRecords(data []byte) ([]identity.CandidateRecord, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	raws, err := splitDocument(data)
	if err != nil {
		return nil, err
	}
	records := make([]identity.CandidateRecord, 0, len(raws))
	for i, raw := range raws {
		record, err := decodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func splitDocument(data []byte) ([]json.RawMessage, error) {
	switch data[0] {
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("decode record list: %w", err)
		}
		return list, nil
	case '{':
		var wrapper struct {
			Results json.RawMessage `json:"results"`
			Graph   json.RawMessage `json:"@graph"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		for _, nested := range []json.RawMessage{wrapper.Results, wrapper.Graph} {
			if len(nested) > 0 && !isNull(nested) {
				return splitDocument(bytes.TrimSpace(nested))
			}
		}
		return []json.RawMessage{data}, nil
	default:
		return nil, fmt.Errorf("unexpected document starting with %q", data[0])
	}
}

func decodeRecord(data json.RawMessage) (identity.CandidateRecord, error) {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return identity.CandidateRecord{}, fmt.Errorf("decode record: %w", err)
	}

	id, err := scalarString(raw.ID)
	if err != nil {
		return identity.CandidateRecord{}, fmt.Errorf("id: %w", err)
	}
	if id == "" {
		if id, err = scalarString(raw.AtID); err != nil {
			return identity.CandidateRecord{}, fmt.Errorf("@id: %w", err)
		}
	}
	url := strings.TrimSpace(raw.URL)
	if id == "" {
		id = url
	}
	if id == "" {
		return identity.CandidateRecord{}, ErrMissingID
	}

	name := textutil.CollapseSpace(raw.Name)
	if name == "" {
		name = textutil.CollapseSpace(strings.Join([]string{raw.GivenName, raw.MiddleName, raw.FamilyName}, " "))
	}

	addresses, err := decodeAddresses(raw.Address)
	if err != nil {
		return identity.CandidateRecord{}, fmt.Errorf("address: %w", err)
	}
	aliases, err := stringList(raw.AdditionalName)
	if err != nil {
		return identity.CandidateRecord{}, fmt.Errorf("additionalName: %w", err)
	}
	mentions, err := decodeMentions(raw.RelatedTo)
	if err != nil {
		return identity.CandidateRecord{}, fmt.Errorf("relatedTo: %w", err)
	}

	return identity.CandidateRecord{
		ID:              id,
		Name:            name,
		Addresses:       addresses,
		AdditionalNames: aliases,
		RelatedTo:       mentions,
		URL:             url,
	}, nil
}

func decodeAddresses(data json.RawMessage) ([]identity.Address, error) {
	items, err := oneOrMany(data)
	if err != nil {
		return nil, err
	}
	out := make([]identity.Address, 0, len(items))
	for _, item := range items {
		var addr rawAddress
		if err := json.Unmarshal(item, &addr); err != nil {
			return nil, err
		}
		out = append(out, identity.Address{
			Locality: textutil.CollapseSpace(addr.Locality),
			Region:   textutil.CollapseSpace(addr.Region),
		})
	}
	return out, nil
}

func decodeMentions(data json.RawMessage) ([]identity.RelativeMention, error) {
	items, err := oneOrMany(data)
	if err != nil {
		return nil, err
	}
	out := make([]identity.RelativeMention, 0, len(items))
	for _, item := range items {
		if item[0] == '"' {
			var name string
			if err := json.Unmarshal(item, &name); err != nil {
				return nil, err
			}
			out = append(out, identity.RelativeMention{Name: name})
			continue
		}
		var raw rawMention
		if err := json.Unmarshal(item, &raw); err != nil {
			return nil, err
		}
		mention := identity.RelativeMention{
			Name:            raw.Name,
			GivenName:       textutil.CollapseSpace(raw.GivenName),
			MiddleName:      textutil.CollapseSpace(raw.MiddleName),
			FamilyName:      textutil.CollapseSpace(raw.FamilyName),
			AddressLocality: textutil.CollapseSpace(raw.AddressLocality),
			AddressRegion:   textutil.CollapseSpace(raw.AddressRegion),
		}
		if check, ok := flexibleBool(raw.CheckRelatives); ok {
			mention.CheckRelatives = &check
		}
		out = append(out, mention)
	}
	return out, nil
}

func stringList(data json.RawMessage) ([]string, error) {
	items, err := oneOrMany(data)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		value, err := scalarString(item)
		if err != nil {
			return nil, err
		}
		if value = textutil.CollapseSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out, nil
}

// oneOrMany returns the elements of a JSON array, a single non-null value as
// a one-element list, or nil for absent and null values.
func oneOrMany(data json.RawMessage) ([]json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || isNull(data) {
		return nil, nil
	}
	if data[0] != '[' {
		return []json.RawMessage{data}, nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	out := list[:0]
	for _, item := range list {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || isNull(item) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func scalarString(data json.RawMessage) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || isNull(data) {
		return "", nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", fmt.Errorf("expected string or number, got %s", data)
	}
	return n.String(), nil
}

func flexibleBool(data json.RawMessage) (bool, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || isNull(data) {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		return b, true
	}
	s, err := scalarString(data)
	if err != nil || s == "" {
		return false, false
	}
	if parsed, err := strconv.ParseBool(s); err == nil {
		return parsed, true
	}
	return strings.HasPrefix(strings.ToLower(s), "y"), true
}

func isNull(data []byte) bool {
	return bytes.Equal(data, []byte("null"))
}
