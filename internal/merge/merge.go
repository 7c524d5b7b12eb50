// Package merge implements the Entity Merger: grouping entities that
// describe the same underlying watchlist subject by merge key, and
// folding each group into a single consolidated Entity.
package merge

import (
	"strings"

	"github.com/BraidFI-AI/sanctions-engine/internal/entity"
)

// Key identifies entities that should be treated as the same source
// record for merge purposes: same source list, same source-assigned id,
// same subject kind.
type Key struct {
	Source   string
	SourceID string
	Kind     entity.Kind
}

// KeyOf computes the merge key for an entity. Source and SourceID are
// lower-cased so a source's own casing inconsistencies never split one
// subject into two groups.
func KeyOf(e *entity.Entity) Key {
	return Key{
		Source:   strings.ToLower(e.Source),
		SourceID: strings.ToLower(e.SourceID),
		Kind:     e.Kind,
	}
}

// GroupByKey partitions entities into merge groups, preserving the
// first-seen order of keys and of entities within each group.
func GroupByKey(entities []*entity.Entity) ([]Key, map[Key][]*entity.Entity) {
	order := make([]Key, 0)
	groups := make(map[Key][]*entity.Entity)
	for _, e := range entities {
		k := KeyOf(e)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], e)
	}
	return order, groups
}

// MergeAll groups entities by merge key and folds each group into a
// single consolidated entity via MergeTwo, left to right in input order.
// Groups of size 1 pass through unchanged.
func MergeAll(entities []*entity.Entity) []*entity.Entity {
	order, groups := GroupByKey(entities)
	result := make([]*entity.Entity, 0, len(order))
	for _, k := range order {
		group := groups[k]
		merged := group[0]
		for _, next := range group[1:] {
			merged = MergeTwo(merged, next)
		}
		result = append(result, merged)
	}
	return result
}

// MergeTwo folds b's fields into a new entity seeded from a, following
// field-wise merge rules: scalars prefer a's value when set, otherwise
// take b's; list fields are concatenated and deduplicated, except
// sanctions and historical records, which are concatenated as-is;
// person, business and organization payloads are merged recursively,
// while vessel and aircraft payloads are taken whole from a, or from b
// when a has none.
func MergeTwo(a, b *entity.Entity) *entity.Entity {
	out := *a
	if out.ID == "" {
		out.ID = b.ID
	}
	if out.IngestedAt.IsZero() {
		out.IngestedAt = b.IngestedAt
	}

	out.Names = mergeNames(a.Names, b.Names)
	out.AltNames = mergeNames(a.AltNames, b.AltNames)
	out.Addresses = mergeAddresses(a.Addresses, b.Addresses)
	out.GovernmentIDs = mergeGovIDs(a.GovernmentIDs, b.GovernmentIDs)
	out.CryptoAddrs = mergeCrypto(a.CryptoAddrs, b.CryptoAddrs)
	out.Contacts = mergeContacts(a.Contacts, b.Contacts)
	out.Sanctions = append(append([]entity.SanctionsInfo{}, a.Sanctions...), b.Sanctions...)
	out.Historical = append(append([]entity.HistoricalInfo{}, a.Historical...), b.Historical...)
	out.Affiliations = mergeAffiliations(a.Affiliations, b.Affiliations)
	out.Dates = mergeDates(a.Dates, b.Dates)

	out.Person = mergePerson(a.Person, b.Person)
	out.Business = mergeBusiness(a.Business, b.Business)
	out.Organization = mergeOrganization(a.Organization, b.Organization)
	if out.Vessel == nil {
		out.Vessel = b.Vessel
	}
	if out.Aircraft == nil {
		out.Aircraft = b.Aircraft
	}

	// Prepared is invalidated by merge: fields change, and the caller
	// must re-run normalize.Prepare on the merged result before it
	// enters the index.
	out.Prepared = nil

	return &out
}

func mergeNames(a, b []entity.Name) []entity.Name {
	seen := make(map[string]bool, len(a))
	out := make([]entity.Name, 0, len(a)+len(b))
	for _, n := range append(append([]entity.Name{}, a...), b...) {
		key := strings.ToLower(strings.TrimSpace(n.Full))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}

func mergeAddresses(a, b []entity.Address) []entity.Address {
	seen := make(map[string]bool, len(a))
	out := make([]entity.Address, 0, len(a)+len(b))
	for _, addr := range append(append([]entity.Address{}, a...), b...) {
		key := strings.ToLower(strings.Join([]string{addr.Line1, addr.Line2, addr.City, addr.State, addr.Postal, addr.Country}, "|"))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, addr)
	}
	return out
}

func mergeGovIDs(a, b []entity.GovernmentID) []entity.GovernmentID {
	seen := make(map[string]bool, len(a))
	out := make([]entity.GovernmentID, 0, len(a)+len(b))
	for _, g := range append(append([]entity.GovernmentID{}, a...), b...) {
		key := strings.ToLower(g.Type + "|" + g.Value + "|" + g.Country)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, g)
	}
	return out
}

func mergeCrypto(a, b []entity.CryptoAddress) []entity.CryptoAddress {
	seen := make(map[string]bool, len(a))
	out := make([]entity.CryptoAddress, 0, len(a)+len(b))
	for _, c := range append(append([]entity.CryptoAddress{}, a...), b...) {
		key := strings.ToLower(c.Currency + "|" + c.Address)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

func mergeContacts(a, b []entity.ContactInfo) []entity.ContactInfo {
	seen := make(map[string]bool, len(a))
	out := make([]entity.ContactInfo, 0, len(a)+len(b))
	for _, c := range append(append([]entity.ContactInfo{}, a...), b...) {
		key := strings.ToLower(c.Phone + "|" + c.Email + "|" + c.Fax + "|" + c.Website)
		if key == "|||" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

func mergeAffiliations(a, b []entity.Affiliation) []entity.Affiliation {
	seen := make(map[string]bool, len(a))
	out := make([]entity.Affiliation, 0, len(a)+len(b))
	for _, aff := range append(append([]entity.Affiliation{}, a...), b...) {
		key := strings.ToLower(aff.Role + "|" + aff.TargetName + "|" + aff.TargetID)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, aff)
	}
	return out
}

func mergeDates(a, b []entity.DateOfRecord) []entity.DateOfRecord {
	seen := make(map[string]bool, len(a))
	out := make([]entity.DateOfRecord, 0, len(a)+len(b))
	for _, d := range append(append([]entity.DateOfRecord{}, a...), b...) {
		key := strings.ToLower(d.Label + "|" + d.Value)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	return out
}

func mergePerson(a, b *entity.PersonPayload) *entity.PersonPayload {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := *a
	if out.Gender == "" {
		out.Gender = b.Gender
	}
	out.DatesOfBirth = mergeStrings(a.DatesOfBirth, b.DatesOfBirth)
	out.PlacesOfBirth = mergeStrings(a.PlacesOfBirth, b.PlacesOfBirth)
	out.Nationalities = mergeStrings(a.Nationalities, b.Nationalities)
	return &out
}

func mergeBusiness(a, b *entity.BusinessPayload) *entity.BusinessPayload {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := *a
	out.RegistrationCountries = mergeStrings(a.RegistrationCountries, b.RegistrationCountries)
	out.RegistrationNumbers = mergeStrings(a.RegistrationNumbers, b.RegistrationNumbers)
	return &out
}

func mergeOrganization(a, b *entity.OrganizationPayload) *entity.OrganizationPayload {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := *a
	out.RegistrationCountries = mergeStrings(a.RegistrationCountries, b.RegistrationCountries)
	return &out
}

// mergeStrings concatenates two string lists, deduplicating
// case-insensitively while preserving first-seen order.
func mergeStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range append(append([]string{}, a...), b...) {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
