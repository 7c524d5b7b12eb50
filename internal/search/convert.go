package search

import (
	"github.com/BraidFI-AI/sanctions-engine/internal/entity"
	"github.com/BraidFI-AI/sanctions-engine/pkg/models"
)

// ToEntity builds an entity.Entity from a query DTO. The result has no
// ID or Source; SourceID is copied from the DTO. Search uses it as a
// transient query entity for one call, and the ingest handler sets ID
// and Source on it before adding it to the index.
func ToEntity(q models.QueryEntity) *entity.Entity {
	e := &entity.Entity{
		SourceID: q.SourceID,
		Kind:     entity.Kind(q.Kind),
		Names:    []entity.Name{{Full: q.Name, Quality: entity.NameQualityStrong}},
	}
	if e.Kind == "" {
		e.Kind = entity.KindUnknown
	}
	for _, n := range q.AltNames {
		e.AltNames = append(e.AltNames, entity.Name{Full: n, Quality: entity.NameQualityWeak})
	}
	if q.Gender != "" || len(q.DatesOfBirth) > 0 || len(q.Nationalities) > 0 {
		e.Person = &entity.PersonPayload{
			Gender:        q.Gender,
			DatesOfBirth:  q.DatesOfBirth,
			Nationalities: q.Nationalities,
		}
		for _, d := range q.DatesOfBirth {
			e.Dates = append(e.Dates, entity.DateOfRecord{Label: "date_of_birth", Value: d})
		}
	}
	for _, a := range q.Addresses {
		e.Addresses = append(e.Addresses, entity.Address{
			Line1: a.Line1, Line2: a.Line2, City: a.City, State: a.State, Postal: a.Postal, Country: a.Country,
		})
	}
	for _, g := range q.GovernmentIDs {
		e.GovernmentIDs = append(e.GovernmentIDs, entity.GovernmentID{Type: g.Type, Value: g.Value, Country: g.Country})
	}
	for _, c := range q.CryptoAddrs {
		e.CryptoAddrs = append(e.CryptoAddrs, entity.CryptoAddress{Currency: c.Currency, Address: c.Address})
	}
	for _, c := range q.Contacts {
		e.Contacts = append(e.Contacts, entity.ContactInfo{Phone: c.Phone, Email: c.Email, Fax: c.Fax, Website: c.Website})
	}
	for _, a := range q.Affiliations {
		e.Affiliations = append(e.Affiliations, entity.Affiliation{Role: a.Role, TargetName: a.TargetName, TargetID: a.TargetID})
	}
	return e
}
