// Package entity defines the sanctions-screening data model: a tagged
// union over the concrete subject types a watchlist source can describe,
// plus the derived PreparedFields cache that normalization/scoring read
// from instead of re-deriving on every comparison.
package entity

import "time"

// Kind discriminates which variant payload is populated on an Entity.
type Kind string

const (
	KindPerson       Kind = "PERSON"
	KindBusiness     Kind = "BUSINESS"
	KindOrganization Kind = "ORGANIZATION"
	KindVessel       Kind = "VESSEL"
	KindAircraft     Kind = "AIRCRAFT"
	KindUnknown      Kind = "UNKNOWN"
)

// Entity is a single watchlist subject as published by a source list.
// Exactly one of the Kind-specific payload fields is populated, matching
// the Kind field; callers should branch on Kind rather than probe for a
// non-nil payload.
type Entity struct {
	ID     string
	Source string
	// SourceID is the source list's own identifier for this subject,
	// used together with Source and Kind to form the merge key.
	SourceID string
	Kind     Kind

	Names    []Name
	AltNames []Name

	Person       *PersonPayload
	Business     *BusinessPayload
	Organization *OrganizationPayload
	Vessel       *VesselPayload
	Aircraft     *AircraftPayload

	Addresses     []Address
	GovernmentIDs []GovernmentID
	CryptoAddrs   []CryptoAddress
	Contacts      []ContactInfo
	Sanctions     []SanctionsInfo
	Historical    []HistoricalInfo
	Affiliations  []Affiliation

	Dates []DateOfRecord

	IngestedAt time.Time

	// Prepared is the normalization cache. Nil until Prepare runs.
	Prepared *PreparedFields
}

// Name is a single name record as it appears on a source list: a primary
// name, an alias, a weak alias, or a former/also-known-as entry. Quality
// is carried through normalization; the Scorer does not weigh matches by
// it.
type Name struct {
	Full    string
	Quality NameQuality
}

type NameQuality string

const (
	NameQualityStrong NameQuality = "STRONG"
	NameQualityWeak    NameQuality = "WEAK"
)

type PersonPayload struct {
	Gender       string
	DatesOfBirth []string
	PlacesOfBirth []string
	Nationalities []string
}

type BusinessPayload struct {
	RegistrationCountries []string
	RegistrationNumbers   []string
}

type OrganizationPayload struct {
	RegistrationCountries []string
}

type VesselPayload struct {
	ImoNumber string
	Flag      string
	Type      string
	Tonnage   float64
}

type AircraftPayload struct {
	TailNumber string
	Model      string
	Operator   string
}

// Address is a single postal address record attached to an entity.
type Address struct {
	Line1   string
	Line2   string
	City    string
	State   string
	Postal  string
	Country string
}

// GovernmentID is a government-issued identifier (passport, national ID,
// tax ID, etc.) with an optional country of issuance.
type GovernmentID struct {
	Type    string
	Value   string
	Country string
}

// CryptoAddress is an on-chain address attributed to the entity.
type CryptoAddress struct {
	Currency string
	Address  string
}

type ContactInfo struct {
	Phone   string
	Email   string
	Fax     string
	Website string
}

// SanctionsInfo records the programs/authorities a source cites against
// an entity (e.g. "US_OFAC", "EU_CONSOLIDATED").
type SanctionsInfo struct {
	Program   string
	Authority string
	ListedOn  string
}

// HistoricalInfo records a delisting or status change for the entity.
type HistoricalInfo struct {
	Status string
	Date   string
	Note   string
}

// Affiliation links this entity to another by role (e.g. "owner_of",
// "associate_of"), referenced by the other entity's raw name since the
// linked entity may come from the same or a different source list.
type Affiliation struct {
	Role       string
	TargetName string
	TargetID   string
}

// DateOfRecord is a generic dated fact (birth, incorporation, listing)
// used uniformly by DATE_COMPARISON regardless of which Kind-specific
// payload originally carried it.
type DateOfRecord struct {
	Label string
	Value string
}
