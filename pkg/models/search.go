// Package models holds the JSON-tagged request/response DTOs for the
// HTTP boundary, kept flat and serialization-focused the way the rest of
// this codebase's wire types are, separate from the internal domain
// types they are built from.
package models

import "github.com/BraidFI-AI/sanctions-engine/internal/config"

// QueryEntity is the subject a caller wants screened. Shape mirrors
// entity.Entity's user-settable fields, minus index-only bookkeeping
// (ID, Source, IngestedAt, Prepared).
type QueryEntity struct {
	SourceID      string           `json:"sourceId,omitempty"`
	Name          string           `json:"name" binding:"required"`
	AltNames      []string         `json:"altNames,omitempty"`
	Kind          string           `json:"kind,omitempty"`
	Gender        string           `json:"gender,omitempty"`
	DatesOfBirth  []string         `json:"datesOfBirth,omitempty"`
	Nationalities []string         `json:"nationalities,omitempty"`
	Addresses     []AddressDTO     `json:"addresses,omitempty"`
	GovernmentIDs []GovernmentIDDTO `json:"governmentIds,omitempty"`
	CryptoAddrs   []CryptoAddrDTO  `json:"cryptoAddresses,omitempty"`
	Contacts      []ContactDTO     `json:"contacts,omitempty"`
	Affiliations  []AffiliationDTO `json:"affiliations,omitempty"`
}

type AddressDTO struct {
	Line1   string `json:"line1,omitempty"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Postal  string `json:"postal,omitempty"`
	Country string `json:"country,omitempty"`
}

type GovernmentIDDTO struct {
	Type    string `json:"type"`
	Value   string `json:"value"`
	Country string `json:"country,omitempty"`
}

type CryptoAddrDTO struct {
	Currency string `json:"currency"`
	Address  string `json:"address"`
}

type ContactDTO struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Fax     string `json:"fax,omitempty"`
	Website string `json:"website,omitempty"`
}

type AffiliationDTO struct {
	Role       string `json:"role"`
	TargetName string `json:"targetName"`
	TargetID   string `json:"targetId,omitempty"`
}

// SearchRequest is the body of POST /api/v1/search. ConfigOverride
// (§4.7) is a nullable, field-wise patch over the resolved defaults:
// any field left null keeps the default, non-null fields replace it for
// this request only.
type SearchRequest struct {
	RequestID      string           `json:"requestId,omitempty"`
	Query          QueryEntity      `json:"query" binding:"required"`
	Limit          int              `json:"limit,omitempty"`
	MinScore       float64          `json:"minScore,omitempty"`
	Trace          bool             `json:"trace,omitempty"`
	ConfigOverride *config.Override `json:"configOverride,omitempty"`
}

// Hit is a single scored candidate.
type Hit struct {
	EntityID     string  `json:"entityId"`
	Source       string  `json:"source"`
	MatchedName  string  `json:"matchedName"`
	Score        float64 `json:"score"`
	NameScore        float64 `json:"nameScore"`
	AltNameScore     float64 `json:"altNameScore"`
	GovIDScore       float64 `json:"govIdScore"`
	CryptoScore      float64 `json:"cryptoScore"`
	ContactScore     float64 `json:"contactScore"`
	AddressScore     float64 `json:"addressScore"`
	DateScore        float64 `json:"dateScore"`
	PhoneticFiltered bool    `json:"phoneticFiltered"`
}

// SearchResponse is the body returned from POST /api/v1/search.
type SearchResponse struct {
	RequestID string `json:"requestId"`
	Hits      []Hit  `json:"hits"`
	Total     int    `json:"total"`
	ReportURL string `json:"reportUrl,omitempty"`
}

// BatchSearchRequest is the body of POST /api/v1/search/batch. Items
// must number between the configured batch_min_items and
// batch_max_items.
type BatchSearchRequest struct {
	RequestID string        `json:"requestId,omitempty"`
	Items     []SearchRequest `json:"items" binding:"required"`
	Limit     int           `json:"limit,omitempty"`
	MinScore  float64       `json:"minScore,omitempty"`
}

// BatchItemResult pairs one batch item's index with either its result
// or its isolated failure, preserving input order.
type BatchItemResult struct {
	Index    int             `json:"index"`
	Response *SearchResponse `json:"response,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// BatchSearchResponse is the body returned from POST /api/v1/search/batch.
type BatchSearchResponse struct {
	RequestID string            `json:"requestId"`
	Results   []BatchItemResult `json:"results"`
}

// IngestRequest is the body of POST /api/v1/ingest.
type IngestRequest struct {
	Source  string        `json:"source" binding:"required"`
	Mode    string        `json:"mode"` // "replace" | "add" | "merge"
	Entities []QueryEntity `json:"entities" binding:"required"`
}

// IngestResponse reports the outcome of an ingestion call.
type IngestResponse struct {
	Source       string `json:"source"`
	Mode         string `json:"mode"`
	EntitiesIn   int    `json:"entitiesIn"`
	IndexSize    int    `json:"indexSize"`
}

// HealthResponse is the body of GET /api/v1/health.
type HealthResponse struct {
	Status    string `json:"status"`
	IndexSize int    `json:"indexSize"`
}
