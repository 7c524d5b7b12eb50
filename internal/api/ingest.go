package api

import (
	"github.com/google/uuid"

	"github.com/BraidFI-AI/sanctions-engine/internal/entity"
	"github.com/BraidFI-AI/sanctions-engine/internal/normalize"
	"github.com/BraidFI-AI/sanctions-engine/internal/search"
	"github.com/BraidFI-AI/sanctions-engine/pkg/models"
)

// ingest converts an IngestRequest's entities into prepared domain
// entities and applies them to the index per the requested mode:
// "replace" swaps the whole index, "add" appends without merging,
// "merge" (the default) appends and re-runs the Entity Merger across
// the combined set.
func (h *APIHandler) ingest(req models.IngestRequest) int {
	entities := make([]*entity.Entity, 0, len(req.Entities))
	for _, q := range req.Entities {
		e := search.ToEntity(q)
		e.ID = uuid.NewString()
		e.Source = req.Source
		normalize.Prepare(e)
		entities = append(entities, e)
	}

	switch req.Mode {
	case "replace":
		h.idx.ReplaceAll(entities)
	case "add":
		h.idx.AddAll(entities)
	default:
		h.idx.AddAllMerging(entities)
	}

	return len(entities)
}
