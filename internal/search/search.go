// Package search implements the Search Engine: resolving a query entity
// against the current Entity Index snapshot, scoring every eligible
// candidate, filtering and sorting the result, and exposing both a
// single-item and a bounded-concurrency batch entry point.
package search

import (
	"sort"

	"github.com/BraidFI-AI/sanctions-engine/internal/config"
	"github.com/BraidFI-AI/sanctions-engine/internal/entity"
	"github.com/BraidFI-AI/sanctions-engine/internal/index"
	"github.com/BraidFI-AI/sanctions-engine/internal/normalize"
	"github.com/BraidFI-AI/sanctions-engine/internal/scoring"
	"github.com/BraidFI-AI/sanctions-engine/internal/trace"
	"github.com/BraidFI-AI/sanctions-engine/pkg/models"
)

// Engine is the Search Engine. One Engine serves every request against
// a shared Index and Scorer.
type Engine struct {
	idx *index.Index
	cfg *config.Resolver
}

// New returns an Engine bound to idx and cfg.
func New(idx *index.Index, cfg *config.Resolver) *Engine {
	return &Engine{idx: idx, cfg: cfg}
}

// Result is the resolved output of a single search: ranked hits plus
// the ScoreBreakdown map the caller can use to build a trace report.
type Result struct {
	Hits       []models.Hit
	Breakdowns map[string]*scoring.ScoreBreakdown
}

// Search resolves a single query entity against the current index
// snapshot: normalize, order candidates (entities sharing the query's
// blocking prefix first, then the rest of the snapshot; every entity is
// scored), score, filter by min score, sort by score desc then id asc
// for determinism, and truncate to limit. override is the request's
// nullable config_override, resolved field-wise over the Configuration
// Resolver's current defaults and passed by value into the Scorer.
func (e *Engine) Search(query models.QueryEntity, limit int, minScore float64, override *config.Override, tc trace.Context) Result {
	cfg := e.cfg.Resolve(override)
	if limit <= 0 {
		limit = cfg.Search.DefaultLimit
	}
	if limit > cfg.Search.MaxLimit {
		limit = cfg.Search.MaxLimit
	}
	if minScore <= 0 {
		minScore = cfg.Search.MinScoreThreshold
	}

	queryEntity := ToEntity(query)
	normalize.Prepare(queryEntity)

	snap := e.idx.Current()
	candidates := snap.Entities()
	if blocked := snap.CandidatesForBlocking(queryEntity.Prepared.PrimaryName.Folded); blocked != nil {
		ordered := make([]*entity.Entity, 0, len(candidates))
		inBlock := make(map[*entity.Entity]bool, len(blocked))
		for _, b := range blocked {
			inBlock[b] = true
			ordered = append(ordered, b)
		}
		for _, c := range candidates {
			if !inBlock[c] {
				ordered = append(ordered, c)
			}
		}
		candidates = ordered
	}

	scorer := scoring.New(cfg)
	breakdowns := make(map[string]*scoring.ScoreBreakdown, len(candidates))
	hits := make([]models.Hit, 0, len(candidates))

	for _, c := range candidates {
		bd := scorer.Score(queryEntity, c, tc)
		breakdowns[c.ID] = bd
		if bd.FinalScore < minScore {
			continue
		}
		hits = append(hits, toHit(c, bd))
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].EntityID < hits[j].EntityID
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}

	return Result{Hits: hits, Breakdowns: breakdowns}
}

func toHit(c *entity.Entity, bd *scoring.ScoreBreakdown) models.Hit {
	matchedName := ""
	if c.Prepared != nil {
		matchedName = c.Prepared.PrimaryName.Raw
	}
	return models.Hit{
		EntityID:         c.ID,
		Source:           c.Source,
		MatchedName:      matchedName,
		Score:            bd.FinalScore,
		NameScore:        bd.NameScore,
		AltNameScore:     bd.AltNameScore,
		GovIDScore:       bd.GovIDScore,
		CryptoScore:      bd.CryptoScore,
		ContactScore:     bd.ContactScore,
		AddressScore:     bd.AddressScore,
		DateScore:        bd.DateScore,
		PhoneticFiltered: bd.PhoneticFiltered,
	}
}
