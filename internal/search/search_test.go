package search

import (
	"context"
	"testing"

	"github.com/BraidFI-AI/sanctions-engine/internal/config"
	"github.com/BraidFI-AI/sanctions-engine/internal/entity"
	"github.com/BraidFI-AI/sanctions-engine/internal/index"
	"github.com/BraidFI-AI/sanctions-engine/internal/normalize"
	"github.com/BraidFI-AI/sanctions-engine/internal/trace"
	"github.com/BraidFI-AI/sanctions-engine/pkg/models"
)

func testResolver() *config.Resolver {
	return config.NewResolver(&config.Config{
		Similarity: config.Similarity{PrefixWeight: 0.1, MaxPrefix: 4, TokenMatchThreshold: 0.7, UnmatchedTokenPenalty: 0.1, LengthDiffPenaltyPerToken: 0.05},
		Weights:    config.Weights{NameComparison: 1.0, NameEnabled: true, ExactMatchThreshold: 0.97},
		Search:     config.Search{MinScoreThreshold: 0.5, DefaultLimit: 25, MaxLimit: 200, BatchMinItems: 1, BatchMaxItems: 10, ItemTimeoutSeconds: 5, MaxWorkers: 4},
	})
}

func seededIndex() *index.Index {
	idx := index.New()
	e := &entity.Entity{ID: "1", Source: "ofac", Names: []entity.Name{{Full: "Nicolas Maduro"}}}
	normalize.Prepare(e)
	idx.ReplaceAll([]*entity.Entity{e})
	return idx
}

func TestEngine_Search_ExactMatchReturnsHit(t *testing.T) {
	eng := New(seededIndex(), testResolver())
	result := eng.Search(models.QueryEntity{Name: "Nicolas Maduro"}, 0, 0, nil, trace.Disabled())
	if len(result.Hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(result.Hits))
	}
	if result.Hits[0].EntityID != "1" {
		t.Fatalf("expected hit for entity 1, got %q", result.Hits[0].EntityID)
	}
}

func TestEngine_Search_UnrelatedNameReturnsNoHits(t *testing.T) {
	eng := New(seededIndex(), testResolver())
	result := eng.Search(models.QueryEntity{Name: "Xyzqwerty Zzxxccvv"}, 0, 0, nil, trace.Disabled())
	if len(result.Hits) != 0 {
		t.Fatalf("expected 0 hits for an unrelated name, got %d", len(result.Hits))
	}
}

func TestEngine_Search_LimitTruncatesResults(t *testing.T) {
	idx := index.New()
	entities := make([]*entity.Entity, 0, 5)
	for i := 0; i < 5; i++ {
		e := &entity.Entity{ID: string(rune('a' + i)), Source: "ofac", Names: []entity.Name{{Full: "Nicolas Maduro"}}}
		normalize.Prepare(e)
		entities = append(entities, e)
	}
	idx.ReplaceAll(entities)
	eng := New(idx, testResolver())

	result := eng.Search(models.QueryEntity{Name: "Nicolas Maduro"}, 2, 0, nil, trace.Disabled())
	if len(result.Hits) != 2 {
		t.Fatalf("expected limit=2 to truncate to 2 hits, got %d", len(result.Hits))
	}
}

func TestEngine_Search_ConfigOverrideDisablesNamePhase(t *testing.T) {
	eng := New(seededIndex(), testResolver())
	disabled := false
	result := eng.Search(models.QueryEntity{Name: "Nicolas Maduro"}, 0, 0, &config.Override{
		Weights: &config.WeightsOverride{NameEnabled: &disabled},
	}, trace.Disabled())
	if len(result.Hits) != 0 {
		t.Fatalf("expected disabling the only enabled phase via override to leave no contributing phases and thus no hits, got %d", len(result.Hits))
	}
}

func TestEngine_SearchBatch_RejectsOutOfRangeBatchSize(t *testing.T) {
	eng := New(seededIndex(), testResolver())
	_, err := eng.SearchBatch(context.Background(), make([]models.SearchRequest, 20))
	if err == nil {
		t.Fatalf("expected an error for a batch exceeding batch_max_items")
	}
}

func TestEngine_SearchBatch_PreservesInputOrder(t *testing.T) {
	eng := New(seededIndex(), testResolver())
	items := []models.SearchRequest{
		{Query: models.QueryEntity{Name: "Nicolas Maduro"}},
		{Query: models.QueryEntity{Name: "Xyzqwerty Zzxxccvv"}},
	}
	results, err := eng.SearchBatch(context.Background(), items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Index != 0 || results[1].Index != 1 {
		t.Fatalf("expected results to preserve input order by index")
	}
	if results[0].Response == nil || len(results[0].Response.Hits) != 1 {
		t.Fatalf("expected item 0 to match the seeded entity")
	}
	if results[1].Response == nil || len(results[1].Response.Hits) != 0 {
		t.Fatalf("expected item 1 to have no hits")
	}
}
