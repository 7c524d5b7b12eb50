package merge

import (
	"testing"

	"github.com/BraidFI-AI/sanctions-engine/internal/entity"
)

func TestKeyOf_LowercasesSourceAndSourceID(t *testing.T) {
	a := KeyOf(&entity.Entity{Source: "OFAC", SourceID: "ABC-1", Kind: entity.KindPerson})
	b := KeyOf(&entity.Entity{Source: "ofac", SourceID: "abc-1", Kind: entity.KindPerson})
	if a != b {
		t.Fatalf("expected case-insensitive merge keys to be equal, got %+v vs %+v", a, b)
	}
}

func TestGroupByKey_GroupsBySourceSourceIDKind(t *testing.T) {
	entities := []*entity.Entity{
		{ID: "1", Source: "ofac", SourceID: "1", Kind: entity.KindPerson},
		{ID: "2", Source: "ofac", SourceID: "1", Kind: entity.KindPerson},
		{ID: "3", Source: "ofac", SourceID: "2", Kind: entity.KindPerson},
	}
	order, groups := GroupByKey(entities)
	if len(order) != 2 {
		t.Fatalf("expected 2 distinct groups, got %d", len(order))
	}
	if len(groups[order[0]]) != 2 {
		t.Fatalf("expected first group to have 2 members, got %d", len(groups[order[0]]))
	}
}

func TestMergeAll_SingleMemberGroupPassesThroughUnchanged(t *testing.T) {
	e := &entity.Entity{ID: "1", Source: "ofac", SourceID: "1", Kind: entity.KindPerson, Names: []entity.Name{{Full: "Foo"}}}
	result := MergeAll([]*entity.Entity{e})
	if len(result) != 1 || result[0] != e {
		t.Fatalf("expected a singleton group to pass through as the same pointer")
	}
}

func TestMergeTwo_NamesDeduplicatedCaseInsensitively(t *testing.T) {
	a := &entity.Entity{Names: []entity.Name{{Full: "Nicolas Maduro"}}}
	b := &entity.Entity{Names: []entity.Name{{Full: "NICOLAS MADURO"}, {Full: "Nico Maduro"}}}
	merged := MergeTwo(a, b)
	if len(merged.Names) != 2 {
		t.Fatalf("expected 2 deduplicated names, got %d: %+v", len(merged.Names), merged.Names)
	}
}

func TestMergeTwo_InvalidatesPrepared(t *testing.T) {
	a := &entity.Entity{Prepared: &entity.PreparedFields{}}
	b := &entity.Entity{}
	merged := MergeTwo(a, b)
	if merged.Prepared != nil {
		t.Fatalf("expected merge to invalidate Prepared, forcing re-normalization")
	}
}

func TestMergeTwo_GovIDsDeduplicatedByTypeValueCountry(t *testing.T) {
	a := &entity.Entity{GovernmentIDs: []entity.GovernmentID{{Type: "passport", Value: "X1", Country: "VE"}}}
	b := &entity.Entity{GovernmentIDs: []entity.GovernmentID{{Type: "passport", Value: "X1", Country: "VE"}, {Type: "passport", Value: "X2", Country: "VE"}}}
	merged := MergeTwo(a, b)
	if len(merged.GovernmentIDs) != 2 {
		t.Fatalf("expected 2 deduplicated gov IDs, got %d", len(merged.GovernmentIDs))
	}
}

func TestMergeStrings_DedupesCaseInsensitivelyPreservingOrder(t *testing.T) {
	got := mergeStrings([]string{"Caracas", "Caracas"}, []string{"caracas", "Maracaibo"})
	want := []string{"Caracas", "Maracaibo"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestMergePerson_PrefersANonEmptyFieldsFallBackToB(t *testing.T) {
	a := &entity.PersonPayload{Gender: ""}
	b := &entity.PersonPayload{Gender: "M"}
	merged := mergePerson(a, b)
	if merged.Gender != "M" {
		t.Fatalf("expected gender to fall back to b when a is empty, got %q", merged.Gender)
	}
}

func TestMergePerson_NilEitherSideReturnsOther(t *testing.T) {
	b := &entity.PersonPayload{Gender: "F"}
	if got := mergePerson(nil, b); got != b {
		t.Fatalf("expected mergePerson(nil, b) to return b")
	}
	a := &entity.PersonPayload{Gender: "M"}
	if got := mergePerson(a, nil); got != a {
		t.Fatalf("expected mergePerson(a, nil) to return a")
	}
}
