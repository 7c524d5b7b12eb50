// Package index implements the Entity Index: a thread-safe, in-memory
// store of prepared entities with whole-snapshot publish semantics, so
// readers (the Search Engine) never observe a partially-updated index.
package index

import (
	"sync/atomic"

	"github.com/BraidFI-AI/sanctions-engine/internal/entity"
	"github.com/BraidFI-AI/sanctions-engine/internal/merge"
	"github.com/BraidFI-AI/sanctions-engine/internal/normalize"
)

// snapshot is the immutable state published to readers. A new snapshot
// is built and swapped in atomically on every mutation; readers that
// already hold a pointer to an old snapshot keep working against a
// consistent view for the lifetime of their request.
type snapshot struct {
	entities []*entity.Entity
	byID     map[string]*entity.Entity
	blocking *blockingIndex
}

// Index is the concurrent-safe Entity Index. The zero value is not
// usable; use New.
type Index struct {
	current atomic.Pointer[snapshot]
}

// New returns an empty Index.
func New() *Index {
	idx := &Index{}
	idx.current.Store(emptySnapshot())
	return idx
}

func emptySnapshot() *snapshot {
	return &snapshot{
		entities: nil,
		byID:     make(map[string]*entity.Entity),
		blocking: newBlockingIndex(nil),
	}
}

// Snapshot is a read-only, point-in-time view of the index, safe to use
// from any number of concurrent goroutines.
type Snapshot struct {
	s *snapshot
}

// Entities returns every entity in the snapshot. The returned slice must
// not be mutated.
func (s Snapshot) Entities() []*entity.Entity { return s.s.entities }

// Size returns the number of entities in the snapshot.
func (s Snapshot) Size() int { return len(s.s.entities) }

// FindByID looks up an entity by id within the snapshot.
func (s Snapshot) FindByID(id string) (*entity.Entity, bool) {
	e, ok := s.s.byID[id]
	return e, ok
}

// CandidatesForBlocking returns the entities sharing a name-prefix
// block with query, or nil if blocking could not narrow the set (short
// query, empty index) — callers must fall back to Entities() in that
// case, per the index's "fast path only, never changes eligibility"
// contract.
func (s Snapshot) CandidatesForBlocking(normalizedPrimaryName string) []*entity.Entity {
	return s.s.blocking.lookup(normalizedPrimaryName, s.s.byID)
}

// Current returns the index's current snapshot.
func (idx *Index) Current() Snapshot {
	return Snapshot{s: idx.current.Load()}
}

// ReplaceAll atomically replaces the entire index contents.
func (idx *Index) ReplaceAll(entities []*entity.Entity) {
	idx.current.Store(buildSnapshot(entities))
}

// AddAll appends entities to the index without merging, atomically
// publishing the combined snapshot.
func (idx *Index) AddAll(entities []*entity.Entity) {
	cur := idx.current.Load()
	combined := append(append([]*entity.Entity{}, cur.entities...), entities...)
	idx.current.Store(buildSnapshot(combined))
}

// AddAllMerging appends entities to the index, then re-runs the Entity
// Merger across the combined set so records sharing a merge key with
// either existing or incoming entities are folded together. Merged
// records are re-prepared before the snapshot is published.
func (idx *Index) AddAllMerging(entities []*entity.Entity) {
	cur := idx.current.Load()
	combined := append(append([]*entity.Entity{}, cur.entities...), entities...)
	merged := merge.MergeAll(combined)
	for _, e := range merged {
		if e.Prepared == nil {
			normalize.Prepare(e)
		}
	}
	idx.current.Store(buildSnapshot(merged))
}

// RemoveByID removes a single entity by id, atomically publishing the
// resulting snapshot. Reports whether an entity was actually removed.
func (idx *Index) RemoveByID(id string) bool {
	cur := idx.current.Load()
	if _, ok := cur.byID[id]; !ok {
		return false
	}
	filtered := make([]*entity.Entity, 0, len(cur.entities)-1)
	for _, e := range cur.entities {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	idx.current.Store(buildSnapshot(filtered))
	return true
}

// FilterBy returns the subset of the current snapshot's entities for
// which predicate returns true. This is a convenience read helper, not a
// mutation — it never touches the published snapshot.
func (idx *Index) FilterBy(predicate func(*entity.Entity) bool) []*entity.Entity {
	cur := idx.Current()
	out := make([]*entity.Entity, 0)
	for _, e := range cur.Entities() {
		if predicate(e) {
			out = append(out, e)
		}
	}
	return out
}

func buildSnapshot(entities []*entity.Entity) *snapshot {
	byID := make(map[string]*entity.Entity, len(entities))
	for _, e := range entities {
		byID[e.ID] = e
	}
	return &snapshot{
		entities: entities,
		byID:     byID,
		blocking: newBlockingIndex(entities),
	}
}
