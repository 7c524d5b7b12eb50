package index

import (
	radix "github.com/armon/go-radix"

	"github.com/BraidFI-AI/sanctions-engine/internal/entity"
)

// blockingKeySize is the number of leading characters of a normalized
// primary name used as the radix prefix key. Short enough to group
// near-duplicate spellings, long enough to keep blocks small.
const blockingKeySize = 4

// blockingIndex groups entities by normalized-name prefix. Search uses
// it only to order candidates: entities in the query's block are scored
// first and the rest of the snapshot after them, so blocking never
// changes which entities are eligible to match.
type blockingIndex struct {
	tree *radix.Tree
}

func newBlockingIndex(entities []*entity.Entity) *blockingIndex {
	tree := radix.New()
	for _, e := range entities {
		if e.Prepared == nil {
			continue
		}
		key := blockingKey(e.Prepared.PrimaryName.Folded)
		if key == "" {
			continue
		}
		if existing, ok := tree.Get(key); ok {
			tree.Insert(key, append(existing.([]string), e.ID))
		} else {
			tree.Insert(key, []string{e.ID})
		}
	}
	return &blockingIndex{tree: tree}
}

func blockingKey(folded string) string {
	if len(folded) < blockingKeySize {
		return ""
	}
	return folded[:blockingKeySize]
}

// lookup returns the entities blocked with the given normalized name, or
// nil if the name is too short to block on or nothing matched.
func (b *blockingIndex) lookup(normalizedPrimaryName string, byID map[string]*entity.Entity) []*entity.Entity {
	key := blockingKey(normalizedPrimaryName)
	if key == "" {
		return nil
	}
	ids, ok := b.tree.Get(key)
	if !ok {
		return nil
	}
	idList := ids.([]string)
	out := make([]*entity.Entity, 0, len(idList))
	for _, id := range idList {
		if e, ok := byID[id]; ok {
			out = append(out, e)
		}
	}
	return out
}
