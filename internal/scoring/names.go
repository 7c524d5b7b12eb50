package scoring

import (
	"github.com/BraidFI-AI/sanctions-engine/internal/entity"
	"github.com/BraidFI-AI/sanctions-engine/internal/similarity"
)

// compareName scores a single query name against a single candidate
// name. The phonetic pre-filter short-circuits to 0 when the two
// token sets share no Double Metaphone code and filtering is enabled;
// an exact match on the folded string always short-circuits to 1,
// before the kernel runs at all.
func compareName(query, candidate entity.NormalizedName, tw similarity.TokenWeights, phoneticDisabled bool) (score float64, filtered bool) {
	if query.Folded == candidate.Folded && query.Folded != "" {
		return 1.0, false
	}
	if !phoneticDisabled && !similarity.PhoneticOverlap(query.Phonetic, candidate.Phonetic) {
		return 0, true
	}
	return similarity.BestPairScore(query.Tokens, candidate.Tokens, tw), false
}

// NameComparison implements NAME_COMPARISON: the query's primary name
// against the candidate's primary name.
func NameComparison(query, candidate entity.NormalizedName, tw similarity.TokenWeights, phoneticDisabled bool) (score float64, filtered bool) {
	return compareName(query, candidate, tw, phoneticDisabled)
}

// AltNameComparison implements ALT_NAME_COMPARISON: the query's primary
// name (and its own alt names) against every alt name the candidate
// carries, taking the single best-scoring pair. Weak-quality aliases
// compete on equal footing with strong ones; name quality affects
// neither the pairwise score nor this phase's weight in AGGREGATION.
func AltNameComparison(queryNames []entity.NormalizedName, candidateAltNames []entity.NormalizedName, tw similarity.TokenWeights, phoneticDisabled bool) (score float64, contributed bool) {
	if len(queryNames) == 0 || len(candidateAltNames) == 0 {
		return 0, false
	}
	best := 0.0
	for _, q := range queryNames {
		for _, c := range candidateAltNames {
			s, filtered := compareName(q, c, tw, phoneticDisabled)
			if filtered {
				continue
			}
			if s > best {
				best = s
			}
		}
	}
	return best, true
}
