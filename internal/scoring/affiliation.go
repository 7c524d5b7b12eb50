package scoring

import (
	"github.com/BraidFI-AI/sanctions-engine/internal/entity"
	"github.com/BraidFI-AI/sanctions-engine/internal/normalize"
	"github.com/BraidFI-AI/sanctions-engine/internal/similarity"
)

// AffiliationBoost is a helper available to callers that want to bias
// ranking by shared affiliations (e.g. a query asserting "associate of
// X" against a candidate that lists X as an affiliate). It is not one of
// the 12 pipeline phases and does not enter AGGREGATION on its own — it
// is exposed for a Search Engine caller to apply as a post-scoring
// re-rank signal, matching spec.md's affiliation helper note.
func AffiliationBoost(query []entity.Affiliation, candidate []entity.Affiliation, tw similarity.TokenWeights) float64 {
	if len(query) == 0 || len(candidate) == 0 {
		return 0
	}
	best := 0.0
	for _, q := range query {
		qFolded := normalize.FoldName(q.TargetName)
		qTokens := normalize.Tokenize(qFolded)
		for _, c := range candidate {
			if q.Role != c.Role {
				continue
			}
			if q.TargetID != "" && c.TargetID != "" && q.TargetID == c.TargetID {
				best = 1.0
				continue
			}
			cFolded := normalize.FoldName(c.TargetName)
			cTokens := normalize.Tokenize(cFolded)
			if s := similarity.BestPairScore(qTokens, cTokens, tw); s > best {
				best = s
			}
		}
	}
	return best
}
