package scoring

import "github.com/BraidFI-AI/sanctions-engine/internal/entity"

// CryptoComparison implements CRYPTO_COMPARISON: an exact match on
// canonicalized currency+address. On-chain addresses carry no useful
// fuzzy-similarity signal — a one-character difference is a different
// address — so this phase is binary per pair, scored 1.0 for the best
// matching pair found.
func CryptoComparison(query, candidate []entity.NormalizedCrypto) (score float64, contributed bool) {
	if len(query) == 0 || len(candidate) == 0 {
		return 0, false
	}
	contributed = true
	for _, q := range query {
		if q.Address == "" {
			continue
		}
		for _, c := range candidate {
			if c.Address == q.Address && c.Currency == q.Currency {
				return 1.0, true
			}
		}
	}
	return 0, true
}
