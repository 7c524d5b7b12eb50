package scoring

import (
	"github.com/agnivade/levenshtein"

	"github.com/BraidFI-AI/sanctions-engine/internal/entity"
	"github.com/BraidFI-AI/sanctions-engine/internal/similarity"
)

// AddressWeights configures ADDRESS_COMPARISON's per-field weights and
// the Jaro-Winkler/Levenshtein blend ratio, resolved from the
// Configuration Resolver.
type AddressWeights struct {
	Jaro similarity.Weights

	Line1, Line2, City, State, Postal, Country float64

	JaroWinklerWeight, LevenshteinWeight float64
}

// fieldSimilarity blends Jaro-Winkler and normalized Levenshtein
// distance for a single address field, matching the pack's
// address-matching blend ratio.
func fieldSimilarity(a, b string, w AddressWeights) float64 {
	if a == "" && b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}
	jw := similarity.JaroWinkler(a, b, w.Jaro)

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	lev := 0.0
	if maxLen > 0 {
		dist := levenshtein.ComputeDistance(a, b)
		lev = 1.0 - float64(dist)/float64(maxLen)
	}

	return jw*w.JaroWinklerWeight + lev*w.LevenshteinWeight
}

// addressPairScore is the weighted mean of the field similarities over
// the fields populated on at least one side; fields empty on both sides
// are left out of the weight total.
func addressPairScore(q, c entity.NormalizedAddress, w AddressWeights) float64 {
	fields := []struct {
		a, b   string
		weight float64
	}{
		{q.Line1, c.Line1, w.Line1},
		{q.Line2, c.Line2, w.Line2},
		{q.City, c.City, w.City},
		{q.State, c.State, w.State},
		{q.Postal, c.Postal, w.Postal},
		{q.Country, c.Country, w.Country},
	}
	var sum, total float64
	for _, f := range fields {
		if f.a == "" && f.b == "" {
			continue
		}
		sum += fieldSimilarity(f.a, f.b, w) * f.weight
		total += f.weight
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// AddressComparison implements ADDRESS_COMPARISON: best-pair selection
// across every query/candidate address combination, each pair scored as
// a weighted field-bundle blend.
func AddressComparison(query, candidate []entity.NormalizedAddress, w AddressWeights) (score float64, contributed bool) {
	if len(query) == 0 || len(candidate) == 0 {
		return 0, false
	}
	contributed = true
	best := 0.0
	for _, q := range query {
		for _, c := range candidate {
			if s := addressPairScore(q, c, w); s > best {
				best = s
			}
		}
	}
	return best, contributed
}
