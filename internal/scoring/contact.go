package scoring

import "github.com/BraidFI-AI/sanctions-engine/internal/entity"

// ContactComparison implements CONTACT_COMPARISON: an exact-match ratio
// over phone/email/fax fields populated on both sides, taking the best
// ratio across any query/candidate pair.
func ContactComparison(query, candidate []entity.NormalizedContact) (score float64, contributed bool) {
	if len(query) == 0 || len(candidate) == 0 {
		return 0, false
	}
	contributed = true
	best := 0.0
	for _, q := range query {
		for _, c := range candidate {
			if ratio, ok := contactPairRatio(q, c); ok && ratio > best {
				best = ratio
			}
		}
	}
	return best, contributed
}

// contactPairRatio scores a single query/candidate contact pair as the
// fraction of matching fields among those populated on both sides.
func contactPairRatio(q, c entity.NormalizedContact) (ratio float64, populated bool) {
	matched, total := 0, 0
	if q.Phone != "" && c.Phone != "" {
		total++
		if q.Phone == c.Phone {
			matched++
		}
	}
	if q.Email != "" && c.Email != "" {
		total++
		if q.Email == c.Email {
			matched++
		}
	}
	if q.Fax != "" && c.Fax != "" {
		total++
		if q.Fax == c.Fax {
			matched++
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(matched) / float64(total), true
}
