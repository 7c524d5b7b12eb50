package scoring

import "github.com/BraidFI-AI/sanctions-engine/internal/entity"

// GovIDComparison implements GOV_ID_COMPARISON. Government identifiers
// are exact-match instruments, not fuzzy-string ones: the result falls
// into one of four fixed buckets rather than a continuous similarity
// score, because a passport number one character off is a different
// identity, not a slightly-worse match.
//
//	1.0 — same type, same country, exact value match
//	0.9 — same type, exact value match, country unspecified on either side
//	0.7 — exact value match, but types or countries conflict
//	0.0 — no shared identifier value
func GovIDComparison(query, candidate []entity.NormalizedGovID) (score float64, contributed bool) {
	if len(query) == 0 || len(candidate) == 0 {
		return 0, false
	}
	contributed = true
	best := 0.0
	for _, q := range query {
		if q.Value == "" {
			continue
		}
		for _, c := range candidate {
			if c.Value == "" || c.Value != q.Value {
				continue
			}
			s := bucketForGovID(q, c)
			if s > best {
				best = s
			}
		}
	}
	return best, contributed
}

func bucketForGovID(q, c entity.NormalizedGovID) float64 {
	switch {
	case q.Type == c.Type && q.Country != "" && q.Country == c.Country:
		return 1.0
	case q.Type == c.Type && (q.Country == "" || c.Country == ""):
		return 0.9
	default:
		return 0.7
	}
}
