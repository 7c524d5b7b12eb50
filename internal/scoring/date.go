package scoring

import "github.com/BraidFI-AI/sanctions-engine/internal/entity"

// DateComparison implements DATE_COMPARISON: exact-string match between
// dated facts sharing the same label (e.g. two "date_of_birth" records).
// Dates are compared as the raw strings the source supplied (Prepare
// copies them unchanged), not as parsed calendar values —
// watchlist sources frequently carry partial dates (year-only, or
// day/month swapped) that a strict calendar parse would reject outright.
func DateComparison(query, candidate []entity.DateOfRecord) (score float64, contributed bool) {
	if len(query) == 0 || len(candidate) == 0 {
		return 0, false
	}
	contributed = true
	for _, q := range query {
		if q.Value == "" {
			continue
		}
		for _, c := range candidate {
			if c.Label == q.Label && c.Value == q.Value {
				return 1.0, true
			}
		}
	}
	return 0, true
}
