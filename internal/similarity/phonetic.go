package similarity

import "github.com/antzucaro/matchr"

// PhoneticCodes computes the Double Metaphone primary/secondary codes
// for each token, deduplicated. Stored in PreparedFields so the filter
// never recomputes codes mid-search.
func PhoneticCodes(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens)*2)
	codes := make([]string, 0, len(tokens)*2)
	add := func(c string) {
		if c == "" {
			return
		}
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		codes = append(codes, c)
	}
	for _, t := range tokens {
		primary, secondary := matchr.DoubleMetaphone(t)
		add(primary)
		add(secondary)
	}
	return codes
}

// PhoneticOverlap reports whether two code lists share at least one
// Double Metaphone code. When it returns false, the two name sides are
// unambiguously dissimilar and the kernel can short-circuit to a score
// of 0 without running Jaro-Winkler at all.
func PhoneticOverlap(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return true // nothing to filter on; let full comparison decide
	}
	set := make(map[string]struct{}, len(a))
	for _, c := range a {
		set[c] = struct{}{}
	}
	for _, c := range b {
		if _, ok := set[c]; ok {
			return true
		}
	}
	return false
}
