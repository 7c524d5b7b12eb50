package similarity

import "math"

// TokenWeights configures the best-pair token matcher's penalties, all
// resolved from the Configuration Resolver.
type TokenWeights struct {
	Jaro Weights
	// LengthDiffPenaltyPerToken subtracts from the final score for each
	// unit of absolute token-count difference between the two names.
	LengthDiffPenaltyPerToken float64
	// UnmatchedTokenPenalty subtracts from the final score for each
	// query token that found no candidate token above MatchThreshold.
	UnmatchedTokenPenalty float64
	// MatchThreshold is the minimum per-pair Jaro-Winkler score for a
	// token pair to count as "matched" rather than "unmatched".
	MatchThreshold float64
}

// DefaultTokenWeights matches spec.md's literal defaults.
func DefaultTokenWeights() TokenWeights {
	return TokenWeights{
		Jaro:                      DefaultWeights(),
		LengthDiffPenaltyPerToken: 0.05,
		UnmatchedTokenPenalty:     0.1,
		MatchThreshold:            0.7,
	}
}

// BestPairScore compares two token lists by greedily pairing each query
// token with its best-scoring remaining candidate token (mean-of-
// matched-pair-scores is authoritative, per spec.md's resolved Open
// Question), then applies length-difference and unmatched-token
// penalties. Returns 0 for either empty list.
func BestPairScore(queryTokens, candidateTokens []string, w TokenWeights) float64 {
	if len(queryTokens) == 0 || len(candidateTokens) == 0 {
		return 0
	}

	used := make([]bool, len(candidateTokens))
	var sum float64
	matched := 0
	unmatched := 0

	for _, qt := range queryTokens {
		bestIdx, bestScore := -1, -1.0
		for i, ct := range candidateTokens {
			if used[i] {
				continue
			}
			s := JaroWinkler(qt, ct, w.Jaro)
			if s > bestScore {
				bestScore, bestIdx = s, i
			}
		}
		if bestIdx == -1 {
			unmatched++
			continue
		}
		if bestScore < w.MatchThreshold {
			unmatched++
			continue
		}
		used[bestIdx] = true
		sum += bestScore
		matched++
	}

	if matched == 0 {
		return 0
	}

	score := sum / float64(matched)

	lengthDiff := math.Abs(float64(len(queryTokens) - len(candidateTokens)))
	score -= lengthDiff * w.LengthDiffPenaltyPerToken
	score -= float64(unmatched) * w.UnmatchedTokenPenalty

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
