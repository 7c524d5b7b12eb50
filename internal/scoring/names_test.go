package scoring

import (
	"testing"

	"github.com/BraidFI-AI/sanctions-engine/internal/entity"
	"github.com/BraidFI-AI/sanctions-engine/internal/normalize"
	"github.com/BraidFI-AI/sanctions-engine/internal/similarity"
)

func normalizedNameFor(t *testing.T, raw string) entity.NormalizedName {
	t.Helper()
	folded, tokens, lang := normalize.NormalizeName(raw, "")
	return entity.NormalizedName{
		Raw:      raw,
		Folded:   folded,
		Tokens:   tokens,
		Phonetic: similarity.PhoneticCodes(tokens),
		Lang:     lang,
	}
}

func TestNameComparison_ExactFoldedMatchIsOne(t *testing.T) {
	tw := similarity.DefaultTokenWeights()
	query := normalizedNameFor(t, "Nicolas Maduro")
	candidate := normalizedNameFor(t, "Nicolas Maduro")
	score, filtered := NameComparison(query, candidate, tw, false)
	if filtered {
		t.Fatalf("expected an exact match to never be phonetically filtered")
	}
	if score != 1.0 {
		t.Fatalf("expected exact folded match to score 1.0, got %.4f", score)
	}
}

func TestNameComparison_PhoneticallyDisjointNameIsFilteredToZero(t *testing.T) {
	tw := similarity.DefaultTokenWeights()
	query := normalizedNameFor(t, "Nicolas Maduro")
	candidate := normalizedNameFor(t, "Xyzqwerty Zzxxccvv")
	score, filtered := NameComparison(query, candidate, tw, false)
	if !filtered {
		t.Fatalf("expected a phonetically disjoint name to be filtered")
	}
	if score != 0 {
		t.Fatalf("expected filtered comparison to score 0, got %.4f", score)
	}
}

func TestNameComparison_DisablingPhoneticFilterStillScoresViaTokens(t *testing.T) {
	tw := similarity.DefaultTokenWeights()
	query := normalizedNameFor(t, "Nicolas Maduro")
	candidate := normalizedNameFor(t, "Xyzqwerty Zzxxccvv")
	_, filtered := NameComparison(query, candidate, tw, true)
	if filtered {
		t.Fatalf("expected filtered=false when phonetic filtering is disabled")
	}
}

func TestAltNameComparison_EmptyEitherSideDoesNotContribute(t *testing.T) {
	tw := similarity.DefaultTokenWeights()
	_, contributed := AltNameComparison(nil, []entity.NormalizedName{normalizedNameFor(t, "x")}, tw, false)
	if contributed {
		t.Fatalf("expected contributed=false with no query names")
	}
}

func TestAltNameComparison_BestPairAcrossCombinations(t *testing.T) {
	tw := similarity.DefaultTokenWeights()
	queryNames := []entity.NormalizedName{normalizedNameFor(t, "Nicolas Maduro")}
	altNames := []entity.NormalizedName{
		normalizedNameFor(t, "Nico Madero"),
		normalizedNameFor(t, "Nicolas Maduro"),
	}
	score, contributed := AltNameComparison(queryNames, altNames, tw, false)
	if !contributed {
		t.Fatalf("expected contributed=true")
	}
	if score != 1.0 {
		t.Fatalf("expected the exact alt-name pair to win best-pair selection, got %.4f", score)
	}
}
