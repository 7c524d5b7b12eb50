package similarity

import (
	"math"
	"testing"
)

func TestJaro_IdenticalStrings(t *testing.T) {
	if got := Jaro("maduro", "maduro"); got != 1.0 {
		t.Fatalf("expected 1.0 for identical strings, got %.4f", got)
	}
}

func TestJaro_NoMatchingCharacters(t *testing.T) {
	if got := Jaro("abc", "xyz"); got != 0.0 {
		t.Fatalf("expected 0.0 for disjoint strings, got %.4f", got)
	}
}

func TestJaro_EmptyString(t *testing.T) {
	if got := Jaro("", "maduro"); got != 0.0 {
		t.Fatalf("expected 0.0 when one side is empty, got %.4f", got)
	}
}

func TestJaro_ClassicMarthaMarhta(t *testing.T) {
	got := Jaro("martha", "marhta")
	if math.Abs(got-0.9444) > 0.001 {
		t.Fatalf("expected ~0.9444 for martha/marhta, got %.4f", got)
	}
}

func TestJaroWinkler_PrefixBoostsScoreAboveJaro(t *testing.T) {
	w := DefaultWeights()
	jaro := Jaro("martha", "marhta")
	jw := JaroWinkler("martha", "marhta", w)
	if jw <= jaro {
		t.Fatalf("expected Jaro-Winkler (%.4f) to exceed plain Jaro (%.4f) for a shared prefix", jw, jaro)
	}
}

func TestJaroWinkler_ZeroMaxPrefixFallsBackToJaro(t *testing.T) {
	jaro := Jaro("martha", "marhta")
	jw := JaroWinkler("martha", "marhta", Weights{PrefixWeight: 0.1, MaxPrefix: 0})
	if jw != jaro {
		t.Fatalf("expected MaxPrefix<=0 to fall back to plain Jaro, got jw=%.4f jaro=%.4f", jw, jaro)
	}
}

func TestJaroWinkler_PrefixLimitedToMaxPrefix(t *testing.T) {
	w := Weights{PrefixWeight: 0.1, MaxPrefix: 4}
	jaro := Jaro("aaaaaX", "aaaaaY")
	got := JaroWinkler("aaaaaX", "aaaaaY", w)
	want := jaro + 4*w.PrefixWeight*(1-jaro)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected prefix bonus capped at MaxPrefix=4 despite a 5-character shared prefix, got %.6f want %.6f", got, want)
	}
}
