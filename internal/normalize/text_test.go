package normalize

import (
	"reflect"
	"testing"
)

func TestFoldName_StripsDiacriticsAndLowercases(t *testing.T) {
	got := FoldName("José María")
	if got != "jose maria" {
		t.Fatalf("expected \"jose maria\", got %q", got)
	}
}

func TestFoldName_AppliesTransliterationTable(t *testing.T) {
	got := FoldName("Björk Guðmundsdóttir")
	if got != "bjork gudmundsdottir" {
		t.Fatalf("expected eth transliterated to d, got %q", got)
	}
}

func TestTokenize_SplitsOnPunctuationAndWhitespace(t *testing.T) {
	got := Tokenize("acme corp., ltd.")
	want := []string{"acme", "corp", "ltd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRemoveStopwords_DropsClosedClassWords(t *testing.T) {
	got := RemoveStopwords([]string{"acme", "corp", "ltd"}, "en")
	want := []string{"acme"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRemoveStopwords_NeverEmptiesAllTokens(t *testing.T) {
	got := RemoveStopwords([]string{"the", "and"}, "en")
	want := []string{"the", "and"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected all-stopword input to survive unchanged, got %v", got)
	}
}

func TestRemoveStopwords_UnknownLangFallsBackToEnglish(t *testing.T) {
	got := RemoveStopwords([]string{"acme", "inc"}, "zz")
	want := []string{"acme"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected fallback to English stopwords, got %v", got)
	}
}

func TestNormalizeName_FullPipeline(t *testing.T) {
	folded, tokens, _ := NormalizeName("Nicolás Maduro", "")
	if folded != "nicolas maduro" {
		t.Fatalf("expected folded \"nicolas maduro\", got %q", folded)
	}
	want := []string{"nicolas", "maduro"}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("expected tokens %v, got %v", want, tokens)
	}
}
