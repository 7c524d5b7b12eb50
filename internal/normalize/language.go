package normalize

import (
	"strings"
	"unicode"
)

// countryLanguage is the closed country→language enumeration used as a
// fallback when Latin-script classification has low confidence. Unknown
// country → null hint → the caller falls through to English.
var countryLanguage = map[string]string{
	"US": "en", "GB": "en", "AE": "en",
	"ES": "es", "VE": "es",
	"FR": "fr",
	"DE": "de",
	"RU": "ru",
	"CN": "zh",
}

// DetectLanguage classifies folded text into one of the engine's
// supported language codes: a dominant non-Latin script settles it
// outright; Latin-script input falls to a trigram frequency classifier,
// and when that classifier's confidence is low, to a country-hint
// lookup (closed enumeration, per countryHint) before settling on
// English. There is no attempt at exhaustive language coverage: the
// screening domain only needs enough signal to pick the right stopword
// set.
func DetectLanguage(folded, countryHint string) string {
	if lang, ok := detectByScript(folded); ok {
		return lang
	}
	lang, confidence := classifyLatin(folded)
	if confidence < 0.5 {
		if code, ok := resolveCountryCode(countryHint); ok {
			if hintLang, ok := countryLanguage[code]; ok {
				return hintLang
			}
		}
		return "en"
	}
	return lang
}

// detectByScript looks for a dominant non-Latin Unicode script.
// Cyrillic, Arabic, and CJK Unified Ideographs each unambiguously imply
// a supported language for this domain's watchlist sources.
func detectByScript(s string) (string, bool) {
	var cjk, arabic, cyrillic, latin, other int
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Han, r):
			cjk++
		case unicode.Is(unicode.Arabic, r):
			arabic++
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		case unicode.Is(unicode.Latin, r):
			latin++
		case unicode.IsLetter(r):
			other++
		}
	}
	total := cjk + arabic + cyrillic + latin + other
	if total == 0 {
		return "", false
	}
	switch {
	case arabic > total/2:
		return "ar", true
	case cjk > total/2:
		return "zh", true
	case cyrillic > total/2:
		return "ru", true
	}
	return "", false
}

// trigramLanguageOrder fixes the iteration order classifyLatin scores
// languages in, so a tie always resolves to the same winner regardless
// of map iteration order (determinism is a testable property of the
// Text Normalizer).
var trigramLanguageOrder = []string{"en", "es", "fr", "de"}

// trigram reference profiles: relative frequency rank of a small set of
// highly discriminating trigrams per language, trained offline against
// short reference corpora. Kept intentionally small — this is a
// tie-breaker among {en,es,fr,de}, not a general-purpose classifier.
var trigramProfiles = map[string][]string{
	"en": {"the", "ing", "and", "ion", "ent"},
	"es": {"de ", "ion", "ent", "ado", "los"},
	"fr": {"de ", "ent", "les", "ess", "ion"},
	"de": {"der", "ich", "und", "sch", "ein"},
}

// classifyLatin scores folded text against each language's trigram
// profile and returns the best match plus a confidence in [0,1]: the
// winning score as a fraction of trigram windows scanned. Empty or very
// short input returns ("en", 0) so the caller falls through to the
// country hint or the English default.
func classifyLatin(folded string) (string, float64) {
	padded := " " + folded + " "
	windows := len(padded) - 2
	if windows <= 0 {
		return "en", 0
	}
	grams := make(map[string]int)
	for i := 0; i+3 <= len(padded); i++ {
		grams[padded[i:i+3]]++
	}

	best, bestScore := "en", -1
	for _, lang := range trigramLanguageOrder {
		score := 0
		for _, g := range trigramProfiles[lang] {
			score += grams[g]
		}
		if score > bestScore {
			best, bestScore = lang, score
		}
	}
	if bestScore <= 0 {
		return "en", 0
	}
	return best, float64(bestScore) / float64(windows)
}
