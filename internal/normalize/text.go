// Package normalize implements the Text Normalizer and Value Normalizers:
// diacritic stripping, transliteration, tokenization, stopword removal,
// script/language detection, and canonicalization of country, gender,
// phone, identifier, address and crypto-address fields.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// transliterationTable holds the small fixed set of non-combining-mark
// substitutions the screening domain cares about. Applied before NFD
// folding since these are multi-rune or non-diacritic substitutions.
var transliterationTable = map[rune]string{
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "Th",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'ł': "l", 'Ł': "L",
	'ß': "ss",
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func applyTransliteration(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := transliterationTable[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FoldName lowercases, transliterates, and strips combining diacritics
// from a name string, producing the form used for tokenization, phonetic
// keying, and the similarity kernel.
func FoldName(s string) string {
	s = applyTransliteration(s)
	folded, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Tokenize splits a folded name into whitespace/punctuation-separated
// tokens, dropping empty tokens.
func Tokenize(folded string) []string {
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// stopwords by detected language. Only closed-class words that carry no
// discriminating identity signal in a legal/organization/person name are
// listed; this is intentionally small.
var stopwords = map[string]map[string]bool{
	"en": set("the", "and", "of", "inc", "ltd", "llc", "corp", "co"),
	"es": set("el", "la", "los", "las", "de", "y", "sa", "srl"),
	"fr": set("le", "la", "les", "de", "et", "sarl", "sa"),
	"de": set("der", "die", "das", "und", "von", "gmbh", "ag"),
	"ru": set("и", "в", "на", "с", "от", "до", "ооо", "зао", "оао"),
	"ar": set("في", "من", "على", "و", "الى", "شركة"),
	"zh": set("的", "和", "与", "公司", "集团"),
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// RemoveStopwords drops tokens present in the stopword set for lang,
// falling back to English if lang is unrecognized. Never removes down
// to zero tokens: if every token would be dropped, the original token
// list is kept so a name never normalizes to nothing.
func RemoveStopwords(tokens []string, lang string) []string {
	sw, ok := stopwords[lang]
	if !ok {
		sw = stopwords["en"]
	}
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !sw[t] {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return tokens
	}
	return kept
}

// NormalizeName runs the full Text Normalizer pipeline: fold, tokenize,
// detect language (using countryHint as a fallback signal for ambiguous
// Latin-script input), remove stopwords. Returns the folded string, the
// surviving tokens, and the detected language code.
func NormalizeName(raw, countryHint string) (folded string, tokens []string, lang string) {
	folded = FoldName(raw)
	allTokens := Tokenize(folded)
	lang = DetectLanguage(folded, countryHint)
	tokens = RemoveStopwords(allTokens, lang)
	return folded, tokens, lang
}
