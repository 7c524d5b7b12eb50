package normalize

import (
	"github.com/BraidFI-AI/sanctions-engine/internal/entity"
	"github.com/BraidFI-AI/sanctions-engine/internal/similarity"
)

// Prepare runs the full normalization pipeline over an Entity and
// attaches the result as its PreparedFields cache. Called once when an
// entity enters the Entity Index; the Scorer never calls Prepare itself.
func Prepare(e *entity.Entity) *entity.PreparedFields {
	pf := &entity.PreparedFields{}
	hint := countryHint(e)

	if len(e.Names) > 0 {
		pf.PrimaryName = normalizeName(e.Names[0], hint)
		pf.DetectedLang = pf.PrimaryName.Lang
	}

	for _, n := range e.AltNames {
		pf.AltNames = append(pf.AltNames, normalizeName(n, hint))
	}
	// Names beyond the first primary also count as alt names for
	// matching purposes — a source that lists multiple "primary"
	// spellings should not lose all but the first.
	for _, n := range e.Names[minOne(len(e.Names)):] {
		pf.AltNames = append(pf.AltNames, normalizeName(n, hint))
	}

	for _, a := range e.Addresses {
		pf.Addresses = append(pf.Addresses, NormalizeAddress(a))
	}
	for _, g := range e.GovernmentIDs {
		pf.GovernmentIDs = append(pf.GovernmentIDs, NormalizeGovID(g))
	}
	for _, c := range e.CryptoAddrs {
		pf.CryptoAddrs = append(pf.CryptoAddrs, NormalizeCrypto(c))
	}
	for _, c := range e.Contacts {
		pf.Contacts = append(pf.Contacts, NormalizeContact(c))
	}
	pf.Dates = e.Dates

	e.Prepared = pf
	return pf
}

func minOne(n int) int {
	if n == 0 {
		return 0
	}
	return 1
}

// countryHint picks the best available raw country signal for DetectLanguage's
// country-hint fallback: a person's first nationality, a business/
// organization's first registration country, or else the entity's
// first address country. Returns "" when none is present, which
// DetectLanguage treats as no hint.
func countryHint(e *entity.Entity) string {
	if e.Person != nil && len(e.Person.Nationalities) > 0 {
		return e.Person.Nationalities[0]
	}
	if e.Business != nil && len(e.Business.RegistrationCountries) > 0 {
		return e.Business.RegistrationCountries[0]
	}
	if e.Organization != nil && len(e.Organization.RegistrationCountries) > 0 {
		return e.Organization.RegistrationCountries[0]
	}
	if len(e.Addresses) > 0 {
		return e.Addresses[0].Country
	}
	return ""
}

func normalizeName(n entity.Name, countryHint string) entity.NormalizedName {
	folded, tokens, lang := NormalizeName(n.Full, countryHint)
	return entity.NormalizedName{
		Raw:      n.Full,
		Folded:   folded,
		Tokens:   tokens,
		Phonetic: similarity.PhoneticCodes(tokens),
		Quality:  n.Quality,
		Lang:     lang,
	}
}
